// internal/providers/provider.go

// Package providers defines the identifiers of the model providers that autodetect knows
// about and the conversation turn type shared by every chat formatter. Providers are
// referenced by their lowercase configuration name (e.g. "openai", "ollama").
package providers

import "strings"

// ChatMessage represents a single message in a chat conversation.
// It contains the role of the message sender (e.g., "system", "user", "assistant") and the message content.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Well-known roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider identifiers as they appear in configuration files.
const (
	Anthropic               = "anthropic"
	Azure                   = "azure"
	Bedrock                 = "bedrock"
	Cohere                  = "cohere"
	ContinueProxy           = "continue-proxy"
	DeepInfra               = "deepinfra"
	FunctionNetwork         = "function-network"
	Gemini                  = "gemini"
	HuggingFaceInferenceAPI = "huggingface-inference-api"
	HuggingFaceTGI          = "huggingface-tgi"
	LMStudio                = "lmstudio"
	Mistral                 = "mistral"
	Moonshot                = "moonshot"
	Msty                    = "msty"
	Nebius                  = "nebius"
	Novita                  = "novita"
	Nvidia                  = "nvidia"
	Ollama                  = "ollama"
	OpenAI                  = "openai"
	OpenRouter              = "openrouter"
	OVHcloud                = "ovhcloud"
	Relace                  = "relace"
	Replicate               = "replicate"
	SageMaker               = "sagemaker"
	SambaNova               = "sambanova"
	Scaleway                = "scaleway"
	Together                = "together"
	Venice                  = "venice"
	VertexAI                = "vertexai"
	WatsonX                 = "watsonx"
)

// SplitSystem separates the leading system message, if any, from the rest of the conversation.
// The input slice is not modified.
func SplitSystem(msgs []ChatMessage) (string, []ChatMessage) {
	if len(msgs) > 0 && msgs[0].Role == RoleSystem {
		return msgs[0].Content, msgs[1:]
	}
	return "", msgs
}

// NormalizeRole lowercases and trims a role name.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
