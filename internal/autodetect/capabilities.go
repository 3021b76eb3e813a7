// internal/autodetect/capabilities.go

// Package autodetect decides, from a provider identifier and a free-form model name, how a
// conversation should be formatted, which edit prompt applies, and whether the model accepts
// images or the provider can serve concurrent generations. Every decision is a static string
// match over read-only tables, so all functions are safe for concurrent use.
package autodetect

import (
	"strings"

	"github.com/mwiater/autodetect/internal/providers"
)

// Capabilities carries explicit capability overrides from configuration.
// A nil field defers to inference.
type Capabilities struct {
	UploadImage *bool `json:"uploadImage,omitempty" mapstructure:"uploadImage"`
}

type stringSet map[string]struct{}

func newStringSet(values ...string) stringSet {
	s := make(stringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// providersHandlingTemplating accept structured turns, so no local chat formatting is needed.
var providersHandlingTemplating = newStringSet(
	providers.LMStudio,
	providers.OpenAI,
	providers.Nvidia,
	providers.Ollama,
	providers.Together,
	providers.Novita,
	providers.Msty,
	providers.Anthropic,
	providers.Bedrock,
	providers.Cohere,
	providers.SageMaker,
	providers.ContinueProxy,
	providers.Mistral,
	providers.SambaNova,
	providers.VertexAI,
	providers.WatsonX,
	providers.Nebius,
	providers.Relace,
)

var providersSupportingImages = newStringSet(
	providers.OpenAI,
	providers.Ollama,
	providers.Cohere,
	providers.Gemini,
	providers.Msty,
	providers.Anthropic,
	providers.Bedrock,
	providers.SageMaker,
	providers.ContinueProxy,
	providers.OpenRouter,
	providers.Venice,
	providers.SambaNova,
	providers.VertexAI,
	providers.Azure,
	providers.Scaleway,
	providers.Nebius,
	providers.OVHcloud,
	providers.WatsonX,
)

// modelsSupportingImages are substrings, so this one stays a slice.
var modelsSupportingImages = []string{
	"llava",
	"gpt-4-turbo",
	"gpt-4o",
	"gpt-4o-mini",
	"gpt-4-vision",
	"claude-3",
	"c4ai-aya-vision-8b",
	"c4ai-aya-vision-32b",
	"gemini-ultra",
	"gemini-1.5-pro",
	"gemini-1.5-flash",
	"sonnet",
	"opus",
	"haiku",
	"pixtral",
	"llama3.2",
	"llama-3.2",
	"llama4",
	"granite-vision",
}

var parallelProviders = newStringSet(
	providers.Anthropic,
	providers.Bedrock,
	providers.Cohere,
	providers.SageMaker,
	providers.DeepInfra,
	providers.Gemini,
	providers.HuggingFaceInferenceAPI,
	providers.HuggingFaceTGI,
	providers.Mistral,
	providers.Moonshot,
	providers.Replicate,
	providers.Together,
	providers.Novita,
	providers.SambaNova,
	providers.OVHcloud,
	providers.Nebius,
	providers.VertexAI,
	providers.FunctionNetwork,
	providers.Scaleway,
)

// ProviderHandlesTemplating reports whether the provider's API formats chat turns itself.
func ProviderHandlesTemplating(provider string) bool {
	return providersHandlingTemplating.has(provider)
}

// ModelSupportsImages reports whether the model accepts image input.
//
// An explicit caps.UploadImage always wins. Otherwise the provider must be image-capable and
// one of the known fragments must appear in the lowercased model name or in title. The title
// is matched as given, without lowercasing.
func ModelSupportsImages(provider, model, title string, caps *Capabilities) bool {
	if caps != nil && caps.UploadImage != nil {
		return *caps.UploadImage
	}
	if !providersSupportingImages.has(provider) {
		return false
	}

	lower := strings.ToLower(model)
	for _, fragment := range modelsSupportingImages {
		if strings.Contains(lower, fragment) {
			return true
		}
		if title != "" && strings.Contains(title, fragment) {
			return true
		}
	}
	return false
}

// LLMCanGenerateInParallel reports whether the provider can serve concurrent generations.
func LLMCanGenerateInParallel(provider, model string) bool {
	if provider == providers.OpenAI {
		return strings.Contains(model, "gpt")
	}
	return parallelProviders.has(provider)
}
