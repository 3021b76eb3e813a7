// internal/autodetect/edit.go
package autodetect

import (
	"strings"

	"github.com/mwiater/autodetect/internal/templates"
)

// PromptTemplates holds the prompt templates selected for a model.
// A nil Edit means the model has no edit template.
type PromptTemplates struct {
	Edit *templates.EditTemplate `json:"edit,omitempty"`
}

// HasEdit reports whether an edit template was selected.
func (p PromptTemplates) HasEdit() bool { return p.Edit != nil }

// usesOSModelsEditPrompt overrides the per-family branches below.
// codellama-70b is left out on purpose: it responds poorly to the shared prompt.
var usesOSModelsEditPrompt = map[templates.Family]struct{}{
	templates.Alpaca:     {},
	templates.ChatML:     {},
	templates.DeepSeek:   {},
	templates.Gemma:      {},
	templates.Llama2:     {},
	templates.Llava:      {},
	templates.NeuralChat: {},
	templates.OpenChat:   {},
	templates.Phi2:       {},
	templates.Phind:      {},
	templates.XWinCoder:  {},
	templates.Zephyr:     {},
	templates.Llama3:     {},
}

// AutodetectPromptTemplates selects the edit template for model. The explicit family, when
// given, replaces classification. Providers that template chat natively are not consulted.
func AutodetectPromptTemplates(model string, explicit *templates.Family) PromptTemplates {
	family, ok := resolveFamily(model, explicit)
	return PromptTemplates{Edit: editTemplateFor(model, family, ok)}
}

func editTemplateFor(model string, family templates.Family, resolved bool) *templates.EditTemplate {
	if !resolved {
		if strings.Contains(model, "codestral") {
			return templates.OSModelsEditPrompt
		}
		return nil
	}
	if _, ok := usesOSModelsEditPrompt[family]; ok {
		return templates.OSModelsEditPrompt
	}

	// Families in usesOSModelsEditPrompt never reach their case below. The cases stay so
	// that removing a family from the set restores its dedicated prompt.
	switch family {
	case templates.Phind:
		return templates.PhindEditPrompt
	case templates.Phi2:
		return templates.SimplifiedEditPrompt
	case templates.Zephyr:
		return templates.ZephyrEditPrompt
	case templates.Llama2:
		if strings.Contains(model, "mistral") {
			return templates.MistralEditPrompt
		}
		return templates.OSModelsEditPrompt
	case templates.Alpaca:
		return templates.AlpacaEditPrompt
	case templates.DeepSeek:
		return templates.DeepSeekEditPrompt
	case templates.OpenChat:
		return templates.OpenChatEditPrompt
	case templates.XWinCoder:
		return templates.XWinCoderEditPrompt
	case templates.NeuralChat:
		return templates.NeuralChatEditPrompt
	case templates.CodeLlama70b:
		return templates.CodeLlama70bEditPrompt
	case templates.Anthropic:
		return templates.ClaudeEditPrompt
	case templates.Gemma:
		return templates.GemmaEditPrompt
	case templates.Llama3:
		return templates.Llama3EditPrompt
	case templates.None:
		return nil
	default:
		return templates.GPTEditPrompt
	}
}
