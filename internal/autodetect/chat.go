// internal/autodetect/chat.go
package autodetect

import (
	"fmt"

	"github.com/mwiater/autodetect/internal/templates"
)

// chatBinding wraps a formatter so an intentional nil (family none) is distinguishable
// from a missing table entry.
type chatBinding struct {
	format templates.ChatFormatter
}

var chatFormatters = map[templates.Family]chatBinding{
	templates.Llama2:       {templates.Llama2Messages},
	templates.Alpaca:       {templates.AlpacaMessages},
	templates.Phi2:         {templates.Phi2Messages},
	templates.Phind:        {templates.PhindMessages},
	templates.Zephyr:       {templates.ZephyrMessages},
	templates.Anthropic:    {templates.AnthropicMessages},
	templates.ChatML:       {templates.ChatMLMessages},
	templates.DeepSeek:     {templates.DeepSeekMessages},
	templates.OpenChat:     {templates.OpenChatMessages},
	templates.XWinCoder:    {templates.XWinCoderMessages},
	templates.NeuralChat:   {templates.NeuralChatMessages},
	templates.Llava:        {templates.LlavaMessages},
	templates.CodeLlama70b: {templates.CodeLlama70bMessages},
	templates.Gemma:        {templates.GemmaMessages},
	templates.Granite:      {templates.GraniteMessages},
	templates.Llama3:       {templates.Llama3Messages},
	templates.Codestral:    {templates.CodestralMessages},
	templates.None:         {nil},
}

func init() {
	for _, f := range templates.Families() {
		if _, ok := chatFormatters[f]; !ok {
			panic(fmt.Sprintf("autodetect: no chat formatter binding for family %q", f))
		}
	}
}

// ChatFormatterFor returns the formatter bound to family, or nil for templates.None.
func ChatFormatterFor(family templates.Family) templates.ChatFormatter {
	return chatFormatters[family].format
}

// AutodetectTemplateFunction returns the local chat formatter for model, or nil when no
// local formatting is needed. Without an explicit family, providers that template natively
// always get nil.
func AutodetectTemplateFunction(model, provider string, explicit *templates.Family) templates.ChatFormatter {
	if explicit == nil && ProviderHandlesTemplating(provider) {
		return nil
	}

	family, ok := resolveFamily(model, explicit)
	if !ok {
		return nil
	}
	return ChatFormatterFor(family)
}
