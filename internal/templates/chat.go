// internal/templates/chat.go
package templates

import (
	"strings"

	"github.com/mwiater/autodetect/internal/providers"
)

// ChatFormatter turns an ordered conversation into a single prompt string.
// Formatters never modify the messages they are given.
type ChatFormatter func(msgs []providers.ChatMessage) string

// roleFormatter builds a formatter for templates that wrap every turn in a header
// and a terminator, then open an assistant turn at the end.
func roleFormatter(header func(role string) string, terminator, assistantOpen string) ChatFormatter {
	return func(msgs []providers.ChatMessage) string {
		var b strings.Builder
		for _, msg := range msgs {
			b.WriteString(header(providers.NormalizeRole(msg.Role)))
			b.WriteString(msg.Content)
			b.WriteString(terminator)
		}
		b.WriteString(assistantOpen)
		return b.String()
	}
}

// ChatMLMessages renders the <|im_start|>/<|im_end|> format.
var ChatMLMessages = roleFormatter(
	func(role string) string { return "<|im_start|>" + role + "\n" },
	"<|im_end|>\n",
	"<|im_start|>assistant\n",
)

// ZephyrMessages renders the <|role|> ... </s> format used by Zephyr and TinyLlama.
var ZephyrMessages = roleFormatter(
	func(role string) string { return "<|" + role + "|>\n" },
	"</s>\n",
	"<|assistant|>\n",
)

// GraniteMessages renders IBM Granite's <|start_of_role|> format.
var GraniteMessages = roleFormatter(
	func(role string) string { return "<|start_of_role|>" + role + "<|end_of_role|>" },
	"<|end_of_text|>\n",
	"<|start_of_role|>assistant<|end_of_role|>",
)

// Llama3Messages renders the Llama 3 header format.
func Llama3Messages(msgs []providers.ChatMessage) string {
	var b strings.Builder
	b.WriteString("<|begin_of_text|>")
	for _, msg := range msgs {
		b.WriteString("<|start_header_id|>")
		b.WriteString(providers.NormalizeRole(msg.Role))
		b.WriteString("<|end_header_id|>\n\n")
		b.WriteString(strings.TrimSpace(msg.Content))
		b.WriteString("<|eot_id|>")
	}
	b.WriteString("<|start_header_id|>assistant<|end_header_id|>\n\n")
	return b.String()
}

// Llama2Messages renders the [INST] format with an optional <<SYS>> block folded
// into the first user turn. Mistral and Mixtral share it.
func Llama2Messages(msgs []providers.ChatMessage) string {
	if len(msgs) == 0 {
		return ""
	}
	system, rest := providers.SplitSystem(msgs)

	var b strings.Builder
	first := true
	for _, msg := range rest {
		if providers.NormalizeRole(msg.Role) == providers.RoleAssistant {
			b.WriteString(" ")
			b.WriteString(strings.TrimSpace(msg.Content))
			b.WriteString("</s>")
			continue
		}
		b.WriteString("<s>[INST] ")
		if first && system != "" {
			b.WriteString("<<SYS>>\n")
			b.WriteString(system)
			b.WriteString("\n<</SYS>>\n\n")
		}
		first = false
		b.WriteString(strings.TrimSpace(msg.Content))
		b.WriteString(" [/INST]")
	}
	return b.String()
}

// CodestralMessages is the [INST] format without BOS tokens or system block.
func CodestralMessages(msgs []providers.ChatMessage) string {
	system, rest := providers.SplitSystem(msgs)

	var b strings.Builder
	for i, msg := range rest {
		if providers.NormalizeRole(msg.Role) == providers.RoleAssistant {
			b.WriteString(strings.TrimSpace(msg.Content))
			b.WriteString(" ")
			continue
		}
		b.WriteString("[INST] ")
		if i == 0 && system != "" {
			b.WriteString(system)
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimSpace(msg.Content))
		b.WriteString(" [/INST]")
	}
	return b.String()
}

// sectionFormatter renders formats that label every turn with a role heading.
func sectionFormatter(systemHeading, userHeading, assistantHeading, separator string) ChatFormatter {
	return func(msgs []providers.ChatMessage) string {
		var b strings.Builder
		for _, msg := range msgs {
			switch providers.NormalizeRole(msg.Role) {
			case providers.RoleSystem:
				b.WriteString(systemHeading)
			case providers.RoleAssistant:
				b.WriteString(assistantHeading)
			default:
				b.WriteString(userHeading)
			}
			b.WriteString(msg.Content)
			b.WriteString(separator)
		}
		b.WriteString(assistantHeading)
		return b.String()
	}
}

// AlpacaMessages renders the Alpaca/WizardLM instruction format.
var AlpacaMessages = sectionFormatter("", "### Instruction:\n", "### Response:\n", "\n\n")

// Phi2Messages renders Microsoft Phi-2's Instruct/Output format.
var Phi2Messages = sectionFormatter("", "Instruct: ", "Output: ", "\n")

// PhindMessages renders the Phind CodeLlama format.
var PhindMessages = sectionFormatter("### System Prompt\n", "### User Message\n", "### Assistant\n", "\n\n")

// DeepSeekMessages renders DeepSeek Coder's instruction format.
var DeepSeekMessages = sectionFormatter("", "### Instruction:\n", "### Response:\n", "\n<|EOT|>\n")

// XWinCoderMessages renders the Xwin-Coder format.
var XWinCoderMessages = sectionFormatter("<system>: ", "<user>: ", "<AI>: ", "\n")

// NeuralChatMessages renders Intel Neural Chat's format.
var NeuralChatMessages = sectionFormatter("### System:\n", "### User:\n", "### Assistant:\n", "\n")

// LlavaMessages renders the LLaVA USER/ASSISTANT format.
var LlavaMessages = sectionFormatter("", "USER: ", "ASSISTANT: ", "\n")

// AnthropicMessages renders the legacy Human/Assistant completion format.
func AnthropicMessages(msgs []providers.ChatMessage) string {
	system, rest := providers.SplitSystem(msgs)

	var b strings.Builder
	if system != "" {
		b.WriteString(system)
		b.WriteString("\n\n")
	}
	for _, msg := range rest {
		if providers.NormalizeRole(msg.Role) == providers.RoleAssistant {
			b.WriteString("\n\nAssistant: ")
		} else {
			b.WriteString("\n\nHuman: ")
		}
		b.WriteString(msg.Content)
	}
	b.WriteString("\n\nAssistant: ")
	return b.String()
}

// OpenChatMessages renders the OpenChat 3.5 "GPT4 Correct" format.
func OpenChatMessages(msgs []providers.ChatMessage) string {
	var b strings.Builder
	for _, msg := range msgs {
		switch providers.NormalizeRole(msg.Role) {
		case providers.RoleAssistant:
			b.WriteString("GPT4 Correct Assistant: ")
		case providers.RoleSystem:
			b.WriteString("GPT4 Correct System: ")
		default:
			b.WriteString("GPT4 Correct User: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("<|end_of_turn|>")
	}
	b.WriteString("GPT4 Correct Assistant:")
	return b.String()
}

// CodeLlama70bMessages renders the CodeLlama 70B "Source:" format.
func CodeLlama70bMessages(msgs []providers.ChatMessage) string {
	var b strings.Builder
	b.WriteString("<s>")
	for _, msg := range msgs {
		b.WriteString("Source: ")
		b.WriteString(providers.NormalizeRole(msg.Role))
		b.WriteString("\n\n ")
		b.WriteString(strings.TrimSpace(msg.Content))
		b.WriteString(" <step> ")
	}
	b.WriteString("Source: assistant\nDestination: user\n\n ")
	return b.String()
}

// GemmaMessages renders Gemma's <start_of_turn> format. Gemma has no system role, so a
// system message is prefixed to the first user turn.
func GemmaMessages(msgs []providers.ChatMessage) string {
	system, rest := providers.SplitSystem(msgs)

	var b strings.Builder
	b.WriteString("<bos>")
	for i, msg := range rest {
		role := "user"
		if providers.NormalizeRole(msg.Role) == providers.RoleAssistant {
			role = "model"
		}
		b.WriteString("<start_of_turn>")
		b.WriteString(role)
		b.WriteString("\n")
		if i == 0 && system != "" {
			b.WriteString(system)
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimSpace(msg.Content))
		b.WriteString("<end_of_turn>\n")
	}
	b.WriteString("<start_of_turn>model\n")
	return b.String()
}
