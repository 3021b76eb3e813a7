// internal/templates/edit.go
package templates

import (
	"fmt"
	"strings"
	"text/template"
)

// EditData is the input to an edit prompt.
type EditData struct {
	CodeToEdit  string
	UserInput   string
	Language    string
	PrefixLines string
	SuffixLines string
}

// EditTemplate is a prompt used for code-editing requests.
type EditTemplate struct {
	Name   string
	Prompt string
}

// Render executes the template against data.
func (t *EditTemplate) Render(data EditData) (string, error) {
	tpl, err := template.New(t.Name).Option("missingkey=error").Parse(t.Prompt)
	if err != nil {
		return "", fmt.Errorf("parse edit template %s: %w", t.Name, err)
	}
	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render edit template %s: %w", t.Name, err)
	}
	return b.String(), nil
}

// OSModelsEditPrompt is shared by most open-source models.
var OSModelsEditPrompt = &EditTemplate{
	Name: "os-models",
	Prompt: `{{if or .PrefixLines .SuffixLines}}Considering the following code context:
{{if .PrefixLines}}{{.PrefixLines}}
{{end}}[CODE TO EDIT]
{{if .SuffixLines}}{{.SuffixLines}}
{{end}}
{{end}}Rewrite the code to satisfy this request: "{{.UserInput}}"

` + "```{{.Language}}\n{{.CodeToEdit}}\n```" + `

Here is the rewritten code:
` + "```{{.Language}}\n",
}

// GPTEditPrompt is the fallback for families served by proprietary chat APIs.
var GPTEditPrompt = &EditTemplate{
	Name: "gpt",
	Prompt: "```{{.Language}}\n{{.CodeToEdit}}\n```\n\n" +
		`The user has requested a section of code in a file to be rewritten. This is the request:

"{{.UserInput}}"

Output only a code block with the rewritten code.`,
}

// PhindEditPrompt targets Phind CodeLlama.
var PhindEditPrompt = &EditTemplate{
	Name: "phind",
	Prompt: "### System Prompt\nYou are an expert programmer and write code on the first attempt without any errors or fillers.\n\n" +
		"### User Message:\nRewrite the code to satisfy this request: \"{{.UserInput}}\"\n\n" +
		"```{{.Language}}\n{{.CodeToEdit}}\n```\n\n### Assistant:\nSure! Here's the code you requested:\n\n```{{.Language}}\n",
}

// SimplifiedEditPrompt is a minimal prompt for small models.
var SimplifiedEditPrompt = &EditTemplate{
	Name:   "simplified",
	Prompt: "Here is a snippet of code that will next be rewritten to satisfy the request \"{{.UserInput}}\":\n```{{.Language}}\n{{.CodeToEdit}}\n```\nHere is the rewritten code:\n```{{.Language}}\n",
}

// ZephyrEditPrompt targets Zephyr.
var ZephyrEditPrompt = &EditTemplate{
	Name:   "zephyr",
	Prompt: "<|system|>\nYou are an expert programmer and write code on the first attempt without any errors or fillers.</s>\n<|user|>\nRewrite the code to satisfy this request: \"{{.UserInput}}\"\n\n```{{.Language}}\n{{.CodeToEdit}}\n```</s>\n<|assistant|>\nSure! Here's the code you requested:\n\n```{{.Language}}\n",
}

// MistralEditPrompt targets Mistral instruct models.
var MistralEditPrompt = &EditTemplate{
	Name:   "mistral",
	Prompt: "[INST] You are a helpful code assistant. Your task is to rewrite the following code with these instructions: \"{{.UserInput}}\"\n```{{.Language}}\n{{.CodeToEdit}}\n```\n\nJust rewrite the code without explanations: [/INST]\n```{{.Language}}\n",
}

// AlpacaEditPrompt targets Alpaca and WizardLM.
var AlpacaEditPrompt = &EditTemplate{
	Name:   "alpaca",
	Prompt: "Below is an instruction that describes a task, paired with an input that provides further context. Write a response that appropriately completes the request.\n\n### Instruction: Rewrite the code to satisfy this request: \"{{.UserInput}}\"\n\n### Input:\n\n```{{.Language}}\n{{.CodeToEdit}}\n```\n\n### Response:\n\nSure! Here's the code you requested:\n```{{.Language}}\n",
}

// DeepSeekEditPrompt targets DeepSeek Coder.
var DeepSeekEditPrompt = &EditTemplate{
	Name:   "deepseek",
	Prompt: "### System Prompt\nYou are an AI programming assistant, utilizing the DeepSeek Coder model, developed by DeepSeek Company, and you only answer questions related to computer science.\n### Instruction:\nRewrite the code to satisfy this request: \"{{.UserInput}}\"\n\n```{{.Language}}\n{{.CodeToEdit}}\n```<|EOT|>\n### Response:\nSure! Here's the code you requested:\n\n```{{.Language}}\n",
}

// OpenChatEditPrompt targets OpenChat.
var OpenChatEditPrompt = &EditTemplate{
	Name:   "openchat",
	Prompt: "GPT4 Correct User: You are an expert programmer and personal assistant. You are asked to rewrite the following code in order to {{.UserInput}}.\n```{{.Language}}\n{{.CodeToEdit}}\n```\nPlease only respond with code and put it inside of a markdown code block. Do not give any explanation, but your code should perfectly satisfy the user request.<|end_of_turn|>GPT4 Correct Assistant: Sure thing! Here is the rewritten code that you requested:\n```{{.Language}}\n",
}

// XWinCoderEditPrompt targets Xwin-Coder.
var XWinCoderEditPrompt = &EditTemplate{
	Name:   "xwin-coder",
	Prompt: "<system>: You are an AI coding assistant that helps people with programming. Write a response that appropriately completes the user's request.\n<user>: Please rewrite the following code with these instructions: \"{{.UserInput}}\"\n```{{.Language}}\n{{.CodeToEdit}}\n```\n\nJust rewrite the code without explanations:\n<AI>:\n```{{.Language}}\n",
}

// NeuralChatEditPrompt targets Intel Neural Chat.
var NeuralChatEditPrompt = &EditTemplate{
	Name:   "neural-chat",
	Prompt: "### System:\nYou are an expert programmer and write code on the first attempt without any errors or fillers.\n### User:\nRewrite the code to satisfy this request: \"{{.UserInput}}\"\n\n```{{.Language}}\n{{.CodeToEdit}}\n```\n### Assistant:\nSure! Here's the code you requested:\n\n```{{.Language}}\n",
}

// CodeLlama70bEditPrompt targets CodeLlama 70B.
var CodeLlama70bEditPrompt = &EditTemplate{
	Name:   "codellama-70b",
	Prompt: "<s>Source: system\n\n You are an expert programmer and write code on the first attempt without any errors or fillers. <step> Source: user\n\n Rewrite the code to satisfy this request: \"{{.UserInput}}\"\n\n```{{.Language}}\n{{.CodeToEdit}}\n``` <step> Source: assistant\nDestination: user\n\n ",
}

// ClaudeEditPrompt targets Anthropic models.
var ClaudeEditPrompt = &EditTemplate{
	Name:   "claude",
	Prompt: "```{{.Language}}\n{{.CodeToEdit}}\n```\n\nYou are an expert programmer. You will rewrite the above code to do the following:\n\n{{.UserInput}}\n\nOutput only a code block with the rewritten code:\n",
}

// GemmaEditPrompt targets Gemma.
var GemmaEditPrompt = &EditTemplate{
	Name:   "gemma",
	Prompt: "<start_of_turn>user\nYou are an expert programmer and write code on the first attempt without any errors or fillers. Rewrite the code to satisfy this request: \"{{.UserInput}}\"\n\n```{{.Language}}\n{{.CodeToEdit}}\n```<end_of_turn>\n<start_of_turn>model\nSure! Here's the code you requested:\n\n```{{.Language}}\n",
}

// Llama3EditPrompt targets Llama 3.
var Llama3EditPrompt = &EditTemplate{
	Name:   "llama3",
	Prompt: "<|begin_of_text|><|start_header_id|>user<|end_header_id|>\n```{{.Language}}\n{{.CodeToEdit}}\n```\n\nRewrite the code to satisfy this request: \"{{.UserInput}}\"<|eot_id|><|start_header_id|>assistant<|end_header_id|>\nSure! Here's the code you requested:\n\n```{{.Language}}\n",
}
