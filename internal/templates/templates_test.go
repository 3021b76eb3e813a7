package templates

import (
	"strings"
	"testing"

	"github.com/mwiater/autodetect/internal/providers"
)

var conversation = []providers.ChatMessage{
	{Role: "system", Content: "You are terse."},
	{Role: "user", Content: "Hello"},
	{Role: "assistant", Content: "Hi."},
	{Role: "user", Content: "Write a loop"},
}

func TestParseFamily(t *testing.T) {
	for _, f := range Families() {
		got, err := ParseFamily(" " + strings.ToUpper(string(f)) + " ")
		if err != nil {
			t.Fatalf("ParseFamily(%q) error: %v", f, err)
		}
		if got != f {
			t.Fatalf("ParseFamily(%q) = %q", f, got)
		}
	}
	if _, err := ParseFamily("gpt"); err == nil {
		t.Fatal("expected error for unknown family")
	}
	if _, err := ParseFamily(""); err == nil {
		t.Fatal("expected error for empty family")
	}
}

func TestFamiliesReturnsCopy(t *testing.T) {
	list := Families()
	if len(list) != 18 {
		t.Fatalf("expected 18 families, got %d", len(list))
	}
	list[0] = "mutated"
	if Families()[0] != Llama2 {
		t.Fatal("Families() exposed internal slice")
	}
}

func TestChatFormatters(t *testing.T) {
	tests := []struct {
		name     string
		format   ChatFormatter
		contains []string
		suffix   string
	}{
		{"chatml", ChatMLMessages, []string{"<|im_start|>system\nYou are terse.<|im_end|>\n", "<|im_start|>user\nWrite a loop<|im_end|>\n"}, "<|im_start|>assistant\n"},
		{"llama2", Llama2Messages, []string{"<s>[INST] <<SYS>>\nYou are terse.\n<</SYS>>\n\nHello [/INST] Hi.</s>", "<s>[INST] Write a loop [/INST]"}, "[/INST]"},
		{"llama3", Llama3Messages, []string{"<|start_header_id|>user<|end_header_id|>\n\nHello<|eot_id|>"}, "<|start_header_id|>assistant<|end_header_id|>\n\n"},
		{"zephyr", ZephyrMessages, []string{"<|user|>\nHello</s>\n"}, "<|assistant|>\n"},
		{"alpaca", AlpacaMessages, []string{"### Instruction:\nHello\n\n"}, "### Response:\n"},
		{"phi2", Phi2Messages, []string{"Instruct: Hello\n"}, "Output: "},
		{"phind", PhindMessages, []string{"### System Prompt\nYou are terse.", "### User Message\nHello"}, "### Assistant\n"},
		{"anthropic", AnthropicMessages, []string{"You are terse.\n\n", "\n\nHuman: Hello", "\n\nAssistant: Hi."}, "\n\nAssistant: "},
		{"openchat", OpenChatMessages, []string{"GPT4 Correct User: Hello<|end_of_turn|>"}, "GPT4 Correct Assistant:"},
		{"deepseek", DeepSeekMessages, []string{"### Instruction:\nHello\n<|EOT|>\n"}, "### Response:\n"},
		{"xwin-coder", XWinCoderMessages, []string{"<system>: You are terse.\n", "<user>: Hello\n"}, "<AI>: "},
		{"neural-chat", NeuralChatMessages, []string{"### System:\nYou are terse.\n"}, "### Assistant:\n"},
		{"llava", LlavaMessages, []string{"USER: Hello\n", "ASSISTANT: Hi.\n"}, "ASSISTANT: "},
		{"codellama-70b", CodeLlama70bMessages, []string{"Source: user\n\n Hello <step> "}, "Destination: user\n\n "},
		{"gemma", GemmaMessages, []string{"<start_of_turn>user\nYou are terse.\n\nHello<end_of_turn>\n", "<start_of_turn>model\nHi.<end_of_turn>\n"}, "<start_of_turn>model\n"},
		{"granite", GraniteMessages, []string{"<|start_of_role|>user<|end_of_role|>Hello<|end_of_text|>\n"}, "<|start_of_role|>assistant<|end_of_role|>"},
		{"codestral", CodestralMessages, []string{"[INST] You are terse.\n\nHello [/INST]Hi. [INST] Write a loop [/INST]"}, "[/INST]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format(conversation)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Fatalf("expected %q in output:\n%s", want, out)
				}
			}
			if !strings.HasSuffix(out, tt.suffix) {
				t.Fatalf("expected suffix %q in output:\n%s", tt.suffix, out)
			}
		})
	}
}

func TestLlama2MessagesEmpty(t *testing.T) {
	if got := Llama2Messages(nil); got != "" {
		t.Fatalf("expected empty prompt, got %q", got)
	}
}

func TestFormattersDoNotMutateInput(t *testing.T) {
	msgs := []providers.ChatMessage{{Role: " User ", Content: " hi "}}
	_ = ChatMLMessages(msgs)
	_ = GemmaMessages(msgs)
	if msgs[0].Role != " User " || msgs[0].Content != " hi " {
		t.Fatalf("formatter mutated input: %#v", msgs[0])
	}
}

func TestEditTemplatesRender(t *testing.T) {
	all := []*EditTemplate{
		OSModelsEditPrompt, GPTEditPrompt, PhindEditPrompt, SimplifiedEditPrompt, ZephyrEditPrompt,
		MistralEditPrompt, AlpacaEditPrompt, DeepSeekEditPrompt, OpenChatEditPrompt, XWinCoderEditPrompt,
		NeuralChatEditPrompt, CodeLlama70bEditPrompt, ClaudeEditPrompt, GemmaEditPrompt, Llama3EditPrompt,
	}
	data := EditData{CodeToEdit: "x := 1", UserInput: "rename x to y", Language: "go"}
	seen := map[string]bool{}
	for _, tpl := range all {
		if seen[tpl.Name] {
			t.Fatalf("duplicate edit template name %q", tpl.Name)
		}
		seen[tpl.Name] = true

		out, err := tpl.Render(data)
		if err != nil {
			t.Fatalf("%s: render error: %v", tpl.Name, err)
		}
		if !strings.Contains(out, "x := 1") || !strings.Contains(out, "rename x to y") {
			t.Fatalf("%s: missing code or request in output:\n%s", tpl.Name, out)
		}
	}
}

func TestOSModelsEditPromptContext(t *testing.T) {
	out, err := OSModelsEditPrompt.Render(EditData{
		CodeToEdit:  "return a",
		UserInput:   "return b",
		Language:    "go",
		PrefixLines: "func f() int {",
		SuffixLines: "}",
	})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "Considering the following code context:\nfunc f() int {\n[CODE TO EDIT]\n}\n") {
		t.Fatalf("unexpected context block:\n%s", out)
	}

	out, err = OSModelsEditPrompt.Render(EditData{CodeToEdit: "a", UserInput: "b"})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if strings.Contains(out, "Considering") {
		t.Fatalf("expected no context block without prefix/suffix:\n%s", out)
	}
}

func TestEditTemplateRenderParseError(t *testing.T) {
	bad := &EditTemplate{Name: "bad", Prompt: "{{.UserInput"}
	if _, err := bad.Render(EditData{}); err == nil {
		t.Fatal("expected parse error")
	}
}
