package autodetect

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestModelSupportsImages(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		model    string
		title    string
		caps     *Capabilities
		want     bool
	}{
		{"anthropic claude 3", "anthropic", "claude-3-opus", "", nil, true},
		{"provider qualifies model does not", "ollama", "llama2", "", nil, false},
		{"ollama llava", "ollama", "llava:13b", "", nil, true},
		{"model uppercase is lowercased", "openai", "GPT-4O", "", nil, true},
		{"provider not image capable", "together", "llava-v1.6", "", nil, false},
		{"unknown provider", "acme", "gpt-4o", "", nil, false},
		{"llama 3.2 vision", "ollama", "llama3.2-vision:11b", "", nil, true},
		{"match via title", "openai", "my-deployment", "custom gpt-4o", nil, true},
		{"empty capabilities defer to inference", "anthropic", "claude-3-haiku", "", &Capabilities{}, true},
		{"override false wins", "openai", "gpt-4o", "", &Capabilities{UploadImage: boolPtr(false)}, false},
		{"override true wins", "acme", "text-only", "", &Capabilities{UploadImage: boolPtr(true)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModelSupportsImages(tt.provider, tt.model, tt.title, tt.caps); got != tt.want {
				t.Fatalf("ModelSupportsImages(%q, %q, %q) = %v, want %v", tt.provider, tt.model, tt.title, got, tt.want)
			}
		})
	}
}

// The model name is lowercased before matching but the title is not.
func TestModelSupportsImagesTitleIsCaseSensitive(t *testing.T) {
	if ModelSupportsImages("openai", "my-deployment", "GPT-4o Custom", nil) {
		t.Fatal("expected uppercase title fragment not to match")
	}
	if !ModelSupportsImages("openai", "MY-GPT-4o-DEPLOYMENT", "", nil) {
		t.Fatal("expected uppercase model fragment to match after lowercasing")
	}
}

func TestLLMCanGenerateInParallel(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		want     bool
	}{
		{"openai", "gpt-4", true},
		{"openai", "text-davinci-003", false},
		{"openai", "GPT-4", false},
		{"mistral", "mistral-large", true},
		{"anthropic", "claude-3-opus", true},
		{"huggingface-tgi", "anything", true},
		{"ollama", "llama3", false},
		{"lmstudio", "gpt-oss", false},
		{"", "", false},
	}

	for _, tt := range tests {
		if got := LLMCanGenerateInParallel(tt.provider, tt.model); got != tt.want {
			t.Fatalf("LLMCanGenerateInParallel(%q, %q) = %v, want %v", tt.provider, tt.model, got, tt.want)
		}
	}
}

func TestProviderHandlesTemplating(t *testing.T) {
	for _, p := range []string{"openai", "ollama", "anthropic", "relace", "lmstudio"} {
		if !ProviderHandlesTemplating(p) {
			t.Fatalf("expected %q to handle templating", p)
		}
	}
	for _, p := range []string{"huggingface-tgi", "replicate", "OpenAI", ""} {
		if ProviderHandlesTemplating(p) {
			t.Fatalf("expected %q not to handle templating", p)
		}
	}
}
