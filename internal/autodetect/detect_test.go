package autodetect

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwiater/autodetect/internal/templates"
)

func TestDetectNativeProvider(t *testing.T) {
	d := Detect(Request{Provider: "ollama", Model: "llama3.2-vision:11b"})

	if !d.Resolved || d.Family != templates.Llama3 {
		t.Fatalf("expected llama3, got %q (resolved=%v)", d.Family, d.Resolved)
	}
	if d.Rule != "llama3" {
		t.Fatalf("expected llama3 rule, got %q", d.Rule)
	}
	if d.ChatFormatter != nil || d.ChatFamily != "" {
		t.Fatal("expected no local chat formatting for ollama")
	}
	if d.EditTemplate != templates.OSModelsEditPrompt || d.EditTemplateName != "os-models" {
		t.Fatalf("unexpected edit template %q", d.EditTemplateName)
	}
	if !d.SupportsImages {
		t.Fatal("expected image support for llama3.2 on ollama")
	}
	if d.ParallelGeneration {
		t.Fatal("ollama should not generate in parallel")
	}
}

func TestDetectUnresolved(t *testing.T) {
	d := Detect(Request{Provider: "openai", Model: "gpt-4o"})
	if d.Resolved || d.Family != "" {
		t.Fatalf("expected unresolved detection, got %q", d.Family)
	}
	if d.Rule != "native-api" {
		t.Fatalf("unexpected rule %q", d.Rule)
	}
	if d.EditTemplate != nil {
		t.Fatal("expected no edit template")
	}
	if !d.SupportsImages || !d.ParallelGeneration {
		t.Fatalf("expected images and parallel for gpt-4o: %+v", d)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "editTemplate") || strings.Contains(string(data), `"family"`) {
		t.Fatalf("expected absent family and edit fields, got %s", data)
	}
}

func TestDetectExplicitFamilyAndOverride(t *testing.T) {
	no := false
	d := Detect(Request{
		Provider:     "replicate",
		Model:        "my-finetune",
		Title:        "Claude-ish",
		Family:       templates.FamilyPtr(templates.Anthropic),
		Capabilities: &Capabilities{UploadImage: &no},
	})
	if d.Rule != "explicit" || d.Family != templates.Anthropic {
		t.Fatalf("expected explicit anthropic, got %q via %q", d.Family, d.Rule)
	}
	if d.ChatFamily != templates.Anthropic || d.ChatFormatter == nil {
		t.Fatal("expected anthropic chat formatter")
	}
	if d.EditTemplate != templates.ClaudeEditPrompt {
		t.Fatalf("expected claude edit template, got %q", d.EditTemplateName)
	}
	if d.SupportsImages {
		t.Fatal("override should disable images")
	}
	if !d.ParallelGeneration {
		t.Fatal("replicate generates in parallel")
	}
}
