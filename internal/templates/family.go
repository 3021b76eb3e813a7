// internal/templates/family.go

// Package templates holds the closed set of prompt template families together with the
// chat formatters and edit prompt templates bound to them.
package templates

import (
	"fmt"
	"strings"
)

// Family identifies which model's expected prompt structure to emulate.
type Family string

const (
	Llama2       Family = "llama2"
	Alpaca       Family = "alpaca"
	Phi2         Family = "phi2"
	Phind        Family = "phind"
	Zephyr       Family = "zephyr"
	Anthropic    Family = "anthropic"
	ChatML       Family = "chatml"
	DeepSeek     Family = "deepseek"
	OpenChat     Family = "openchat"
	XWinCoder    Family = "xwin-coder"
	NeuralChat   Family = "neural-chat"
	Llava        Family = "llava"
	CodeLlama70b Family = "codellama-70b"
	Gemma        Family = "gemma"
	Granite      Family = "granite"
	Llama3       Family = "llama3"
	Codestral    Family = "codestral"
	// None means the model is always reached through a dedicated multi-turn API.
	None Family = "none"
)

var families = []Family{
	Llama2, Alpaca, Phi2, Phind, Zephyr, Anthropic, ChatML, DeepSeek, OpenChat,
	XWinCoder, NeuralChat, Llava, CodeLlama70b, Gemma, Granite, Llama3, Codestral, None,
}

// Families returns every template family in declaration order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// Valid reports whether f is a member of the closed family set.
func (f Family) Valid() bool {
	for _, known := range families {
		if f == known {
			return true
		}
	}
	return false
}

func (f Family) String() string { return string(f) }

// ParseFamily converts a configuration or flag value into a Family.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown template family %q", s)
	}
	return f, nil
}

// FamilyPtr is a helper for building optional family overrides.
func FamilyPtr(f Family) *Family { return &f }
