// internal/autodetect/classify.go
package autodetect

import (
	"regexp"
	"strings"

	"github.com/mwiater/autodetect/internal/templates"
)

// classifierRule maps a predicate over the lowercased model name to a family.
// resolved is false for rules whose match means the provider formats turns natively.
type classifierRule struct {
	name     string
	match    func(lower string) bool
	family   templates.Family
	resolved bool
}

var reasoningModelPattern = regexp.MustCompile(`^o\d`)

func containsAny(fragments ...string) func(string) bool {
	return func(lower string) bool {
		for _, f := range fragments {
			if strings.Contains(lower, f) {
				return true
			}
		}
		return false
	}
}

func resolvesTo(name string, family templates.Family, fragments ...string) classifierRule {
	return classifierRule{name: name, match: containsAny(fragments...), family: family, resolved: true}
}

// classifierRules is evaluated in order; the first match wins.
var classifierRules = []classifierRule{
	{
		name: "codellama-70b",
		match: func(lower string) bool {
			return strings.Contains(lower, "codellama") && strings.Contains(lower, "70b")
		},
		family:   templates.CodeLlama70b,
		resolved: true,
	},
	{
		name: "native-api",
		match: func(lower string) bool {
			return containsAny("gpt", "command", "aya", "chat-bison", "pplx", "gemini", "grok", "moonshot", "mercury")(lower) ||
				reasoningModelPattern.MatchString(lower)
		},
		resolved: false,
	},
	resolvesTo("llama3", templates.Llama3, "llama3", "llama-3"),
	resolvesTo("llava", templates.Llava, "llava"),
	resolvesTo("tinyllama", templates.Zephyr, "tinyllama"),
	resolvesTo("xwin", templates.XWinCoder, "xwin"),
	resolvesTo("dolphin", templates.ChatML, "dolphin"),
	resolvesTo("gemma", templates.Gemma, "gemma"),
	resolvesTo("phi2", templates.Phi2, "phi2"),
	resolvesTo("phind", templates.Phind, "phind"),
	resolvesTo("llama", templates.Llama2, "llama"),
	resolvesTo("zephyr", templates.Zephyr, "zephyr"),
	// Claude goes through the Messages API and Nova through Converse.
	resolvesTo("claude", templates.None, "claude"),
	resolvesTo("nova", templates.None, "nova"),
	resolvesTo("codestral", templates.None, "codestral"),
	resolvesTo("alpaca", templates.Alpaca, "alpaca", "wizard"),
	resolvesTo("mistral", templates.Llama2, "mistral", "mixtral"),
	resolvesTo("deepseek", templates.DeepSeek, "deepseek"),
	resolvesTo("openchat", templates.OpenChat, "ninja", "openchat"),
	resolvesTo("neural-chat", templates.NeuralChat, "neural-chat"),
	resolvesTo("granite", templates.Granite, "granite"),
}

// AutodetectTemplateType classifies a model name into a template family.
// ok is false when the model is served through an API that structures turns itself;
// that outcome is distinct from templates.None. Unmatched names default to ChatML.
func AutodetectTemplateType(model string) (family templates.Family, ok bool) {
	lower := strings.ToLower(model)
	for _, rule := range classifierRules {
		if rule.match(lower) {
			return rule.family, rule.resolved
		}
	}
	return templates.ChatML, true
}

// matchingRule returns the name of the rule that classified model, or "default".
func matchingRule(model string) string {
	lower := strings.ToLower(model)
	for _, rule := range classifierRules {
		if rule.match(lower) {
			return rule.name
		}
	}
	return "default"
}

// resolveFamily applies an explicit override before falling back to classification.
func resolveFamily(model string, explicit *templates.Family) (templates.Family, bool) {
	if explicit != nil {
		return *explicit, true
	}
	return AutodetectTemplateType(model)
}
