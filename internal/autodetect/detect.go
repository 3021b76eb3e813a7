// internal/autodetect/detect.go
package autodetect

import (
	"github.com/mwiater/autodetect/internal/logging"
	"github.com/mwiater/autodetect/internal/templates"
)

// Request describes one configured model.
type Request struct {
	Provider     string
	Model        string
	Title        string
	Family       *templates.Family
	Capabilities *Capabilities
}

// Detection is the combined answer for a Request.
type Detection struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Title    string `json:"title,omitempty"`
	// Family is empty when Resolved is false.
	Family   templates.Family `json:"family,omitempty"`
	Resolved bool             `json:"resolved"`
	Rule     string           `json:"rule"`
	// ChatFamily names the family of ChatFormatter; empty when no local formatting applies.
	ChatFamily         templates.Family        `json:"chatFamily,omitempty"`
	ChatFormatter      templates.ChatFormatter `json:"-"`
	EditTemplate       *templates.EditTemplate `json:"-"`
	EditTemplateName   string                  `json:"editTemplate,omitempty"`
	SupportsImages     bool                    `json:"supportsImages"`
	ParallelGeneration bool                    `json:"parallelGeneration"`
}

// Detect runs every decision for req and logs the result.
func Detect(req Request) Detection {
	family, resolved := resolveFamily(req.Model, req.Family)
	rule := "explicit"
	if req.Family == nil {
		rule = matchingRule(req.Model)
	}

	d := Detection{
		Provider:           req.Provider,
		Model:              req.Model,
		Title:              req.Title,
		Resolved:           resolved,
		Rule:               rule,
		ChatFormatter:      AutodetectTemplateFunction(req.Model, req.Provider, req.Family),
		EditTemplate:       AutodetectPromptTemplates(req.Model, req.Family).Edit,
		SupportsImages:     ModelSupportsImages(req.Provider, req.Model, req.Title, req.Capabilities),
		ParallelGeneration: LLMCanGenerateInParallel(req.Provider, req.Model),
	}
	if resolved {
		d.Family = family
	}
	if d.ChatFormatter != nil {
		d.ChatFamily = family
	}
	if d.EditTemplate != nil {
		d.EditTemplateName = d.EditTemplate.Name
	}

	logging.LogDecision(req.Provider, req.Model, map[string]any{
		"family":   string(d.Family),
		"rule":     d.Rule,
		"chat":     string(d.ChatFamily),
		"edit":     d.EditTemplateName,
		"images":   d.SupportsImages,
		"parallel": d.ParallelGeneration,
	})
	return d
}
