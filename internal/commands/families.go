// internal/commands/families.go
package commands

import (
	"fmt"

	"github.com/mwiater/autodetect/internal/autodetect"
	"github.com/mwiater/autodetect/internal/templates"
	"github.com/spf13/cobra"
)

type familyBinding struct {
	Family       string `json:"family"`
	ChatFormat   bool   `json:"chatFormat"`
	EditTemplate string `json:"editTemplate,omitempty"`
}

func familyBindings() []familyBinding {
	var out []familyBinding
	for _, f := range templates.Families() {
		b := familyBinding{
			Family:     string(f),
			ChatFormat: autodetect.ChatFormatterFor(f) != nil,
		}
		if edit := autodetect.AutodetectPromptTemplates("", &f).Edit; edit != nil {
			b.EditTemplate = edit.Name
		}
		out = append(out, b)
	}
	return out
}

// familiesCmd implements 'families', which lists the template families and what each binds to.
var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List template families with their chat and edit bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		bindings := familyBindings()
		out := cmd.OutOrStdout()
		if JSONModeEnabled() {
			return writeJSON(out, bindings)
		}
		fmt.Fprintln(out, headingStyle.Render("Template families:"))
		for _, b := range bindings {
			edit := b.EditTemplate
			if edit == "" {
				edit = disabledStyle.Render("none")
			}
			fmt.Fprintf(out, "  %-14s chat=%-4s edit=%s\n", b.Family, yesNo(b.ChatFormat), edit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}
