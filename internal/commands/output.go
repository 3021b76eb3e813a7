// internal/commands/output.go
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mwiater/autodetect/internal/autodetect"
	"github.com/mwiater/autodetect/internal/util"
)

var (
	headingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	familyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	nativeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	yes = color.New(color.FgGreen).SprintFunc()
	no  = color.New(color.FgRed).SprintFunc()
)

const maxTitleRunes = 32

func yesNo(v bool) string {
	if v {
		return yes("yes")
	}
	return no("no")
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// familyLabel renders the classified family, or "native" when the provider API structures turns.
func familyLabel(d autodetect.Detection) string {
	if !d.Resolved {
		return nativeStyle.Render("native")
	}
	return familyStyle.Render(string(d.Family))
}

func chatLabel(d autodetect.Detection) string {
	if d.ChatFormatter == nil {
		return disabledStyle.Render("provider")
	}
	return familyStyle.Render(string(d.ChatFamily))
}

func editLabel(d autodetect.Detection) string {
	if d.EditTemplate == nil {
		return disabledStyle.Render("none")
	}
	return d.EditTemplateName
}

func printDetection(out io.Writer, d autodetect.Detection) {
	name := util.OrDash(d.Provider) + "/" + d.Model
	if d.Title != "" {
		name = util.TruncateRunes(d.Title, maxTitleRunes)
	}
	fmt.Fprintln(out, headingStyle.Render(name+":"))
	fmt.Fprintf(out, "  family:     %s (rule: %s)\n", familyLabel(d), util.OrDash(d.Rule))
	fmt.Fprintf(out, "  chat:       %s\n", chatLabel(d))
	fmt.Fprintf(out, "  edit:       %s\n", editLabel(d))
	fmt.Fprintf(out, "  images:     %s\n", yesNo(d.SupportsImages))
	fmt.Fprintf(out, "  parallel:   %s\n", yesNo(d.ParallelGeneration))
}
