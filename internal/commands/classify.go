// internal/commands/classify.go
package commands

import (
	"fmt"
	"strings"

	"github.com/mwiater/autodetect/internal/autodetect"
	"github.com/spf13/cobra"
)

type classification struct {
	Model    string `json:"model"`
	Family   string `json:"family,omitempty"`
	Resolved bool   `json:"resolved"`
}

// classifyCmd implements 'classify', which prints the template family of each model name.
var classifyCmd = &cobra.Command{
	Use:   "classify MODEL...",
	Short: "Classify model names into template families",
	Long:  `The 'classify' command prints the template family for each model name. Models served through APIs that structure turns themselves are reported as "native".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]classification, 0, len(args))
		width := 0
		for _, model := range args {
			family, ok := autodetect.AutodetectTemplateType(model)
			c := classification{Model: model, Resolved: ok}
			if ok {
				c.Family = string(family)
			}
			results = append(results, c)
			if len(model) > width {
				width = len(model)
			}
		}

		out := cmd.OutOrStdout()
		if JSONModeEnabled() {
			return writeJSON(out, results)
		}
		for _, c := range results {
			label := nativeStyle.Render("native")
			if c.Resolved {
				label = familyStyle.Render(c.Family)
			}
			fmt.Fprintf(out, "%s%s%s\n", c.Model, strings.Repeat(" ", width-len(c.Model)+2), label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
