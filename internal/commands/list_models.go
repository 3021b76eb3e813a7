// internal/commands/list_models.go
package commands

import (
	"errors"
	"fmt"

	"github.com/mwiater/autodetect/internal/appconfig"
	"github.com/mwiater/autodetect/internal/autodetect"
	"github.com/spf13/cobra"
)

// listModelsCmd implements 'list models', which runs detection for every configured model.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Detect templates and capabilities for every configured model",
	Long:  `The 'models' subcommand runs detection for each model listed in the configuration file (default: config/config.json).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		detections, err := detectConfigured(GetConfig())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if JSONModeEnabled() {
			return writeJSON(out, detections)
		}
		for _, d := range detections {
			printDetection(out, d)
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listModelsCmd)
}

// detectConfigured runs detection for each model entry in configuration order.
func detectConfigured(cfg *appconfig.Config) ([]autodetect.Detection, error) {
	if cfg == nil || len(cfg.Models) == 0 {
		return nil, errors.New("no models configured")
	}
	detections := make([]autodetect.Detection, 0, len(cfg.Models))
	for _, entry := range cfg.Models {
		req, err := entry.Request()
		if err != nil {
			return nil, err
		}
		detections = append(detections, autodetect.Detect(req))
	}
	return detections, nil
}
