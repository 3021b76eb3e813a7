// internal/commands/detect.go
package commands

import (
	"errors"
	"strings"

	"github.com/mwiater/autodetect/internal/autodetect"
	"github.com/mwiater/autodetect/internal/templates"
	"github.com/spf13/cobra"
)

// detectCmd implements 'detect', which runs every decision for a single provider/model pair.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect template family, formatters and capabilities for one model",
	Long: `The 'detect' command classifies a model name, selects the chat formatter and edit
template, and reports image and parallel-generation support for the given provider.`,
	Example: `  autodetect detect --provider ollama --model llama3.2-vision:11b
  autodetect detect --provider replicate --model my-finetune --template zephyr --uploadImage=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := detectRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		d := autodetect.Detect(req)
		if JSONModeEnabled() {
			return writeJSON(cmd.OutOrStdout(), d)
		}
		printDetection(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	detectCmd.Flags().String("provider", "", "provider identifier (e.g. openai, ollama)")
	detectCmd.Flags().String("model", "", "model name")
	detectCmd.Flags().String("title", "", "display title of the model")
	detectCmd.Flags().String("template", "", "explicit template family (overrides autodetection)")
	detectCmd.Flags().Bool("uploadImage", false, "explicit image support override")
	rootCmd.AddCommand(detectCmd)
}

func detectRequestFromFlags(cmd *cobra.Command) (autodetect.Request, error) {
	flags := cmd.Flags()
	provider, _ := flags.GetString("provider")
	model, _ := flags.GetString("model")
	title, _ := flags.GetString("title")
	template, _ := flags.GetString("template")

	if strings.TrimSpace(model) == "" {
		return autodetect.Request{}, errors.New("--model is required")
	}

	req := autodetect.Request{
		Provider: strings.TrimSpace(provider),
		Model:    model,
		Title:    title,
	}
	if strings.TrimSpace(template) != "" {
		family, err := templates.ParseFamily(template)
		if err != nil {
			return autodetect.Request{}, err
		}
		req.Family = &family
	}
	// Only an explicitly passed flag overrides inference.
	if flags.Changed("uploadImage") {
		upload, _ := flags.GetBool("uploadImage")
		req.Capabilities = &autodetect.Capabilities{UploadImage: &upload}
	}
	return req, nil
}
