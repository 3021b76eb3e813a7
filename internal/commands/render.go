// internal/commands/render.go
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mwiater/autodetect/internal/autodetect"
	"github.com/mwiater/autodetect/internal/logging"
	"github.com/mwiater/autodetect/internal/providers"
	"github.com/mwiater/autodetect/internal/templates"
	"github.com/mwiater/autodetect/internal/util"
	"github.com/spf13/cobra"
)

// renderCmd represents the 'render' command group.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render chat or edit prompts",
	Long:  `The 'render' command groups subcommands that turn a conversation or an edit request into the prompt text a model would receive.`,
}

// renderChatCmd implements 'render chat', which formats a conversation file.
var renderChatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Format a JSON conversation with a chat template",
	Long: `The 'chat' subcommand reads a JSON array of {"role","content"} messages and formats it.
With --family the formatter is chosen explicitly; otherwise --model and --provider are
used for autodetection, and nothing is rendered when the provider formats turns itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		messagesPath, _ := flags.GetString("messages")
		familyName, _ := flags.GetString("family")
		model, _ := flags.GetString("model")
		provider, _ := flags.GetString("provider")
		outPath, _ := flags.GetString("out")

		msgs, err := readMessages(messagesPath)
		if err != nil {
			return err
		}

		var explicit *templates.Family
		if strings.TrimSpace(familyName) != "" {
			family, err := templates.ParseFamily(familyName)
			if err != nil {
				return err
			}
			explicit = &family
		} else if strings.TrimSpace(model) == "" {
			return errors.New("one of --family or --model is required")
		}

		format := autodetect.AutodetectTemplateFunction(model, provider, explicit)
		if format == nil {
			logging.LogEvent("render chat: no local formatting for provider=%s model=%s", provider, model)
			fmt.Fprintln(cmd.ErrOrStderr(), "no local chat formatting applies; send the messages as structured turns")
			return nil
		}
		return emit(cmd.OutOrStdout(), outPath, format(msgs))
	},
}

// renderEditCmd implements 'render edit', which renders the edit prompt selected for a model.
var renderEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Render the edit prompt selected for a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		model, _ := flags.GetString("model")
		familyName, _ := flags.GetString("template")
		codePath, _ := flags.GetString("code")
		input, _ := flags.GetString("input")
		language, _ := flags.GetString("language")
		outPath, _ := flags.GetString("out")

		var explicit *templates.Family
		if strings.TrimSpace(familyName) != "" {
			family, err := templates.ParseFamily(familyName)
			if err != nil {
				return err
			}
			explicit = &family
		}

		selected := autodetect.AutodetectPromptTemplates(model, explicit)
		if !selected.HasEdit() {
			return fmt.Errorf("model %q has no edit template", model)
		}

		code, err := os.ReadFile(codePath)
		if err != nil {
			return fmt.Errorf("read code file: %w", err)
		}
		prompt, err := selected.Edit.Render(templates.EditData{
			CodeToEdit: strings.TrimRight(string(code), "\n"),
			UserInput:  input,
			Language:   language,
		})
		if err != nil {
			return err
		}
		logging.LogEvent("render edit: model=%s template=%s", model, selected.Edit.Name)
		return emit(cmd.OutOrStdout(), outPath, prompt)
	},
}

func init() {
	renderChatCmd.Flags().String("messages", "", "path to a JSON array of chat messages")
	renderChatCmd.Flags().String("family", "", "template family to format with")
	renderChatCmd.Flags().String("model", "", "model name used for autodetection")
	renderChatCmd.Flags().String("provider", "", "provider identifier used for autodetection")
	renderChatCmd.Flags().String("out", "", "write the prompt to this file instead of stdout")
	_ = renderChatCmd.MarkFlagRequired("messages")

	renderEditCmd.Flags().String("model", "", "model name")
	renderEditCmd.Flags().String("template", "", "explicit template family (overrides autodetection)")
	renderEditCmd.Flags().String("code", "", "path to the code to edit")
	renderEditCmd.Flags().String("input", "", "the edit request")
	renderEditCmd.Flags().String("language", "", "language tag for code fences")
	renderEditCmd.Flags().String("out", "", "write the prompt to this file instead of stdout")
	_ = renderEditCmd.MarkFlagRequired("code")
	_ = renderEditCmd.MarkFlagRequired("input")

	renderCmd.AddCommand(renderChatCmd)
	renderCmd.AddCommand(renderEditCmd)
	rootCmd.AddCommand(renderCmd)
}

func readMessages(path string) ([]providers.ChatMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	var msgs []providers.ChatMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages %q: %w", path, err)
	}
	return msgs, nil
}

func emit(out io.Writer, path, prompt string) error {
	if path == "" {
		_, err := fmt.Fprint(out, prompt)
		return err
	}
	return util.WriteFile(path, []byte(prompt))
}
