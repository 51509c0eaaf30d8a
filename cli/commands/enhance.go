package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/studio"
)

func (a *App) newEnhanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Rewrite a prompt into a detailed image prompt",
		Long: `Rewrite a short prompt into a detailed, cinematic description using the
Gemini text model. The original prompt is printed back if the model returns
no text.

Examples:
  visionary enhance --prompt "old cafe on new year's eve"
  visionary enhance --prompt "closing sale" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(a.prompt) == "" {
				return a.handleError(core.ErrEmptyPrompt)
			}

			gen, err := a.generator()
			if err != nil {
				return a.fail(ExitValidation, err)
			}

			enhanced, err := gen.Enhance(cmd.Context(), a.prompt)
			if err != nil {
				return a.handleErrorWith(err, studio.EnhanceMessage)
			}

			if a.jsonOutput {
				return a.writeJSON(map[string]string{"prompt": enhanced})
			}
			fmt.Fprintln(a.stdout, enhanced)
			return nil
		},
	}

	cmd.Flags().StringVar(&a.prompt, "prompt", "", "prompt to enhance (required)")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}
