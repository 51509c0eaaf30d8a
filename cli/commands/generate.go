package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petal-labs/visionary/cli/logging"
	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/studio"
)

// stdoutPath writes the data URI to stdout instead of a file.
const stdoutPath = "-"

type generateOutput struct {
	ID          string           `json:"id"`
	Prompt      string           `json:"prompt"`
	AspectRatio core.AspectRatio `json:"aspect_ratio"`
	HighQuality bool             `json:"high_quality"`
	File        string           `json:"file,omitempty"`
}

func (a *App) newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an image from a prompt",
		Long: `Generate one image and write it to disk.

--out accepts a file path, an existing directory (the file is named
visionary-<timestamp>.<ext>), or "-" to print the data URI.

Examples:
  visionary generate --prompt "frosted cafe window at midnight"
  visionary generate --prompt "empty shop" --aspect-ratio 16:9 --hq --out shop.png
  visionary generate --prompt "closing sale" --enhance --json`,
		RunE: a.runGenerate,
	}

	cmd.Flags().StringVar(&a.prompt, "prompt", "", "image prompt (required)")
	cmd.Flags().StringVar(&a.aspectRatio, "aspect-ratio", "", "1:1, 3:4, 4:3, 16:9, 9:16 or a label such as wide (default from config)")
	cmd.Flags().BoolVar(&a.highQuality, "hq", false, "use the high-quality model")
	cmd.Flags().BoolVar(&a.enhanceFirst, "enhance", false, "enhance the prompt before generating")
	cmd.Flags().StringVar(&a.outPath, "out", ".", `output file, directory, or "-" for stdout`)
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContextOrDiscard(ctx)

	if strings.TrimSpace(a.prompt) == "" {
		return a.handleError(core.ErrEmptyPrompt)
	}

	aspect := a.cfg.AspectRatio()
	if a.aspectRatio != "" {
		parsed, err := core.ParseAspectRatio(a.aspectRatio)
		if err != nil {
			return a.handleError(err)
		}
		aspect = parsed
	}

	highQuality := a.highQuality
	if !cmd.Flags().Changed("hq") {
		highQuality = a.cfg.HighQuality
	}

	gen, err := a.generator()
	if err != nil {
		return a.fail(ExitValidation, err)
	}

	prompt := a.prompt
	if a.enhanceFirst {
		prompt, err = gen.Enhance(ctx, prompt)
		if err != nil {
			return a.handleError(err)
		}
		log.Debug("prompt enhanced", "length", len(prompt))
	}

	session := studio.New(gen, studio.WithLogger(log))
	img, err := session.Generate(ctx, prompt, aspect, highQuality)
	if err != nil {
		return a.handleError(err)
	}

	out := generateOutput{
		ID:          img.ID,
		Prompt:      img.Prompt,
		AspectRatio: img.AspectRatio,
		HighQuality: highQuality,
	}

	if a.outPath == stdoutPath {
		if a.jsonOutput {
			return a.writeJSON(struct {
				generateOutput
				URL core.ImageRef `json:"url"`
			}{out, img.URL})
		}
		fmt.Fprintln(a.stdout, img.URL)
		return nil
	}

	d, err := studio.NewDownload(img)
	if err != nil {
		return a.handleError(err)
	}
	path, err := resolveOutPath(a.outPath, d.Filename)
	if err != nil {
		return a.fail(ExitValidation, err)
	}
	if err := os.WriteFile(path, d.Data, 0o644); err != nil {
		return a.fail(ExitValidation, fmt.Errorf("write image: %w", err))
	}
	out.File = path

	if a.jsonOutput {
		return a.writeJSON(out)
	}
	fmt.Fprintf(a.stdout, "Image saved to %s\n", path)
	return nil
}

// resolveOutPath returns the file to write: out itself, or name inside out
// when out is a directory.
func resolveOutPath(out, name string) (string, error) {
	if out == "" {
		out = "."
	}
	info, err := os.Stat(out)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(out, name), nil
	case err == nil:
		return out, nil
	case os.IsNotExist(err):
		if strings.HasSuffix(out, string(os.PathSeparator)) || strings.HasSuffix(out, "/") {
			return "", fmt.Errorf("output directory %s does not exist", out)
		}
		return out, nil
	default:
		return "", err
	}
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
