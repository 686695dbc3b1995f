package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synthcrm/crmgen/internal/render"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <input.md>",
	Short: "Compile a markdown document to styled HTML",
	Long: `Compile a markdown file into a standalone HTML page with a table
of contents, styled to match the EDA report. Tables and fenced code
blocks are supported.

Example:
  crmgen render collaboration_guide.md --output guide.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderOutput, "output", "",
		"path of the HTML output (default: input path with .html extension)")
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]

	output := cfg.Render.Output
	if renderOutput != "" {
		output = renderOutput
	}
	if output == "" {
		output = strings.TrimSuffix(input, ".md") + ".html"
	}
	if output == input {
		return fmt.Errorf("output path equals input path: %s", input)
	}

	if err := render.File(input, output); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}
