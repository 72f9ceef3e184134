package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/pipeline"
	"github.com/spf13/cobra"
)

var outFormat string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [title]...",
	Short: "Extract attributes from listing titles",
	Long: `Extract runs the attribute engine over one or more listing titles
given as arguments, or over stdin when no arguments are given.

Example:
  gleaner extract "Dell Latitude 7490 i5-8350U 256GB SSD 16GB Win11 Pro"
  gleaner extract "Lot of 5 HP EliteBook 840 G5" --format yaml
  cat titles.txt | gleaner extract --format plain`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&outFormat, "format", "f", "json", "output format (json, yaml, plain)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	titles := args
	if len(titles) == 0 {
		var err error
		titles, err = readTitles(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	if len(titles) == 0 {
		return fmt.Errorf("no titles given (pass them as arguments or on stdin)")
	}

	engine, err := pipeline.New()
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	renderer, err := pipeline.NewRenderer(outFormat)
	if err != nil {
		return err
	}

	results := make([]*model.Result, 0, len(titles))
	for _, title := range titles {
		results = append(results, engine.ExtractTitle(title))
	}

	if len(results) == 1 {
		return renderer.Render(os.Stdout, results[0])
	}
	return renderer.RenderAll(os.Stdout, results)
}

// readTitles reads one title per line, skipping blanks and "#" comments.
func readTitles(r *os.File) ([]string, error) {
	var titles []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	return titles, scanner.Err()
}
