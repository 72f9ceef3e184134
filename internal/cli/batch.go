package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ppiankov/gleaner/internal/cache"
	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/pipeline"
	"github.com/ppiankov/gleaner/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	batchTimeout time.Duration
	outputPath   string
	noCache      bool
	cacheDir     string
	cacheTTL     time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract attributes from a file of titles in parallel",
	Long: `Batch processes a file of listing titles concurrently:
- Read titles from the input file (one per line, # for comments)
- Extract attributes in parallel with a configurable worker count
- Reuse cached results for titles seen before

Example:
  gleaner batch titles.txt
  gleaner batch titles.txt --workers 8 --format yaml
  gleaner batch titles.txt --output results.json --cache-dir ~/.gleaner/cache`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "workers", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	batchCmd.Flags().StringVarP(&outFormat, "format", "f", "json", "output format (json, yaml, plain)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist cached results under this directory")
	batchCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", time.Hour, "how long cached results stay valid")
}

// cachedEngine wraps the extraction engine with a result cache. A nil
// cache passes every title through.
type cachedEngine struct {
	engine *pipeline.Pipeline
	cache  *cache.ResultCache
}

func (c *cachedEngine) ExtractTitle(title string) *model.Result {
	if res, found := c.cache.Get(title); found {
		return res
	}
	res := c.engine.ExtractTitle(title)
	_ = c.cache.Put(title, res)
	return res
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Cache.TTL = cacheTTL
	cfg.Cache.Dir = cacheDir
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Format = outFormat
	cfg.Output.Verbose = verbose

	engine, err := pipeline.New()
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	renderer, err := pipeline.NewRenderer(cfg.Output.Format)
	if err != nil {
		return err
	}

	resultCache := cache.NewResultCache(cache.FromConfig(cfg.Cache), cfg.Cache.TTL)
	processor := worker.NewBatchProcessor(&cachedEngine{engine: engine, cache: resultCache}, cfg.Concurrency.Workers)

	if verbose {
		fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
		fmt.Fprintf(os.Stderr, "Workers:    %d\n", cfg.Concurrency.Workers)
		fmt.Fprintf(os.Stderr, "Cache:      %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	batchResults, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	results := make([]*model.Result, 0, len(batchResults))
	failures := 0
	for _, br := range batchResults {
		if br.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", br.Title, br.Error)
			continue
		}
		results = append(results, br.Result)
	}

	if err := renderer.RenderAll(out, results); err != nil {
		return fmt.Errorf("render results: %w", err)
	}

	if verbose {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Total:    %d titles\n", len(batchResults))
		fmt.Fprintf(os.Stderr, "Success:  %d\n", len(results))
		fmt.Fprintf(os.Stderr, "Failures: %d\n", failures)
	}
	return nil
}
