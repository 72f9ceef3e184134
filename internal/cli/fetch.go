package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/gleaner/internal/fetch"
	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	fetchTimeout time.Duration
	userAgent    string
	maxBytes     int64
	ratePerSec   float64
	noRobots     bool
	httpProxy    string
	httpsProxy   string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <url>...",
	Short: "Fetch listing pages and extract attributes from their titles",
	Long: `Fetch retrieves one or more listing pages, pulls the listing title
out of each page (og:title or the <title> element), and runs the
attribute engine over it.

Fetching is polite: per-domain rate limiting, robots.txt compliance,
and capped redirects and body size.

Example:
  gleaner fetch https://www.ebay.com/itm/123456789012
  gleaner fetch https://example.com/listing --format yaml --rate 0.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&outFormat, "format", "f", "json", "output format (json, yaml, plain)")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "HTTP timeout per request")
	fetchCmd.Flags().StringVar(&userAgent, "ua", "Gleaner/0.1 (+https://github.com/ppiankov/gleaner)", "HTTP User-Agent")
	fetchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	fetchCmd.Flags().Float64Var(&ratePerSec, "rate", 1.0, "max requests per second per domain")
	fetchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	fetchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	fetchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = fetchTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RatePerSecond = ratePerSec
	cfg.HTTP.RespectRobots = !noRobots
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy

	engine, err := pipeline.New()
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	renderer, err := pipeline.NewRenderer(outFormat)
	if err != nil {
		return err
	}
	fetcher := fetch.New(cfg.HTTP)

	ctx := context.Background()
	var results []*model.Result
	failures := 0
	for _, url := range args {
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching: %s\n", url)
		}
		page, err := fetcher.FetchTitle(ctx, url)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", url, err)
			continue
		}
		res := engine.ExtractTitle(page.Title)
		res.Source = url
		results = append(results, res)
	}

	if len(results) == 0 {
		return fmt.Errorf("no listing could be fetched")
	}
	if len(results) == 1 {
		if err := renderer.Render(os.Stdout, results[0]); err != nil {
			return err
		}
	} else if err := renderer.RenderAll(os.Stdout, results); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d fetches failed", failures, len(args))
	}
	return nil
}
