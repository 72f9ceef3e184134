package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
)

// Engine extracts attributes from one listing title. The pipeline
// satisfies it; batch tests stub it.
type Engine interface {
	ExtractTitle(title string) *model.Result
}

// ExtractJob is one title extraction.
type ExtractJob struct {
	Index  int
	Title  string
	Engine Engine
}

// Execute runs the extraction. Extraction itself cannot fail; the only
// error a job reports is cancellation.
func (j *ExtractJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ExtractResult{Index: j.Index, Title: j.Title, Error: err}
	}
	return &ExtractResult{
		Index:  j.Index,
		Title:  j.Title,
		Result: j.Engine.ExtractTitle(j.Title),
	}
}

// ExtractResult is the outcome of one title job.
type ExtractResult struct {
	Index  int
	Title  string
	Result *model.Result
	Error  error
}

// GetError returns the job error.
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor runs many titles through the engine concurrently. Each
// title gets its own claim set inside the engine; jobs share nothing.
type BatchProcessor struct {
	engine      Engine
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(engine Engine, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		engine:      engine,
		concurrency: concurrency,
	}
}

// ProcessTitles extracts every title concurrently and returns results in
// input order.
func (b *BatchProcessor) ProcessTitles(ctx context.Context, titles []string) []*ExtractResult {
	if len(titles) == 0 {
		return []*ExtractResult{}
	}
	if err := ctx.Err(); err != nil {
		results := make([]*ExtractResult, 0, len(titles))
		for i, title := range titles {
			results = append(results, &ExtractResult{Index: i, Title: title, Error: err})
		}
		return results
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, title := range titles {
		pool.Submit(&ExtractJob{Index: i, Title: title, Engine: b.engine})
	}

	raw := pool.Wait()
	results := make([]*ExtractResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*ExtractResult))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// ProcessFile reads titles from a file and extracts them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ExtractResult, error) {
	titles, err := ReadTitlesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read titles: %w", err)
	}
	return b.ProcessTitles(ctx, titles), nil
}

// ReadTitlesFromFile reads one title per line, skipping blanks and
// "#" comments and dropping duplicate lines.
func ReadTitlesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var titles []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			titles = append(titles, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return titles, nil
}
