package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
)

type result struct {
	name    string
	answer  int
	elapsed time.Duration
}

// runAll runs every registered solution concurrently, reading the input
// for day N from dir/N.txt. It fails if any solution fails; once one has
// failed, solutions that haven't started yet are skipped.
func runAll(ctx context.Context, cfg *config, dir string) ([]result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	names := solutionNames()
	results := make([]result, len(names))
	var wg wait.Group
	for i, name := range names {
		fn := solutions[name]
		wg.Go(func(quit <-chan struct{}) error {
			go func() {
				select {
				case <-quit:
					cancel()
				case <-ctx.Done():
				}
			}()
			day, _ := splitName(name)
			input, err := readInput(ctx, filepath.Join(dir, fmt.Sprintf("%d.txt", day)))
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			answer, err := fn(cfg, input)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = result{name: name, answer: answer, elapsed: time.Since(start)}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResults(w io.Writer, results []result) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "solution\tanswer\ttime\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", r.name, humanize.Comma(int64(r.answer)), r.elapsed.Round(time.Microsecond))
	}
	tw.Flush()
}
