package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"FundLens/internal/analyzer"
	"FundLens/internal/report"
)

type reportCmd struct {
	period string
	format string
	watch  int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the indicator, risk and signal report of funds" }
func (*reportCmd) Usage() string {
	return `fundlens report [-p <period>] [-format text|json] [-w n] <fund_code>...

  Displays the full report of each fund: latest indicator readings, risk
  metrics over the chart period and the weighted technical signal.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "chart period: 1m 3m 6m 1y 3y 5y all (defaults to config)")
	f.StringVar(&c.format, "format", "text", "output format (text, json)")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one fund code is required")
		return subcommands.ExitUsageError
	}
	if c.format != "text" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	return watchLoop(ctx, c.watch, func() bool {
		results := a.analyzer.AnalyzeMany(ctx, f.Args(), a.period(c.period))
		return c.render(results)
	})
}

func (c *reportCmd) render(results []analyzer.Result) bool {
	ok := true
	if c.format == "json" {
		out := make(map[string]any, len(results))
		for _, r := range results {
			if r.Err != nil {
				out[r.FundCode] = map[string]string{"error": r.Err.Error()}
				ok = false
				continue
			}
			out[r.FundCode] = r.Report
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		return ok
	}

	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		if r.Err != nil {
			fmt.Println(report.FormatLine(r.FundCode, nil, r.Err))
			ok = false
			continue
		}
		fmt.Print(report.FormatReport(r.Report))
	}
	return ok
}

// watchLoop runs fn once, or every watch seconds until ctx is done.
func watchLoop(ctx context.Context, watch int, fn func() bool) subcommands.ExitStatus {
	if watch <= 0 {
		if !fn() {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	ticker := time.NewTicker(time.Duration(watch) * time.Second)
	defer ticker.Stop()
	for {
		fmt.Print("\033[2J\033[H")
		fn()
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-ticker.C:
		}
	}
}
