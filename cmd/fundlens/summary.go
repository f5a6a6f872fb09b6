package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"FundLens/internal/report"
)

type summaryCmd struct {
	period string
	watch  int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a one-line summary per fund" }
func (*summaryCmd) Usage() string {
	return `fundlens summary [-p <period>] [-w n] <fund_code>...

  Displays the latest NAV, drawdown, Sharpe ratio and signal tier of each
  fund on one line. Failing funds are listed with their error.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "chart period: 1m 3m 6m 1y 3y 5y all (defaults to config)")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one fund code is required")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	return watchLoop(ctx, c.watch, func() bool {
		ok := true
		for _, r := range a.analyzer.AnalyzeMany(ctx, f.Args(), a.period(c.period)) {
			if r.Err != nil {
				ok = false
			}
			fmt.Println(report.FormatLine(r.FundCode, r.Report, r.Err))
		}
		return ok
	})
}
