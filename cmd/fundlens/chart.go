package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"FundLens/internal/model"
)

type chartCmd struct {
	period string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "print the chart series of a fund as JSON" }
func (*chartCmd) Usage() string {
	return `fundlens chart [-p <period>] <fund_code>

  Prints dates, values and every aligned indicator series of the chart
  window. Positions where an indicator is undefined are null.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "chart period: 1m 3m 6m 1y 3y 5y all (defaults to config)")
}

// chartJSON is the wire shape drawn by chart front ends.
type chartJSON struct {
	FundCode string                `json:"fund_code"`
	Period   string                `json:"period"`
	Dates    []string              `json:"dates"`
	Values   []float64             `json:"values"`
	MA       map[string][]*float64 `json:"ma,omitempty"`
	MACD     map[string][]*float64 `json:"macd,omitempty"`
	RSI      []*float64            `json:"rsi,omitempty"`
	KDJ      map[string][]*float64 `json:"kdj,omitempty"`
	Boll     map[string][]*float64 `json:"boll,omitempty"`
}

func toChartJSON(cd *model.ChartData) chartJSON {
	out := chartJSON{
		FundCode: cd.FundCode,
		Period:   cd.Period,
		Dates:    cd.Dates,
		Values:   cd.Values,
		RSI:      cd.RSI.Round(2).Floats(),
	}
	if len(cd.MA) > 0 {
		out.MA = make(map[string][]*float64, len(cd.MA))
		for p, s := range cd.MA {
			out.MA["ma"+strconv.Itoa(p)] = s.Round(4).Floats()
		}
	}
	if cd.MACD != nil {
		out.MACD = map[string][]*float64{
			"dif":  cd.MACD.DIF.Round(4).Floats(),
			"dea":  cd.MACD.DEA.Round(4).Floats(),
			"macd": cd.MACD.MACD.Round(4).Floats(),
		}
	}
	if cd.KDJ != nil {
		out.KDJ = map[string][]*float64{
			"k": cd.KDJ.K.Round(2).Floats(),
			"d": cd.KDJ.D.Round(2).Floats(),
			"j": cd.KDJ.J.Round(2).Floats(),
		}
	}
	if cd.Boll != nil {
		out.Boll = map[string][]*float64{
			"upper":  cd.Boll.Upper.Round(4).Floats(),
			"middle": cd.Boll.Middle.Round(4).Floats(),
			"lower":  cd.Boll.Lower.Round(4).Floats(),
		}
	}
	return out
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one fund code is required")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	r, err := a.analyzer.Analyze(ctx, f.Arg(0), a.period(c.period))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toChartJSON(r.Chart)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
