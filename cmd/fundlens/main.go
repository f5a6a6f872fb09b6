// Command fundlens computes technical indicators, risk metrics and a
// technical signal from a fund tracker's NAV history.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&reportCmd{}, "")
	commander.Register(&summaryCmd{}, "")
	commander.Register(&chartCmd{}, "")

	flag.StringVar(&configPath, "config", defaultConfigPath(), "path to the YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
