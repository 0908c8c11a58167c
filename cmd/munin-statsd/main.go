// Command munin-statsd sends values of all munin-node plugins to statsd.
// It makes one sweep and exits, run it periodically (for example, from cron):
//
//	munin-statsd -s statsd.example.org:8125 -m g -p servers
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/gostuding/munin-statsd/internal/agent"
)

func main() {
	cfg, err := agent.NewConfig(os.Args[1:], os.Stderr)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			os.Exit(0)
		case errors.Is(err, agent.ErrNoStatsdAddress):
			fmt.Fprintln(os.Stderr, `ERROR: No host:port supplied for statsd, use "munin-statsd -h" to see the help, exiting.`)
		default:
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		os.Exit(1)
	}
	logger, err := agent.NewLogger(cfg.Verbose)
	if err != nil {
		log.Fatalln("create logger error:", err)
	}
	defer logger.Sync()
	logger.Debug("Agent config", zap.Stringer("config", cfg))

	stats, err := agent.NewAgent(cfg, logger).Run(context.Background())
	if err != nil {
		logger.Fatal("Sweep failed", zap.Error(err))
	}
	logger.Info("Sweep finished",
		zap.Int("plugins", stats.Plugins),
		zap.Int("sent", stats.Sent),
		zap.Int("skipped", stats.Skipped),
	)
}
