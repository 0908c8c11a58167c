package agent

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gostuding/munin-statsd/internal/agent/metrics"
	"github.com/gostuding/munin-statsd/internal/agent/munin"
	"github.com/gostuding/munin-statsd/internal/agent/statsd"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_agent.go -package=mocks

// LineCursor iterates over one fetch response.
type LineCursor interface {
	Next() bool
	Text() string
	Err() error
}

// DaemonClient is the munin-node protocol client.
type DaemonClient interface {
	ListPlugins() ([]string, error)
	Fetch(plugin string) (LineCursor, error)
	Close() error
}

// MetricSender delivers encoded metric lines.
type MetricSender interface {
	Send(metric string) error
	Close() error
}

type (
	dialFunc     func(ctx context.Context, address string, timeout time.Duration, logger *zap.SugaredLogger) (DaemonClient, error)
	senderFunc   func(host string, port int, logger *zap.SugaredLogger) (MetricSender, error)
	hostnameFunc func(override string) (string, error)
)

// SweepStats counts the results of one sweep.
type SweepStats struct {
	Plugins int // plugins processed completely
	Sent    int // datagrams sent
	Skipped int // lines without reading
}

// Agent makes one sweep over munin plugins and sends values to statsd.
type Agent struct {
	cfg       *Config
	logger    *zap.SugaredLogger
	dial      dialFunc
	newSender senderFunc
	hostname  hostnameFunc
}

// muninClient adapts *munin.Client to DaemonClient.
type muninClient struct {
	*munin.Client
}

func (m muninClient) Fetch(plugin string) (LineCursor, error) {
	lines, err := m.Client.Fetch(plugin)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func dialMunin(ctx context.Context, address string, timeout time.Duration, logger *zap.SugaredLogger) (DaemonClient, error) {
	client, err := munin.Dial(ctx, address, timeout, logger)
	if err != nil {
		return nil, err
	}
	return muninClient{client}, nil
}

func newStatsdSender(host string, port int, logger *zap.SugaredLogger) (MetricSender, error) {
	sender, err := statsd.NewSender(host, port, logger)
	if err != nil {
		return nil, err
	}
	return sender, nil
}

// NewAgent creates Agent with munin and statsd clients.
func NewAgent(cfg *Config, logger *zap.Logger) *Agent {
	return &Agent{
		cfg:       cfg,
		logger:    logger.Sugar(),
		dial:      dialMunin,
		newSender: newStatsdSender,
		hostname:  Hostname,
	}
}

// Run resolves statsd address, connects to munin-node and makes the sweep.
// Any returned error is fatal for the run.
func (a *Agent) Run(ctx context.Context) (SweepStats, error) {
	host, err := a.hostname(a.cfg.Hostname)
	if err != nil {
		return SweepStats{}, err
	}
	sender, err := a.newSender(a.cfg.Statsd.Host, a.cfg.Statsd.Port, a.logger)
	if err != nil {
		return SweepStats{}, err
	}
	defer a.close("statsd sender", sender.Close)

	client, err := a.dial(ctx, a.cfg.Munin.String(), a.cfg.Timeout, a.logger)
	if err != nil {
		return SweepStats{}, err
	}
	defer a.close("munin connection", client.Close)

	return a.Sweep(client, sender, host)
}

func (a *Agent) close(name string, f func() error) {
	if err := f(); err != nil {
		a.logger.Errorw("Close error", "resource", name, "error", err)
	}
}

// Sweep lists plugins and sends readings of every plugin in the node order.
// Lines without reading are skipped, read and send errors stop the sweep.
func (a *Agent) Sweep(client DaemonClient, sender MetricSender, host string) (SweepStats, error) {
	var stats SweepStats
	plugins, err := client.ListPlugins()
	if err != nil {
		return stats, fmt.Errorf("list plugins error: %w", err)
	}
	a.logger.Debugw("Plugins listed", "plugins", plugins)
	for _, plugin := range plugins {
		if err := a.sweepPlugin(client, sender, host, plugin, &stats); err != nil {
			return stats, err
		}
		stats.Plugins++
	}
	return stats, nil
}

func (a *Agent) sweepPlugin(client DaemonClient, sender MetricSender, host, plugin string, stats *SweepStats) error {
	a.logger.Debugw("Getting data for plugin", "plugin", plugin)
	lines, err := client.Fetch(plugin)
	if err != nil {
		return fmt.Errorf("fetch plugin '%s' error: %w", plugin, err)
	}
	for lines.Next() {
		line := lines.Text()
		a.logger.Debugw("Processing data", "plugin", plugin, "line", line)
		reading, err := metrics.ParseReading(line)
		if err != nil {
			a.logger.Debugw("Unpacking of raw data failed, skipping", "plugin", plugin, "error", err)
			stats.Skipped++
			continue
		}
		metric := metrics.Encode(a.cfg.Prefix, host, plugin, reading, a.cfg.MetricType)
		if err := sender.Send(metric); err != nil {
			return fmt.Errorf("plugin '%s' error: %w", plugin, err)
		}
		stats.Sent++
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("fetch plugin '%s' error: %w", plugin, err)
	}
	return nil
}
