package agent

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gostuding/munin-statsd/internal/agent/metrics"
)

const (
	defMuninHost  = "localhost"
	defMuninPort  = 4949
	defMetricType = metrics.Counter
	defPrefix     = "servers"
	defVerbose    = VerboseQuiet
	defTimeout    = 10 * time.Second

	flagStatsd   = "s"
	flagMunin    = "munin"
	flagVerbose  = "v"
	flagMetric   = "m"
	flagPrefix   = "p"
	flagTimeout  = "t"
	flagHostname = "host"
	flagConfig   = "config"
)

// ErrNoStatsdAddress is returned by NewConfig when statsd address is not set.
var ErrNoStatsdAddress = errors.New("no host:port supplied for statsd")

// NetAddress is 'host:port' value. It satisfies flag.Value.
type NetAddress struct {
	Host string
	Port int
}

func (n *NetAddress) String() string {
	if n.Host == "" && n.Port == 0 {
		return ""
	}
	return net.JoinHostPort(n.Host, strconv.Itoa(n.Port))
}

func (n *NetAddress) Set(value string) error {
	host, port, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("net address ('%s') incorrect. Use value like: 'host:port': %w", value, err)
	}
	if host == "" {
		return fmt.Errorf("net address ('%s') host is empty", value)
	}
	val, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("net address port ('%s') convert error: %w. Use integer type", port, err)
	}
	n.Host = host
	n.Port = val
	return nil
}

// UnmarshalYAML reads NetAddress from 'host:port' string.
func (n *NetAddress) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return n.Set(s)
}

// Config is struct, which contains agent options.
type Config struct {
	Munin      NetAddress         `yaml:"munin"`    // munin-node address
	Statsd     NetAddress         `yaml:"statsd"`   // statsd address, required
	MetricType metrics.MetricType `yaml:"metric"`   // one of c, g, h, m
	Prefix     string             `yaml:"prefix"`   // first part of metric name
	Verbose    int                `yaml:"verbose"`  // 1 - quiet, 2 - debug, 3 - error
	Timeout    time.Duration      `yaml:"timeout"`  // munin connect timeout
	Hostname   string             `yaml:"hostname"` // used instead of the runtime host name
}

func (c *Config) String() string {
	return fmt.Sprintf("munin=%s statsd=%s -m %s -p %s -v %d -t %s",
		c.Munin.String(), c.Statsd.String(), c.MetricType, c.Prefix, c.Verbose, c.Timeout)
}

func (c *Config) setDefault() {
	c.Munin = NetAddress{Host: defMuninHost, Port: defMuninPort}
	c.MetricType = defMetricType
	c.Prefix = defPrefix
	c.Verbose = defVerbose
	c.Timeout = defTimeout
}

func (c *Config) validate() error {
	if c.Statsd.Host == "" {
		return ErrNoStatsdAddress
	}
	if c.Statsd.Port <= 0 || c.Statsd.Port > 65535 {
		return fmt.Errorf("args error: statsd port %d out of range", c.Statsd.Port)
	}
	if c.Munin.Host == "" || c.Munin.Port <= 0 || c.Munin.Port > 65535 {
		return fmt.Errorf("args error: munin address '%s' incorrect", c.Munin.String())
	}
	if _, err := metrics.ParseMetricType(string(c.MetricType)); err != nil {
		return fmt.Errorf("args error: %w", err)
	}
	if c.Verbose < VerboseQuiet || c.Verbose > VerboseError {
		return fmt.Errorf("args error: verbose must be 1, 2 or 3, got %d", c.Verbose)
	}
	if c.Timeout <= 0 {
		return errors.New("args error: timeout must be greater then 0")
	}
	return nil
}

// merge copies the file values, which were not set by flags.
func (c *Config) merge(file *Config, set map[string]bool) {
	if !set[flagMunin] && file.Munin.Host != "" {
		c.Munin = file.Munin
	}
	if !set[flagStatsd] && file.Statsd.Host != "" {
		c.Statsd = file.Statsd
	}
	if !set[flagMetric] && file.MetricType != "" {
		c.MetricType = file.MetricType
	}
	if !set[flagPrefix] && file.Prefix != "" {
		c.Prefix = file.Prefix
	}
	if !set[flagVerbose] && file.Verbose != 0 {
		c.Verbose = file.Verbose
	}
	if !set[flagTimeout] && file.Timeout != 0 {
		c.Timeout = file.Timeout
	}
	if !set[flagHostname] && file.Hostname != "" {
		c.Hostname = file.Hostname
	}
}

// LoadFile reads yaml config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file error: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config file '%s' unmarshal error: %w", path, err)
	}
	return &cfg, nil
}

// lookupEnv applies environment value with the setter.
func lookupEnv(name string, set func(string) error) error {
	val, ok := os.LookupEnv(name)
	if !ok || val == "" {
		return nil
	}
	if err := set(val); err != nil {
		return fmt.Errorf("environment '%s' value error: %w", name, err)
	}
	return nil
}

func setString(dst *string) func(string) error {
	return func(val string) error {
		*dst = val
		return nil
	}
}

func (c *Config) applyEnv() error {
	setters := []struct {
		name string
		set  func(string) error
	}{
		{"STATSD_ADDRESS", c.Statsd.Set},
		{"MUNIN_ADDRESS", c.Munin.Set},
		{"METRIC_TYPE", func(val string) error {
			c.MetricType = metrics.MetricType(val)
			return nil
		}},
		{"METRIC_PREFIX", setString(&c.Prefix)},
		{"VERBOSE", func(val string) error {
			v, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("convert '%s' to int error: %w", val, err)
			}
			c.Verbose = v
			return nil
		}},
		{"CONNECT_TIMEOUT", func(val string) error {
			d, err := time.ParseDuration(val)
			if err != nil {
				return err
			}
			c.Timeout = d
			return nil
		}},
		{"HOSTNAME_OVERRIDE", setString(&c.Hostname)},
	}
	for _, s := range setters {
		if err := lookupEnv(s.name, s.set); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig parses args, config file and environment.
// Priority from low to high: defaults, yaml file, flags, environment.
func NewConfig(args []string, output io.Writer) (*Config, error) {
	var cfg Config
	cfg.setDefault()
	var configPath, metricType string

	fs := flag.NewFlagSet("munin-statsd", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(&cfg.Statsd, flagStatsd, "Statsd host and port, for example: statsd.example.org:8125")
	fs.Var(&cfg.Munin, flagMunin, "Munin node host and port")
	fs.IntVar(&cfg.Verbose, flagVerbose, defVerbose, "Verbosity level. 1=Quiet(default), 2=Debug, 3=Error")
	fs.StringVar(&metricType, flagMetric, string(defMetricType),
		"Metric type. c=Counter(default), g=Gauge, h=Histogram, m=Meter")
	fs.StringVar(&cfg.Prefix, flagPrefix, defPrefix, "The prefix you'd like to send to statsd")
	fs.DurationVar(&cfg.Timeout, flagTimeout, defTimeout, "Munin node connect timeout")
	fs.StringVar(&cfg.Hostname, flagHostname, "", "Host name used in metrics instead of the runtime one")
	fs.StringVar(&configPath, flagConfig, "", "Path to yaml config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.MetricType = metrics.MetricType(metricType)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if err := lookupEnv("CONFIG", setString(&configPath)); err != nil {
		return nil, err
	}
	if configPath != "" {
		file, err := LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg.merge(file, set)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
