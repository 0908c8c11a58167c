// Package metrics converts munin readings to statsd lines.
package metrics

import (
	"errors"
	"fmt"
)

// ErrMalformedReading is matched by every *SkipError.
var ErrMalformedReading = errors.New("malformed reading")

// MetricType is the statsd type tag of a metric.
type MetricType string

const (
	Counter   MetricType = "c"
	Gauge     MetricType = "g"
	Histogram MetricType = "h"
	Meter     MetricType = "m"
)

// ParseMetricType checks value and returns MetricType.
func ParseMetricType(value string) (MetricType, error) {
	switch t := MetricType(value); t {
	case Counter, Gauge, Histogram, Meter:
		return t, nil
	default:
		return "", fmt.Errorf("metric type '%s' incorrect. Use one of: c, g, h, m", value)
	}
}

// Reading is one key/value pair of plugin fetch response.
type Reading struct {
	Key   string // field name without suffix after first dot
	Value string // value as sent by plugin, not validated
}

// SkipError describes the line that gave no Reading.
type SkipError struct {
	Line   string
	Reason string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skip line '%s': %s", e.Line, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedReading) true.
func (e *SkipError) Is(target error) bool {
	return target == ErrMalformedReading
}
