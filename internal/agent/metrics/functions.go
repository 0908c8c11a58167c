package metrics

import (
	"fmt"
	"strings"
)

const (
	fieldSeparator = " "
	keySeparator   = "."
	nameReplacer   = "_"
	window         = "-1m"

	reasonNoSeparator = "no separator"
	reasonManyFields  = "too many fields"
	reasonEmptyKey    = "empty key"
	reasonEmptyValue  = "empty value"
)

// ParseReading converts one munin response line into a Reading.
// The line must hold exactly two fields separated by a single space.
// The key is cut before its first dot, so "load.value 0.42" gives
// the key "load" and the value "0.42".
// When the line does not fit, ParseReading returns *SkipError.
func ParseReading(line string) (Reading, error) {
	fields := strings.Split(line, fieldSeparator)
	switch {
	case len(fields) < 2:
		return Reading{}, &SkipError{Line: line, Reason: reasonNoSeparator}
	case len(fields) > 2:
		return Reading{}, &SkipError{Line: line, Reason: reasonManyFields}
	}
	key, _, _ := strings.Cut(fields[0], keySeparator)
	if key == "" {
		return Reading{}, &SkipError{Line: line, Reason: reasonEmptyKey}
	}
	if fields[1] == "" {
		return Reading{}, &SkipError{Line: line, Reason: reasonEmptyValue}
	}
	return Reading{Key: key, Value: fields[1]}, nil
}

// SanitizeName replaces every dot with an underscore.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, keySeparator, nameReplacer)
}

// Encode makes statsd line like '<prefix>.<host>.<plugin>.<key>-1m:<value>|<type>'.
// Host and plugin are passed through SanitizeName, other parts are used as is.
// The metric type is not validated here.
func Encode(prefix, host, plugin string, r Reading, mType MetricType) string {
	return fmt.Sprintf("%s.%s.%s.%s%s:%s|%s",
		prefix, SanitizeName(host), SanitizeName(plugin), r.Key, window, r.Value, mType)
}
