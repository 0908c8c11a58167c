package agent

import (
	"fmt"
	"os"
)

// Hostname returns the host part of metric names.
// Override wins over the runtime host name.
func Hostname(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("get hostname error: %w", err)
	}
	return name, nil
}
