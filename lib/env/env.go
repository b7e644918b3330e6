// Package env reads process wide switches from the environment.
package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// Timeout returns SEQDIAG_TIMEOUT in seconds.
func Timeout() (int, bool) {
	if s := os.Getenv("SEQDIAG_TIMEOUT"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}
