package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"flaggallery/hal"
)

// guard runs fn and turns a panic inside it into an error. The panic value
// and its stack go to log one line at a time.
func guard(log hal.Logger, name string, fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		hal.Logf(log, "panic in %s: %v", name, v)
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			hal.Logf(log, "%s", line)
		}
		err = fmt.Errorf("app: %s: panic: %v", name, v)
	}()
	return fn()
}
