//go:build !windows

package debug

import "errors"

var errRSSUnsupported = errors.New("rss not supported on this platform")

func processRSS() (uint64, error) { return 0, errRSSUnsupported }
