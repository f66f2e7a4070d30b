//go:build windows
// +build windows

package client

import "os"

var shutdownSignals = []os.Signal{os.Interrupt}
