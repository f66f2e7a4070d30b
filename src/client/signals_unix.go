//go:build !windows
// +build !windows

package client

import (
	"os"
	"syscall"
)

// Signals that cancel a run and restore the terminal
var shutdownSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGHUP,
}
