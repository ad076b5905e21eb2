//go:build unix

package main

import (
	"os"
	"os/signal"
	"syscall"
)

func resizeSignal() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	return ch
}
