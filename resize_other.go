//go:build !unix

package main

import "os"

// Terminals on other platforms don't signal size changes.
func resizeSignal() <-chan os.Signal { return nil }
