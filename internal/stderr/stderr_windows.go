//go:build windows

// Package stderr provides a no-op implementation for Windows.
// Windows audio backends don't produce the same stderr noise as ALSA.
package stderr

import (
	"io"
	"os"
)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// Original returns os.Stderr.
func Original() io.Writer {
	return os.Stderr
}

// Stop is a no-op on Windows.
func Stop() []string { return nil }
