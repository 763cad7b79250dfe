//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA via oto)
// that write directly to file descriptor 2, bypassing Go's os.Stderr.
// This prevents raw error messages from corrupting the TUI layout.
package stderr

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"
)

const (
	// maxLines bounds the captured backlog; older lines are dropped.
	maxLines = 100
	// maxLineBytes is the longest line kept; the scanner gives up past it.
	maxLineBytes = 1 << 20
)

var (
	mu        sync.Mutex
	orig      *os.File
	pipeRead  *os.File
	pipeWrite *os.File
	done      chan struct{}
	lines     []string
	started   bool
)

// Start begins capturing stderr output.
// Must be called before the audio device is opened.
// Returns an error if capture cannot be set up, but the program can continue
// without stderr capture (noise will just go to the terminal).
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	// Save original stderr file descriptor
	fd, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(fd)
		r.Close()
		w.Close()
		return err
	}

	orig = os.NewFile(uintptr(fd), "stderr-original")
	pipeRead = r
	pipeWrite = w
	lines = nil
	done = make(chan struct{})
	started = true

	go collect(r, done)
	return nil
}

func collect(r io.Reader, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		mu.Lock()
		if len(lines) == maxLines {
			lines = lines[1:]
		}
		lines = append(lines, line)
		mu.Unlock()
	}
	// Keep draining after a scan error so writers to fd 2 never block
	_, _ = io.Copy(io.Discard, r)
}

type originalWriter struct{}

func (originalWriter) Write(p []byte) (int, error) {
	mu.Lock()
	f := orig
	mu.Unlock()
	if f == nil {
		return os.Stderr.Write(p)
	}
	return f.Write(p)
}

// Original returns a writer to the real stderr, bypassing capture.
// It falls back to os.Stderr when capture is not running.
func Original() io.Writer {
	return originalWriter{}
}

// Stop restores the original stderr and returns what was captured.
func Stop() []string {
	mu.Lock()
	if !started {
		mu.Unlock()
		return nil
	}
	_ = syscall.Dup2(int(orig.Fd()), int(os.Stderr.Fd()))
	pipeWrite.Close()
	wait := done
	mu.Unlock()

	// Reader drains the pipe and exits on EOF
	<-wait

	mu.Lock()
	defer mu.Unlock()
	pipeRead.Close()
	orig.Close()
	orig = nil
	started = false
	captured := lines
	lines = nil
	return captured
}
