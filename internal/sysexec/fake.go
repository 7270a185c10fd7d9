package sysexec

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Fake is a scripted Runner for tests. Outputs and errors are keyed by the
// command name (argv[0]); every invocation is recorded.
type Fake struct {
	mu sync.Mutex

	// Outputs maps argv[0] to the combined output to return.
	Outputs map[string]string
	// Errs maps argv[0] to an error to return alongside its output.
	Errs map[string]error

	// Calls holds every argv passed to Run, in order.
	Calls [][]string
}

// NewFake creates an empty fake runner.
func NewFake() *Fake {
	return &Fake{
		Outputs: make(map[string]string),
		Errs:    make(map[string]error),
	}
}

// Run records the invocation and returns the scripted result.
func (f *Fake) Run(_ context.Context, argv ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(argv) == 0 {
		return "", fmt.Errorf("empty command")
	}

	f.Calls = append(f.Calls, argv)
	return f.Outputs[argv[0]], f.Errs[argv[0]]
}

// CalledWith reports whether any recorded invocation matches argv exactly.
func (f *Fake) CalledWith(argv ...string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	want := strings.Join(argv, "\x00")
	for _, call := range f.Calls {
		if strings.Join(call, "\x00") == want {
			return true
		}
	}
	return false
}

// CallCount returns the number of invocations of the named command.
func (f *Fake) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int
	for _, call := range f.Calls {
		if call[0] == name {
			n++
		}
	}
	return n
}
