// Package xfconf talks to the XFCE settings store through xfconf-query.
package xfconf

import (
	"context"

	"gfxprof/internal/sysexec"
)

// Setting is one key in the settings store.
type Setting struct {
	Channel  string
	Property string
	Value    string
}

// Client sets values in the settings store.
type Client struct {
	runner sysexec.Runner
}

// NewClient creates a client over the given runner.
func NewClient(runner sysexec.Runner) *Client {
	return &Client{runner: runner}
}

// Set applies a single setting. The returned error carries the failing
// command line and everything the process printed; callers treat failures
// as recoverable and keep going.
func (c *Client) Set(ctx context.Context, s Setting) error {
	_, err := c.runner.Run(ctx, "xfconf-query", "-c", s.Channel, "-p", s.Property, "-s", s.Value)
	return err
}
