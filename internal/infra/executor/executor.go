// Package executor provides command execution functionality.
package executor

import (
	"context"
	"os/exec"

	"tugasku/internal/domain"
)

// Client implements domain.CommandRunner.
type Client struct{}

// NewClient creates a new command runner.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandRunner.
var _ domain.CommandRunner = (*Client)(nil)

// Run executes the program and returns its combined output.
func (c *Client) Run(ctx context.Context, program string, args ...string) ([]byte, error) {
	// #nosec G204 - program comes from trusted configuration
	cmd := exec.CommandContext(ctx, program, args...)
	return cmd.CombinedOutput()
}
