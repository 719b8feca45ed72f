// Package cli — launch_test.go contains unit tests for the argument
// handling of the launch command. The launch sequence itself (existence
// checks, spawn, exit-code propagation) is tested against a fake runner
// in internal/launcher.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitLaunchArgs verifies that the optional positional workspace
// root is separated from the forwarded arguments, and that forwarded
// arguments are preserved verbatim and in order.
func TestSplitLaunchArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantRoot      string
		wantForwarded []string
	}{
		{
			name:          "no arguments",
			args:          nil,
			wantRoot:      "",
			wantForwarded: nil,
		},
		{
			name:          "root override only",
			args:          []string{"/work"},
			wantRoot:      "/work",
			wantForwarded: []string{},
		},
		{
			name:          "root override plus forwarded flags",
			args:          []string{"/work", "--dry-run", "--quiet"},
			wantRoot:      "/work",
			wantForwarded: []string{"--dry-run", "--quiet"},
		},
		{
			name:          "flag-shaped first argument is forwarded, not an override",
			args:          []string{"--dry-run", "/work"},
			wantRoot:      "",
			wantForwarded: []string{"--dry-run", "/work"},
		},
		{
			name:          "leading separator forwards everything",
			args:          []string{"--", "--dry-run"},
			wantRoot:      "",
			wantForwarded: []string{"--dry-run"},
		},
		{
			name:          "separator after root override is consumed",
			args:          []string{"/work", "--", "--dry-run"},
			wantRoot:      "/work",
			wantForwarded: []string{"--dry-run"},
		},
		{
			name:          "arguments with spaces and special characters pass through",
			args:          []string{"/work", "--message=hello world", "$HOME", "a b c"},
			wantRoot:      "/work",
			wantForwarded: []string{"--message=hello world", "$HOME", "a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, forwarded := splitLaunchArgs(tt.args)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantForwarded, forwarded)
		})
	}
}
