// Package cli — list_test.go contains unit tests for the pure helper
// functions used by the list command output.
package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRepoDisplayName verifies the workspace-relative display name used
// in the list table: the root repository shows as "." and children show
// as their directory name.
func TestRepoDisplayName(t *testing.T) {
	root := filepath.Join("/work", "space")

	tests := []struct {
		name string
		repo string
		want string
	}{
		{
			name: "root repository displays as dot",
			repo: root,
			want: ".",
		},
		{
			name: "child repository displays as base name",
			repo: filepath.Join(root, "api-server"),
			want: "api-server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repoDisplayName(root, tt.repo)
			assert.Equal(t, tt.want, got)
		})
	}
}
