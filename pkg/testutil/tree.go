package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/splice/pkg/types"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
)

// Tree maps slash separated relative paths to file content
type Tree map[string]string

// WriteTree creates every file of tree under root. Content is dedented and
// a single leading newline is dropped, so fixtures can be written as
// indented raw strings.
func WriteTree(t *testing.T, fsys types.FS, root string, tree Tree) {
	t.Helper()

	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755), "mkdir for %s", rel)
		require.NoError(t, fsys.WriteFile(path, []byte(Text(content)), 0644), "write %s", rel)
	}
}

// ReadTree returns every regular file under root keyed by its slash
// separated path relative to root. A missing root yields an empty tree.
func ReadTree(t *testing.T, fsys types.FS, root string) Tree {
	t.Helper()

	tree := Tree{}
	if !fsys.Exists(root) {
		return tree
	}

	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err, "readdir %s", dir)
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(path)
				continue
			}
			data, err := fsys.ReadFile(path)
			require.NoError(t, err, "read %s", path)
			rel, err := filepath.Rel(root, path)
			require.NoError(t, err)
			tree[filepath.ToSlash(rel)] = string(data)
		}
	}
	walk(root)
	return tree
}

// Text dedents a raw string fixture and drops one leading newline
func Text(s string) string {
	return strings.TrimPrefix(dedent.Dedent(s), "\n")
}
