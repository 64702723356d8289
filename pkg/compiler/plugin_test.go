// pkg/compiler/plugin_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: MemoryFS
// PURPOSE: Test the Run entry point, its defaults and the summary it returns

package compiler_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/splice/pkg/compiler"
	"github.com/arthur-debert/splice/pkg/testutil"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestPlugin_Run(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, "/project/src", testutil.Tree{
		"index.html": `
			<title>@@show(title)</title>
			@@include(card.html, {heading: "Welcome", n: 2})
			@@show(missing)
		`,
		"card.html": "<h2>@@show(heading) x@@show(n)</h2> by @@show(author)",
	})

	data := types.NewContext(map[string]types.Value{
		"title":  types.String("Home"),
		"author": types.Deferred(func(context.Context) (string, error) { return "ada", nil }),
		"n":      types.Structured(cty.NumberIntVal(1)),
	})

	plugin := compiler.NewPlugin(compiler.Options{
		Source: "/project/src",
		Dest:   "site",
		Data:   data,
		FS:     fsys,
	})

	result, err := plugin.Run(context.Background(), "/project/dist")
	require.NoError(t, err)

	assert.Len(t, result.Files, 2)
	assert.Equal(t, []string{"/project/src/card.html"}, result.Included)
	assert.Equal(t, []string{"/project/dist/site/index.html"}, result.Written)
	assert.Equal(t, []string{"/project/src/card.html"}, result.Skipped)
	assert.Equal(t, []string{"missing"}, result.Unresolved)
	assert.False(t, result.DryRun)

	out := testutil.ReadTree(t, fsys, "/project/dist/site")
	assert.Equal(t, testutil.Tree{
		"index.html": "<title>Home</title>\n<h2>Welcome x2</h2> by ada\n@@show(missing)\n",
	}, out)
}

func TestPlugin_Defaults(t *testing.T) {
	plugin := compiler.NewPlugin(compiler.Options{FS: testutil.NewMemoryFS()})

	src, err := plugin.Source()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(src))
	assert.Equal(t, "src", filepath.Base(src))

	assert.Equal(t, filepath.Clean("/build"), plugin.Dest("/build"))
}

func TestPlugin_AbsoluteDestIgnoresOutputRoot(t *testing.T) {
	plugin := compiler.NewPlugin(compiler.Options{Dest: "/elsewhere", FS: testutil.NewMemoryFS()})
	assert.Equal(t, "/elsewhere", plugin.Dest("/build"))
}

func TestPlugin_DryRun(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, "/src", testutil.Tree{"a.txt": "a"})

	plugin := compiler.NewPlugin(compiler.Options{Source: "/src", FS: fsys, DryRun: true})
	result, err := plugin.Run(context.Background(), "/out")
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, []string{"/out/a.txt"}, result.Written)
	assert.False(t, fsys.Exists("/out/a.txt"))
}
