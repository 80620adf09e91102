package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteMissingHookIsNoop(t *testing.T) {
	executor := NewTengoExecutor()
	assert.NoError(t, executor.Execute(PostDownload, HookContext{}))
}

func TestExecutePassesContextVariables(t *testing.T) {
	executor := NewTengoExecutor()
	require.NoError(t, executor.AddHook(Hook{
		Type: PostDownload,
		Content: `
err := ""
if corpusName != "ttc" {
	err = "unexpected corpus: " + corpusName
}
if corpusVersion != "1.0" {
	err = "unexpected version: " + corpusVersion
}
`,
	}))

	ctx := HookContext{
		CorpusName:    "ttc",
		CorpusVersion: "1.0",
		CorpusPath:    "/data/ttc_freq.txt",
		DataDir:       "/data",
	}
	assert.NoError(t, executor.Execute(PostDownload, ctx))
}

func TestExecuteScriptError(t *testing.T) {
	executor := NewTengoExecutor()
	require.NoError(t, executor.AddHook(Hook{
		Type:    PreRemove,
		Content: `err := "refusing to remove " + corpusName`,
	}))

	err := executor.Execute(PreRemove, HookContext{CorpusName: "ttc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to remove ttc")
}

func TestExecuteCompileError(t *testing.T) {
	executor := NewTengoExecutor()
	require.NoError(t, executor.AddHook(Hook{
		Type:    PreDownload,
		Content: `if {`,
	}))

	assert.Error(t, executor.Execute(PreDownload, HookContext{}))
}

func TestAddRemoveHasHook(t *testing.T) {
	executor := NewTengoExecutor()

	assert.Error(t, executor.AddHook(Hook{Content: "x := 1"}))

	require.NoError(t, executor.AddHook(Hook{Type: PostRemove, Content: "x := 1"}))
	assert.True(t, executor.HasHook(PostRemove))

	require.NoError(t, executor.RemoveHook(PostRemove))
	assert.False(t, executor.HasHook(PostRemove))
}

func TestLoadFromDir(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, "post-download.tengo"), []byte(`x := corpusName`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, "unknown-event.tengo"), []byte(`x := 1`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, "notes.txt"), []byte(`not a script`), 0o644))

	executor := NewTengoExecutor()
	require.NoError(t, LoadFromDir(executor, tempDir))

	assert.True(t, executor.HasHook(PostDownload))
	assert.False(t, executor.HasHook(HookType("unknown-event")))
	assert.False(t, executor.HasHook(PreRemove))
}

func TestLoadFromDirMissingDirectory(t *testing.T) {
	executor := NewTengoExecutor()
	assert.NoError(t, LoadFromDir(executor, filepath.Join(t.TempDir(), "no-hooks")))
}
