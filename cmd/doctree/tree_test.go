package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	main "github.com/gratrockstar/theme-docs/cmd/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the watch loop write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# doc"), 0o644))
}

func TestTreeCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints docs tree with substituted URLs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.md"))
		writeFile(t, filepath.Join(dir, "sub", "b.md"))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"tree", dir, "--url", "https://example.com/docs"}, stdout, stderr)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"0": {"name": "a.md", "filepath": "https://example.com/docs/a.md"},
			"sub": [{"name": "b.md", "filepath": "https://example.com/docs/sub/b.md"}]
		}`, stdout.String())
	})

	t.Run("defaults URL to the directory path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "guide.md"))

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"tree", dir}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), filepath.Join(dir, "guide.md"))
	})

	t.Run("sorts glossary naturally", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"item10.md", "Banana.md", "item2.md", "apple.md"} {
			writeFile(t, filepath.Join(dir, name))
		}

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"tree", "--kind", "glossary", dir, "-u", "/g"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"name": "apple.md", "filepath": "/g/apple.md"},
			{"name": "Banana.md", "filepath": "/g/Banana.md"},
			{"name": "item2.md", "filepath": "/g/item2.md"},
			{"name": "item10.md", "filepath": "/g/item10.md"}
		]`, stdout.String())
	})

	t.Run("prints false for a missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "documentation")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"tree", dir}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "false\n", stdout.String())
		assert.Contains(t, stderr.String(), "No documentation exists")
	})

	t.Run("indents output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.md"))

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"tree", "-i", dir, "-u", "/d"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "\n  {\n    \"name\": \"a.md\"")
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(context.Background(), []string{"tree", "--kind", "wiki", t.TempDir()}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestTreeCmd_Watch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "first.md"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stdout := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- main.NewMain().Run(ctx, []string{"tree", "--watch", dir, "-u", "/d"}, stdout, &bytes.Buffer{})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "first.md")
	}, 5*time.Second, 20*time.Millisecond)

	// Give the watcher time to register before changing the tree.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "second.md"))

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "/d/second.md")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
