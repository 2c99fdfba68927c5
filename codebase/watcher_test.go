package codebase

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	file    *FileInfo
	removed bool
}

func waitFor(t *testing.T, changes <-chan change, what string, match func(change) bool) change {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ch := <-changes:
			if match(ch) {
				return ch
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", what)
			return change{}
		}
	}
}

func TestFileWatcherRun(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data.tsv")

	c := New(root)
	w, err := NewFileWatcher(c)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan change, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(f *FileInfo, removed bool) {
			select {
			case changes <- change{f, removed}:
			case <-ctx.Done():
			}
		})
	}()
	defer func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	}()

	writeFile(t, path, "s\na\tb\n1\t2\n")
	ch := waitFor(t, changes, "parsed file", func(ch change) bool {
		return !ch.removed && ch.file != nil && ch.file.ParseErr == nil
	})
	assert.Equal(t, path, ch.file.Path)
	require.NotNil(t, ch.file.Document)
	assert.Equal(t, "s", ch.file.Document.Sections[0].Name)

	writeFile(t, path, "s\na\tb\n1\n")
	ch = waitFor(t, changes, "failed file", func(ch change) bool {
		return !ch.removed && ch.file != nil && ch.file.ParseErr != nil
	})
	assert.Equal(t, path, ch.file.Path)
	require.NotNil(t, c.GetFile(path))
	assert.Error(t, c.GetFile(path).ParseErr)

	require.NoError(t, os.Remove(path))
	ch = waitFor(t, changes, "removed file", func(ch change) bool {
		return ch.removed
	})
	assert.Equal(t, path, ch.file.Path)
	assert.Nil(t, c.GetFile(path))
}

func TestFileWatcherIgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	c := New(root)
	w, err := NewFileWatcher(c)
	require.NoError(t, err)
	defer w.watcher.Close()

	path := filepath.Join(root, "notes.txt")
	writeFile(t, path, "s\na\n1\n")

	called := false
	w.handle(fsnotify.Event{Name: path, Op: fsnotify.Write}, func(*FileInfo, bool) { called = true })
	assert.False(t, called)
	assert.Nil(t, c.GetFile(path))
}

func TestFileWatcherWatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	w, err := NewFileWatcher(New(root))
	require.NoError(t, err)
	defer w.watcher.Close()

	dir := filepath.Join(root, "nested")
	sub := filepath.Join(dir, "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	w.handle(fsnotify.Event{Name: dir, Op: fsnotify.Create}, nil)

	watched := w.watcher.WatchList()
	assert.True(t, slices.Contains(watched, dir), "watch list %v", watched)
	assert.True(t, slices.Contains(watched, sub), "watch list %v", watched)
}

func TestFileWatcherSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0o755))
	w, err := NewFileWatcher(New(root))
	require.NoError(t, err)
	defer w.watcher.Close()

	assert.NotContains(t, w.watcher.WatchList(), filepath.Join(root, ".git"))

	dir := filepath.Join(root, ".cache")
	require.NoError(t, os.Mkdir(dir, 0o755))
	w.handle(fsnotify.Event{Name: dir, Op: fsnotify.Create}, nil)

	watched := w.watcher.WatchList()
	assert.NotContains(t, watched, dir)
	assert.Contains(t, watched, root)
}
