package codebase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher keeps a codebase in sync with the files on disk.
type FileWatcher struct {
	codebase *Codebase
	watcher  *fsnotify.Watcher
}

// NewFileWatcher starts watching every directory below the codebase root.
// Changes made after it returns are delivered by Run.
func NewFileWatcher(c *Codebase) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	fw := &FileWatcher{codebase: c, watcher: w}
	if err := fw.addTree(c.RootDir()); err != nil {
		w.Close()
		return nil, err
	}
	return fw, nil
}

// Run processes changes until ctx is done and then releases the watcher.
// onChange is called with the file that was updated or removed.
func (w *FileWatcher) Run(ctx context.Context, onChange func(*FileInfo, bool)) error {
	defer w.watcher.Close()
	log.Infof("watching %s", w.codebase.RootDir())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(event, onChange)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Errorf("watch: %s", err)
		}
	}
}

func (w *FileWatcher) handle(event fsnotify.Event, onChange func(*FileInfo, bool)) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if hidden(event.Name) {
				return
			}
			if err := w.addTree(event.Name); err != nil {
				log.Warningf("watch %s: %s", event.Name, err)
			}
			return
		}
	}
	if !w.codebase.Matches(event.Name) {
		return
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		f := w.codebase.GetFile(event.Name)
		w.codebase.RemoveFile(event.Name)
		if f != nil && onChange != nil {
			onChange(f, true)
		}
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		if err := w.codebase.ScanFile(event.Name); err != nil {
			log.Warningf("scan %s: %s", event.Name, err)
			return
		}
		if onChange != nil {
			onChange(w.codebase.GetFile(event.Name), false)
		}
	}
}

func (w *FileWatcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && hidden(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
