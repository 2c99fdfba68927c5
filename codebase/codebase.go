// Package codebase keeps the parse results of a set of documents, either
// read from a directory tree or pushed in by an editor.
package codebase

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"github.com/dhamidi/sectsv/table"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("sectsv.codebase")

// Codebase is safe for concurrent use. The documents it hands out must not
// be modified.
type Codebase struct {
	mu         sync.RWMutex
	rootDir    string
	extensions []string
	files      map[string]*FileInfo
}

type FileInfo struct {
	Path     string
	Content  []byte
	Document *table.Document
	ParseErr error
}

// Fault returns the structural fault of the file, or nil.
func (f *FileInfo) Fault() *table.ParseError {
	var perr *table.ParseError
	if errors.As(f.ParseErr, &perr) {
		return perr
	}
	return nil
}

// New returns an empty codebase rooted at rootDir that considers files with
// one of the given extensions. Without extensions only ".tsv" files are
// considered.
func New(rootDir string, extensions ...string) *Codebase {
	if len(extensions) == 0 {
		extensions = []string{".tsv"}
	}
	return &Codebase{
		rootDir:    rootDir,
		extensions: extensions,
		files:      make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// Matches reports whether path has one of the codebase's extensions.
func (c *Codebase) Matches(path string) bool {
	return slices.Contains(c.extensions, filepath.Ext(path))
}

// ScanAll reads every matching file below the root directory. Hidden
// directories are skipped.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && hidden(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if c.Matches(path) {
			if err := c.ScanFile(path); err != nil {
				log.Warningf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile parses content and records it under path.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	doc, err := table.Read(string(content))
	info := &FileInfo{
		Path:     path,
		Content:  content,
		Document: doc,
		ParseErr: err,
	}
	if err != nil {
		log.Debugf("%s: %s", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = info
	return info
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns all known files ordered by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	files := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// Failed returns the files that did not parse, ordered by path.
func (c *Codebase) Failed() []*FileInfo {
	var failed []*FileInfo
	for _, f := range c.Files() {
		if f.ParseErr != nil {
			failed = append(failed, f)
		}
	}
	return failed
}
