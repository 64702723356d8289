package testutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Paths are cleaned
// and resolved against "/". Directory listings are sorted by name.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*memNode

	// Error injection, keyed by cleaned path
	errorPaths map[string]error

	// Statistics
	readCount  int
	writeCount int
}

type memNode struct {
	mode    fs.FileMode
	modTime time.Time
	content []byte
	target  string
}

// NewMemoryFS creates an empty filesystem holding only the root directory
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*memNode{
			"/": {mode: fs.ModeDir | 0755, modTime: time.Now()},
		},
		errorPaths: make(map[string]error),
	}
}

func clean(name string) string {
	if !filepath.IsAbs(name) {
		name = "/" + name
	}
	return filepath.Clean(name)
}

// lookup returns the node at name without following a final symlink
func (m *MemoryFS) lookup(op, name string) (string, *memNode, error) {
	p := clean(name)
	if err, ok := m.errorPaths[p]; ok {
		return p, nil, &fs.PathError{Op: op, Path: name, Err: err}
	}
	node, ok := m.nodes[p]
	if !ok {
		return p, nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return p, node, nil
}

// follow resolves symlinks, giving up after a fixed number of hops
func (m *MemoryFS) follow(op, name string) (string, *memNode, error) {
	p, node, err := m.lookup(op, name)
	for hops := 0; err == nil && node.mode&fs.ModeSymlink != 0; hops++ {
		if hops > 16 {
			return p, nil, &fs.PathError{Op: op, Path: name, Err: errors.New("too many levels of symbolic links")}
		}
		target := node.target
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(p), target)
		}
		p, node, err = m.lookup(op, target)
	}
	return p, node, err
}

// ReadFile returns a copy of the file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readCount++

	_, node, err := m.follow("read", name)
	if err != nil {
		return nil, err
	}
	if node.mode.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile creates or truncates name. The parent directory must exist.
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	p := clean(name)
	if err, ok := m.errorPaths[p]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	if parent, ok := m.nodes[filepath.Dir(p)]; !ok || !parent.mode.IsDir() {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}
	if existing, ok := m.nodes[p]; ok && existing.mode.IsDir() {
		return &fs.PathError{Op: "write", Path: name, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.nodes[p] = &memNode{mode: perm.Perm(), modTime: time.Now(), content: content}
	return nil
}

// Stat follows symlinks
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, node, err := m.follow("stat", name)
	if err != nil {
		return nil, err
	}
	return &memInfo{name: filepath.Base(p), node: node}, nil
}

// Lstat reports symlinks as themselves
func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, node, err := m.lookup("lstat", name)
	if err != nil {
		return nil, err
	}
	return &memInfo{name: filepath.Base(p), node: node}, nil
}

// Exists reports whether name can be stat'ed
func (m *MemoryFS) Exists(name string) bool {
	_, err := m.Stat(name)
	return err == nil
}

// ReadDir lists the immediate children of name sorted by name
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, node, err := m.follow("readdir", name)
	if err != nil {
		return nil, err
	}
	if !node.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	prefix := p
	if prefix != "/" {
		prefix += "/"
	}

	var entries []fs.DirEntry
	for childPath, child := range m.nodes {
		if childPath == p || !strings.HasPrefix(childPath, prefix) {
			continue
		}
		rest := strings.TrimPrefix(childPath, prefix)
		if strings.Contains(rest, "/") {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(&memInfo{name: rest, node: child}))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// MkdirAll creates path and any missing parents
func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := clean(path)
	var missing []string
	for cur := p; ; cur = filepath.Dir(cur) {
		if err, ok := m.errorPaths[cur]; ok {
			return &fs.PathError{Op: "mkdir", Path: cur, Err: err}
		}
		if node, ok := m.nodes[cur]; ok {
			if !node.mode.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: errors.New("not a directory")}
			}
			break
		}
		missing = append(missing, cur)
		if cur == "/" {
			break
		}
	}

	for i := len(missing) - 1; i >= 0; i-- {
		m.nodes[missing[i]] = &memNode{mode: fs.ModeDir | perm.Perm(), modTime: time.Now()}
	}
	return nil
}

// Symlink creates link pointing at target. The parent of link must exist.
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := clean(link)
	if _, ok := m.nodes[p]; ok {
		return &fs.PathError{Op: "symlink", Path: link, Err: fs.ErrExist}
	}
	if _, ok := m.nodes[filepath.Dir(p)]; !ok {
		return &fs.PathError{Op: "symlink", Path: link, Err: fs.ErrNotExist}
	}
	m.nodes[p] = &memNode{mode: fs.ModeSymlink | 0777, modTime: time.Now(), target: target}
	return nil
}

// WithError makes every operation on path fail with err
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[clean(path)] = err
	return m
}

// Stats returns the number of reads and writes performed
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount
}

type memInfo struct {
	name string
	node *memNode
}

func (fi *memInfo) Name() string       { return fi.name }
func (fi *memInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *memInfo) Mode() fs.FileMode  { return fi.node.mode }
func (fi *memInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *memInfo) IsDir() bool        { return fi.node.mode.IsDir() }
func (fi *memInfo) Sys() interface{}   { return nil }
