package orchestrator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SourceKind discriminates the supported source locations.
type SourceKind int

const (
	// SourceKindFile reads from a path on disk.
	SourceKindFile SourceKind = iota
	// SourceKindFS reads a name out of an fs.FS.
	SourceKindFS
	// SourceKindText carries the source text inline.
	SourceKindText
)

// Source identifies where a page module's text lives.
type Source interface {
	Location() string
	Kind() SourceKind
}

// fileSource identifies an on-disk page module.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a name within an fs.FS.
type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

// textSource carries literal source text.
type textSource struct {
	text string
}

func (s textSource) Location() string {
	return "<text>"
}

func (s textSource) Kind() SourceKind {
	return SourceKindText
}

// SourceFromText returns a Source wrapping literal page text, useful for
// tests and for callers that already hold the buffer.
func SourceFromText(text string) Source {
	return textSource{text: text}
}

func readSource(src Source) (string, error) {
	switch s := src.(type) {
	case fileSource:
		data, err := os.ReadFile(s.path)
		if err != nil {
			return "", fmt.Errorf("orchestrator: read %s: %w", s.path, err)
		}
		return string(data), nil
	case fsSource:
		data, err := fs.ReadFile(s.fsys, s.name)
		if err != nil {
			return "", fmt.Errorf("orchestrator: read %s: %w", s.name, err)
		}
		return string(data), nil
	case textSource:
		return s.text, nil
	default:
		return "", fmt.Errorf("orchestrator: unsupported source %T", src)
	}
}
