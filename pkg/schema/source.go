package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where a schema document comes from so loaders can read
// files, fs.FS entries, or URLs through one contract.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loading strategies.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type location struct {
	kind SourceKind
	at   string
}

func (l location) Kind() SourceKind { return l.kind }

func (l location) Location() string { return l.at }

func (l location) String() string { return string(l.kind) + ":" + l.at }

// SourceFromFile returns a Source for a path on disk.
func SourceFromFile(path string) Source {
	return location{kind: SourceKindFile, at: filepath.Clean(path)}
}

// SourceFromFS returns a Source for an entry inside an fs.FS.
func SourceFromFS(name string) Source {
	return location{kind: SourceKindFS, at: name}
}

// SourceFromURL returns a Source for an HTTP(S) endpoint.
func SourceFromURL(raw string) (Source, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("schema: invalid URL %q: %w", raw, err)
	}
	return location{kind: SourceKindURL, at: raw}, nil
}

// ParseSource maps a command-line style argument to a Source: http(s) URLs
// become URL sources, everything else a file.
func ParseSource(raw string) (Source, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("schema: source is required")
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return SourceFromURL(trimmed)
	}
	return SourceFromFile(trimmed), nil
}
