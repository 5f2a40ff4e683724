// Package ingest reads batches of user stories or acceptance criteria from
// text, YAML, JSON and HTML files.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions with no reader
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Batch is an ordered list of artifact texts from one source
type Batch struct {
	Source      string
	Items       []string
	StoryNumber int // Story the criteria belong to; 0 when unknown
}

// Document is the structured form accepted by the YAML and JSON readers.
// A bare list of strings is also accepted.
type Document struct {
	StoryNumber int      `yaml:"us_number" json:"us_number"`
	Stories     []string `yaml:"stories" json:"stories"`
	Criteria    []string `yaml:"criteria" json:"criteria"`
}

func (d Document) items() []string {
	items := make([]string, 0, len(d.Stories)+len(d.Criteria))
	items = append(items, d.Stories...)
	return append(items, d.Criteria...)
}

// ReadFile reads a batch, choosing the reader by file extension. Files
// without a known extension are read one item per line.
func ReadFile(path string) (*Batch, error) {
	read, err := readerFor(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	batch, err := read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	batch.Source = path
	return batch, nil
}

func readerFor(path string) (func(io.Reader) (*Batch, error), error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".txt", ".text", ".md":
		return linesBatch, nil
	case ".yaml", ".yml":
		return ReadYAML, nil
	case ".json":
		return ReadJSON, nil
	case ".html", ".htm":
		return ReadHTML, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func linesBatch(r io.Reader) (*Batch, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return &Batch{Items: lines}, nil
}

// ReadLines returns one item per non-empty line. Lines starting with #
// are comments. Duplicates are kept because their positions matter.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lines: %w", err)
	}

	return lines, nil
}

// trimItems drops blank entries and surrounding whitespace
func trimItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
