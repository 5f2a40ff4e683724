package wordlist

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/*.txt
var defaultFiles embed.FS

// Defaults returns the built-in lists
func Defaults() (map[string][]string, error) {
	lists := make(map[string][]string, len(Names))
	for _, name := range Names {
		data, err := defaultFiles.ReadFile("data/" + FileName(name))
		if err != nil {
			return nil, fmt.Errorf("read built-in %s: %w", name, err)
		}
		words, err := Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse built-in %s: %w", name, err)
		}
		lists[name] = words
	}
	return lists, nil
}

// FileName is the on-disk name of a list
func FileName(name string) string {
	return name + ".txt"
}

// WriteDefaults copies the built-in lists into dir. Existing files are
// left alone unless overwrite is set. It returns the paths written.
func WriteDefaults(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create word list dir: %w", err)
	}

	var written []string
	for _, name := range Names {
		path := filepath.Join(dir, FileName(name))
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		data, err := defaultFiles.ReadFile("data/" + FileName(name))
		if err != nil {
			return written, fmt.Errorf("read built-in %s: %w", name, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
