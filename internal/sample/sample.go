// Package sample implements event sample loading. A sample is a set of
// JSON-lines files, one event record per line, addressed by a glob pattern.
package sample

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"spinesel/internal/event"
)

// Loader describes one input sample. MC samples carry truth records and get
// simulation-only trees filled; data samples skip them.
type Loader struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	IsMC    bool   `json:"is_mc"`
}

// Files expands the loader's glob pattern into a sorted file list.
func (l Loader) Files() ([]string, error) {
	if l.Pattern == "" {
		return nil, fmt.Errorf("sample %s: file pattern is required", l.Name)
	}
	files, err := filepath.Glob(l.Pattern)
	if err != nil {
		return nil, fmt.Errorf("sample %s: expand pattern %s: %w", l.Name, l.Pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("sample %s: pattern %s matched no files", l.Name, l.Pattern)
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile decodes one JSON-lines event file. Blank lines are skipped;
// decode errors carry the file and line number.
func ReadFile(path string) ([]event.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample file: %w", err)
	}
	defer f.Close()

	var events []event.Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var ev event.Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode %s line %d: %w", path, line, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return events, nil
}

// Events loads every file the loader matches, in sorted file order.
func (l Loader) Events() ([]event.Event, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}
	var events []event.Event
	for _, path := range files {
		evs, err := ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", l.Name, err)
		}
		events = append(events, evs...)
	}
	return events, nil
}
