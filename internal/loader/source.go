// Package loader reads record lines from a source and loads them into the
// inventory and customer registry.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Source yields the record lines of one input, in order, with blank lines
// removed.
type Source interface {
	Lines(ctx context.Context) ([]string, error)
}

// FileSource reads records from a text file, one per line.
type FileSource struct {
	Path string
}

// Lines implements Source.
func (s FileSource) Lines(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.Path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.Path, err)
	}
	return lines, nil
}

// StaticSource serves a fixed set of lines.
type StaticSource []string

// Lines implements Source.
func (s StaticSource) Lines(context.Context) ([]string, error) {
	var lines []string
	for _, l := range s {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}
