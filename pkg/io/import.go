package io

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/linkrank/pkg/errors"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// ReadPages parses a pages file: URL then keywords on each line.
func ReadPages(r io.Reader) ([]webgraph.PageEntry, error) {
	var entries []webgraph.PageEntry
	err := scanLines(r, func(n int, fields []string) error {
		entries = append(entries, webgraph.PageEntry{URL: fields[0], Keywords: fields[1:]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadLinks parses a links file: exactly a source and destination URL on
// each line.
func ReadLinks(r io.Reader) ([]webgraph.LinkEntry, error) {
	var entries []webgraph.LinkEntry
	err := scanLines(r, func(n int, fields []string) error {
		if len(fields) != 2 {
			return errors.New(errors.ErrCodeMalformedInput, "links line %d: want 2 urls, got %d", n, len(fields))
		}
		entries = append(entries, webgraph.LinkEntry{Source: fields[0], Dest: fields[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// scanLines calls fn with the 1-based line number and whitespace fields of
// every non-blank line.
func scanLines(r io.Reader, fn func(n int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(n, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "read line %d", n+1)
	}
	return nil
}

// Load reads the pages and links files and builds a graph from them.
//
// A missing file is FILE_NOT_FOUND. Parse and build failures keep their
// codes (MALFORMED_INPUT, ENDPOINT_NOT_FOUND, CAPACITY_EXCEEDED) and are
// prefixed with the file path.
func Load(pagesPath, linksPath string, opts ...webgraph.Option) (*webgraph.Graph, error) {
	pages, err := readFile(pagesPath, ReadPages)
	if err != nil {
		return nil, err
	}
	links, err := readFile(linksPath, ReadLinks)
	if err != nil {
		return nil, err
	}
	g, err := webgraph.Build(pages, links, opts...)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "build from %s and %s", pagesPath, linksPath)
	}
	return g, nil
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "open %s", path)
	}
	defer f.Close()

	entries, err := parse(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return entries, nil
}
