// Package fasta reads a working sequence out of FASTA-style text.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLine = 16 << 20

// Read drops header lines (those starting with '>'), trims every other line
// and joins them into one sequence. No alphabet checks are made.
func Read(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var b strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Load reads the sequence from path. Names ending in .gz are decompressed.
func Load(path string) (string, error) {
	rc, err := openReader(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	seq, err := Read(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return seq, nil
}

func openReader(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
