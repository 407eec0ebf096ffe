// Package fastq reads sequences from FASTQ files: four-line records of
// header, sequence, separator and quality, of which only the sequence
// line is kept. A truncated trailing record is dropped silently rather
// than surfaced as an error.
//
// Open handles gzip- and zstd-compressed inputs transparently, selected
// by file extension.
package fastq

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// maxLineSize bounds a single FASTQ line; long-read data can exceed
// bufio's default 64 KiB token limit.
const maxLineSize = 16 << 20

// Reader extracts read sequences from FASTQ-formatted input.
type Reader struct {
	s *bufio.Scanner
}

// NewReader wraps r for FASTQ reading.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	return &Reader{s: s}
}

// Next returns the sequence line of the next complete four-line record.
// It returns io.EOF after the last complete record; a final partial
// record is discarded.
func (r *Reader) Next() (string, error) {
	var seq string
	for i := 0; i < 4; i++ {
		if !r.s.Scan() {
			if err := r.s.Err(); err != nil {
				return "", fmt.Errorf("fastq: read: %w", err)
			}
			return "", io.EOF
		}
		if i == 1 {
			seq = strings.TrimSpace(r.s.Text())
		}
	}
	return seq, nil
}

// File is an open FASTQ file, possibly compressed.
type File struct {
	*Reader
	file    *os.File
	closers []func() error
}

// Open opens a FASTQ file for sequence reading. Files ending in .gz or
// .zst are decompressed on the fly.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fastq: open: %w", err)
	}

	file := &File{file: f, closers: []func() error{f.Close}}
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("fastq: open %s: %w", path, err)
		}
		file.closers = append(file.closers, zr.Close)
		file.Reader = NewReader(zr)
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("fastq: open %s: %w", path, err)
		}
		file.closers = append(file.closers, func() error { zr.Close(); return nil })
		file.Reader = NewReader(zr)
	default:
		file.Reader = NewReader(f)
	}
	return file, nil
}

// Close releases the file and any decompressor, last-opened first.
func (f *File) Close() error {
	var first error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
