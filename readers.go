// Package prsrisk provides shared input-handling helpers for the risk
// calculator's file-based inputs (variant-weights tables and Z-score lists):
// transparent decompression and delimiter sniffing.
package prsrisk

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/csimplestring/go-csv/detector"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type compression byte

const (
	compressionNone compression = iota
	compressionGzip
	compressionZip
	compressionXZ
	compressionZ
	compressionBzip2
)

// Magic byte signatures from https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[compression][]byte{
	compressionGzip:  {0x1f, 0x8b, 0x08},
	compressionZip:   {0x50, 0x4b, 0x03, 0x04},
	compressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	compressionZ:     {0x1f, 0x9d},
	compressionBzip2: {0x42, 0x5a, 0x68},
}

// Open opens a text input that may be gzip, zip, xz, Z, or bzip2
// compressed, detected by magic bytes rather than file extension, and
// returns a reader over the decompressed content. Closing the returned
// reader closes the underlying file too.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	comp, err := sniffCompression(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	// Rewind past the sniffed bytes before layering a decompressor.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	switch comp {
	case compressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layeredReadCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case compressionZip:
		return &layeredReadCloser{Reader: zipstream.NewReader(f), closers: []io.Closer{f}}, nil
	case compressionXZ:
		r, err := xz.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layeredReadCloser{Reader: r, closers: []io.Closer{f}}, nil
	case compressionZ:
		zr, err := zlib.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layeredReadCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case compressionBzip2:
		return &layeredReadCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	}

	return f, nil
}

func sniffCompression(r io.Reader) (compression, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadFull(r, buff); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			// Too short to carry any known signature.
			return compressionNone, nil
		}
		return compressionNone, err
	}

Outer:
	for comp, sig := range compressionSigs {
		for i := range sig {
			if buff[i] != sig[i] {
				continue Outer
			}
		}
		return comp, nil
	}

	return compressionNone, nil
}

// layeredReadCloser closes every layer of a decompression stack, outermost
// first.
type layeredReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (l *layeredReadCloser) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// DetectDelimiter returns the single most likely rune delimiting the values
// in the reader, assuming a CSV-like file, or the fallback when detection is
// inconclusive.
func DetectDelimiter(r io.Reader, fallback rune) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return fallback
}
