package prsrisk

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	contents := "raw text, long enough to carry no compression signature\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != contents {
		t.Errorf("got %q, expected %q", got, contents)
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contents.gz")
	contents := "compressed payload\n"

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(contents)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != contents {
		t.Errorf("got %q, expected %q", got, contents)
	}
	if err := r.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

// Files shorter than any known signature are plain text by definition.
func TestOpenShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hi" {
		t.Errorf("got %q, expected %q", got, "hi")
	}
}

func TestDetectDelimiter(t *testing.T) {
	tsv := "VARIANT\tBETA\tAF\nrs1\t0.02\t0.3\nrs2\t0.01\t0.5\n"
	if d := DetectDelimiter(strings.NewReader(tsv), ','); d != '\t' {
		t.Errorf("tab-delimited input detected as %q", d)
	}

	csv := "VARIANT,BETA,AF\nrs1,0.02,0.3\nrs2,0.01,0.5\n"
	if d := DetectDelimiter(strings.NewReader(csv), '\t'); d != ',' {
		t.Errorf("comma-delimited input detected as %q", d)
	}
}
