package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type gzFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

// Open opens a FASTA file for reading, transparently decompressing it when
// the path ends in ".gz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return gzFile{gz, f}, nil
}

// ReadFile returns all entries in the FASTA file at path, decompressing
// ".gz" files transparently.
func ReadFile(path string) ([]Entry, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return NewReader(r).ReadAll()
}
