package util

import (
	"bufio"
	"io"
	"os"
	"strings"
)

func ReadLines(r io.Reader) []string {
	buf := bufio.NewReader(r)
	lines := make([]string, 0)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			Fatalf("Could not read line: %s.", err)
		}
		lines = append(lines, strings.TrimSpace(line))
		if err == io.EOF {
			break
		}
	}
	return lines
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MkDirAll creates path and any missing parents.
func MkDirAll(path string) {
	Assert(os.MkdirAll(path, 0777), "Could not create directory '%s'", path)
}

// TempDir creates a fresh temporary directory with the given name prefix.
func TempDir(prefix string) string {
	dir, err := os.MkdirTemp("", prefix)
	Assert(err, "Could not create temporary directory")
	return dir
}
