package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/specialistvlad/cropcircles/internal/ctxlog"
	"github.com/specialistvlad/cropcircles/internal/fsutil"
)

// maxLineBytes bounds a single instruction line.
const maxLineBytes = 8 * 1024 * 1024

// ErrUnavailable is returned when no input can be opened.
var ErrUnavailable = errors.New("input source unavailable")

// Source yields the instruction line of a run.
type Source interface {
	// ReadLine returns the first line without its terminator. Empty input
	// yields an empty line, not an error.
	ReadLine(ctx context.Context) (string, error)
	// Name identifies the source in logs.
	Name() string
}

// readerSource reads the first line of an io.Reader.
type readerSource struct {
	name string
	r    io.Reader
}

// Reader wraps an io.Reader, typically os.Stdin.
func Reader(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) ReadLine(ctx context.Context) (string, error) {
	if s.r == nil {
		return "", fmt.Errorf("%s: %w", s.name, ErrUnavailable)
	}
	return firstLine(s.r)
}

// fileSource reads the first line of a file.
type fileSource struct {
	path string
}

// File reads from the file at path.
func File(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string { return s.path }

func (s *fileSource) ReadLine(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()

	var r io.Reader = f
	if isCompressed(s.path) {
		logger.Debug("Decompressing zstd input.", "path", s.path)
		dec, err := zstd.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("%s: zstd: %w", filepath.Base(s.path), err)
		}
		defer dec.Close()
		r = dec
	}

	line, err := firstLine(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(s.path), err)
	}
	return line, nil
}

// fallbackSource prefers a file and falls back to another source when the
// file does not exist.
type fallbackSource struct {
	path     string
	fallback Source
}

// Fallback reads path when it exists and fallback otherwise.
func Fallback(path string, fallback Source) Source {
	return &fallbackSource{path: path, fallback: fallback}
}

func (s *fallbackSource) Name() string {
	return s.path + " or " + s.fallback.Name()
}

func (s *fallbackSource) ReadLine(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)

	exists, err := fsutil.FileExists(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if exists {
		logger.Debug("Reading instructions from file.", "path", s.path)
		return File(s.path).ReadLine(ctx)
	}
	logger.Debug("Input file not found, falling back.", "path", s.path, "fallback", s.fallback.Name())
	return s.fallback.ReadLine(ctx)
}

func isCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}

// firstLine returns the first line of r, trimmed of "\n" and "\r\n".
func firstLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	if sc.Scan() {
		return strings.TrimSuffix(sc.Text(), "\r"), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}
	return "", nil
}
