// Package file reads dictionary records from a tab-separated text file.
package file

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/heartmarshall/dictgen/internal/domain"
)

const maxRecordSize = 1024 * 1024 // 1MB per record

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source streams the records of a UTF-8 TSV file. Any of LF, CRLF or CR
// terminates a record.
type Source struct {
	path string
}

// NewSource creates a Source for path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Name identifies the source in logs.
func (s *Source) Name() string { return "file:" + s.path }

// Each calls fn for every record in the file, in order. A record that is not
// valid UTF-8 stops the read with domain.ErrInvalidUTF8.
func (s *Source) Each(ctx context.Context, fn func(record string) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	scanner.Split(scanRecords)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := scanner.Bytes()
		if lineNo == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		if !utf8.Valid(line) {
			return fmt.Errorf("read %s: line %d: %w", s.path, lineNo, domain.ErrInvalidUTF8)
		}
		if err := fn(string(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	return nil
}

// scanRecords is bufio.ScanLines extended to treat a lone CR as a line end.
func scanRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// CR: need one more byte to tell CR from CRLF.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
