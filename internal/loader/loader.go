// Package loader reads lint report files, trying a list of text encodings in order.
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/farcloser/primordium/fault"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Attempt is one way of decoding the report file into UTF-8 text.
type Attempt struct {
	Name       string
	NewDecoder func() transform.Transformer
}

// DefaultAttempts returns strict UTF-16 (a byte order mark is required) followed by strict UTF-8.
// ESLint run through PowerShell redirection writes UTF-16, everything else writes UTF-8.
func DefaultAttempts() []Attempt {
	return []Attempt{
		{
			Name: "utf-16",
			NewDecoder: func() transform.Transformer {
				return transform.Chain(
					&utf16Validator{},
					unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(),
				)
			},
		},
		{
			Name: "utf-8",
			NewDecoder: func() transform.Transformer {
				return transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
			},
		},
	}
}

// Load returns the content of path decoded by the first attempt that succeeds.
// If every attempt fails, the error of the last one is returned as is.
func Load(path string, attempts []Attempt) ([]byte, error) {
	if len(attempts) == 0 {
		return nil, fmt.Errorf("%w: no encoding to try", fault.ErrMissingRequirements)
	}

	var err error

	for _, attempt := range attempts {
		slog.Debug("loader.Load", "path", path, "attempt", attempt.Name, "stage", "start")

		var data []byte

		data, err = read(path, attempt)
		if err == nil {
			slog.Debug("loader.Load", "path", path, "attempt", attempt.Name, "stage", "done", "bytes", len(data))

			return data, nil
		}

		slog.Debug("loader.Load", "path", path, "attempt", attempt.Name, "stage", "error", "error", err)
	}

	return nil, err
}

func read(path string, attempt Attempt) ([]byte, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, attempt.Name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(transform.NewReader(file, attempt.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, attempt.Name, err)
	}

	return data, nil
}
