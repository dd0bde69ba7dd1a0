package sde

import (
	"bufio"
	"context"
	"os"
	"strings"

	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OverrideSource = (*OverrideReader)(nil)

// OverrideReader implements ports.OverrideSource for line-oriented name lists.
// Names are taken as already normalized; only surrounding whitespace is trimmed.
type OverrideReader struct{}

// NewOverrideReader creates a new OverrideReader.
func NewOverrideReader() *OverrideReader {
	return &OverrideReader{}
}

// LoadOverrides reads one name per line, skipping blank lines and # comments.
// An empty path means there is no override list.
func (o *OverrideReader) LoadOverrides(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path is taken from configuration
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrOverridesReadFailed, "failed to load overrides"), "cause", err.Error())
		return nil, zerr.With(err, "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}

	if err := scanner.Err(); err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrOverridesReadFailed, "failed to load overrides"), "cause", err.Error())
		return nil, zerr.With(err, "path", path)
	}

	return names, nil
}
