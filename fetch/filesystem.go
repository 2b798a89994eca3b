package fetch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Dir serves resources from files in a local directory.
type Dir struct {
	Path string
}

func NewDir(path string) Dir {
	return Dir{Path: path}
}

func (d Dir) Fetch(ctx context.Context, name string) ([]byte, error) {
	body, err := os.ReadFile(filepath.Join(d.Path, name))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return body, nil
}
