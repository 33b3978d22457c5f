package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadFile reads a catalog from a YAML or JSON file on disk.
func LoadFile(ctx context.Context, path string) (Catalog, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parser.Parse(ctx, content)
}

// LoadFS reads a catalog from fsys, typically an embed.FS.
func LoadFS(ctx context.Context, fsys fs.FS, path string) (Catalog, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parser.Parse(ctx, content)
}
