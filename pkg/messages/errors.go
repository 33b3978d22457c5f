package messages

import "errors"

var (
	ErrParsingCancelled    = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML catalog")
	ErrFailedToReadFile    = errors.New("failed to read catalog file")
	ErrUnsupportedFormat   = errors.New("unsupported catalog file format")
	ErrInvalidTemplateType = errors.New("catalog template must be a string")
	ErrEmptyCatalog        = errors.New("catalog is empty")
)
