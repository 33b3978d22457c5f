package fieldvalue

import "errors"

var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidHTML          = errors.New("failed to parse html form")
)
