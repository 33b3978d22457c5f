package fieldvalue

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory is the memory limit used when parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// RequestValues extracts submitted form values from an
// application/x-www-form-urlencoded or multipart/form-data request.
func RequestValues(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil

	case strings.HasPrefix(mediaType, "multipart/form-data"):
		_, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed content type with boundary", ErrInvalidForm)
		}

		boundary, ok := params["boundary"]
		if !ok || boundary == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
		}
		if !validBoundary(boundary) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
		}

		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm == nil {
			return url.Values{}, nil
		}
		return url.Values(r.MultipartForm.Value), nil

	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}
}

// BindRequest binds the request's submitted values into form.
func BindRequest(r *http.Request, form *Form) error {
	values, err := RequestValues(r)
	if err != nil {
		return err
	}
	form.Bind(values)
	return nil
}

// validBoundary checks the RFC 2046 boundary grammar: 1 to 70 characters from
// the bchars set, not ending in a space.
func validBoundary(b string) bool {
	if len(b) == 0 || len(b) > 70 || strings.HasSuffix(b, " ") {
		return false
	}
	for _, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}
