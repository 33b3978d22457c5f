package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parser decodes a catalog document. Documents are flat objects mapping a
// message key to its template:
//
//	REQUIRED: "This field is required."
//	MIN_LENGTH: "Please enter at least {0} characters."
type Parser interface {
	Parse(ctx context.Context, content []byte) (Catalog, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser chosen by the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// YAMLParser parses YAML catalogs.
type YAMLParser struct{}

// NewYAMLParser returns a parser for .yaml and .yml files.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toCatalog(data)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses JSON catalogs.
type JSONParser struct{}

// NewJSONParser returns a parser for .json files.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toCatalog(data)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func toCatalog(data map[string]any) (Catalog, error) {
	if len(data) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := make(Catalog, len(data))
	for k, v := range data {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %s has %T", ErrInvalidTemplateType, k, v)
		}
		c[Key(k)] = s
	}
	return c, nil
}
