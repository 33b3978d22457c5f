package validator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
)

// Field is a named unit of input with the rules to check it against.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Rules Rules  `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// DisplayLabel is the label, or the name when no label is set.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Rules is a list of rule declarations in any shape ParseRule accepts. When
// decoded from YAML or JSON a single declaration is wrapped into a list.
type Rules []any

func (r *Rules) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = wrapRules(v)
	return nil
}

func (r *Rules) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	*r = wrapRules(v)
	return nil
}

func wrapRules(v any) Rules {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return Rules(t)
	default:
		return Rules{t}
	}
}

// Rule types of inputs that imply a rule of the same name.
var typeRules = map[string]any{
	"date":   "date",
	"email":  "email",
	"tel":    "tel",
	"number": "numeric",
	"time":   []any{"time", "hm"},
}

// attrRules maps native constraint attributes to rule names, in emission order.
var attrRules = [][2]string{
	{"minlength", "minlength"},
	{"maxlength", "maxlength"},
	{"min", "min"},
	{"max", "max"},
	{"pattern", "regexp"},
}

// DeriveFields synthesizes a field list from the native constraints of the
// given inputs, in document order. Radio and checkbox groups yield one field
// per name, taken from the first input of the group.
func DeriveFields(inputs fieldvalue.Inputs) []Field {
	var fields []Field
	seen := make(map[string]bool)

	for _, in := range inputs {
		if in.Name == "" {
			continue
		}
		if (in.Type == fieldvalue.TypeRadio || in.Type == fieldvalue.TypeCheckbox) && seen[in.Name] {
			continue
		}
		seen[in.Name] = true

		rules := Rules{}
		if in.Required {
			rules = append(rules, RuleRequired)
		}
		for _, ar := range attrRules {
			if v, ok := in.Attr(ar[0]); ok {
				rules = append(rules, []any{ar[1], v})
			}
		}
		if r, ok := typeRules[in.Type]; ok {
			rules = append(rules, r)
		}
		fields = append(fields, Field{Name: in.Name, Rules: rules})
	}
	return fields
}

// DecodeFields parses a field set from YAML or JSON. format is a file
// extension such as ".yaml" or "json".
func DecodeFields(format string, data []byte) ([]Field, error) {
	var fields []Field
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return nil, errors.Join(ErrInvalidFieldSet, err)
		}
	case "json":
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, errors.Join(ErrInvalidFieldSet, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field #%d has no name", ErrInvalidFieldSet, i)
		}
	}
	return fields, nil
}

// LoadFields reads a field set file from disk.
func LoadFields(ctx context.Context, path string) ([]Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field set %s: %w", path, err)
	}
	return DecodeFields(filepath.Ext(path), data)
}

// LoadFieldsFS reads a field set file from fsys.
func LoadFieldsFS(ctx context.Context, fsys fs.FS, path string) ([]Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read field set %s: %w", path, err)
	}
	return DecodeFields(filepath.Ext(path), data)
}
