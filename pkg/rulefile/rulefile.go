package rulefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/signalforge/pkg/validator"
	"github.com/dmitrymomot/signalforge/pkg/value"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadRules reads a rules document from path.
func LoadRules(path string) (validator.Rules, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := ParseRules(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes a rules document. The top level must be a mapping whose
// values are lists. Rule names and parameters are checked later by
// validator.New.
func ParseRules(data []byte, format Format) (validator.Rules, error) {
	doc, err := decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: rules must be a mapping of field to rule list, got %s",
			ErrInvalidDocument, value.TypeName(doc))
	}

	rules := make(validator.Rules, len(fields))
	for field, raw := range fields {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: rules for %q must be a list, got %s",
				ErrInvalidDocument, field, value.TypeName(raw))
		}
		rules[field] = list
	}
	return rules, nil
}

// LoadData reads a payload from path.
func LoadData(path string) (any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := DecodeData(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// DecodeData decodes a single payload document from r.
func DecodeData(r io.Reader, format Format) (any, error) {
	return decode(r, format)
}

func decode(r io.Reader, format Format) (any, error) {
	var doc any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: trailing data after JSON document", ErrInvalidDocument)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return value.Normalize(doc), nil
}
