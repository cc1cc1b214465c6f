// Package model decodes textual input (JSON, YAML, TOML, XML) into the
// generic value trees the printer renders: nested map[string]interface{},
// []interface{}, and primitives.
package model

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/quill/pkg/errors"
)

// Format identifies an input encoding
type Format int

const (
	// FormatUnknown means the format could not be determined
	FormatUnknown Format = iota
	// FormatJSON is JSON input
	FormatJSON
	// FormatYAML is YAML input
	FormatYAML
	// FormatTOML is TOML input
	FormatTOML
	// FormatXML is XML input
	FormatXML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatUnknown, errors.Newf(errors.ErrUnsupportedFormat, "unknown format: %s", s)
	}
}

// DetectFormat guesses the format from a file path's extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".xml":
		return FormatXML
	default:
		return FormatUnknown
	}
}

// Decode reads all of r and decodes it as the given format.
func Decode(r io.Reader, format Format) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputRead, "failed to read input")
	}
	return DecodeBytes(data, format)
}

// DecodeBytes decodes data as the given format.
func DecodeBytes(data []byte, format Format) (interface{}, error) {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return nil, errors.Wrap(err, errors.ErrDecodeInput, "failed to decode JSON")
		}
		return normalizeNumbers(v), nil

	case FormatYAML:
		var v interface{}
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, errors.ErrDecodeInput, "failed to decode YAML")
		}
		return v, nil

	case FormatTOML:
		var v map[string]interface{}
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, errors.ErrDecodeInput, "failed to decode TOML")
		}
		return v, nil

	case FormatXML:
		return decodeXML(data)

	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "no decoder for format %q", format)
	}
}

// normalizeNumbers rewrites json.Number leaves into int64 or float64, so
// JSON integers print as integers like they do for the other formats.
func normalizeNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []interface{}:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

// decodeXML maps an XML document onto the generic model shape: each element
// becomes a record with its tag, attributes, text, and children.
func decodeXML(data []byte) (interface{}, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecodeInput, "failed to decode XML")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDecodeInput, "XML document has no root element")
	}
	return elementToModel(root), nil
}

func elementToModel(el *etree.Element) map[string]interface{} {
	m := map[string]interface{}{
		"tag": el.Tag,
	}

	if len(el.Attr) > 0 {
		attrs := make(map[string]interface{}, len(el.Attr))
		for _, a := range el.Attr {
			attrs[a.Key] = a.Value
		}
		m["attrs"] = attrs
	}

	if text := strings.TrimSpace(el.Text()); text != "" {
		m["text"] = text
	}

	children := el.ChildElements()
	if len(children) > 0 {
		kids := make([]interface{}, 0, len(children))
		for _, c := range children {
			kids = append(kids, elementToModel(c))
		}
		m["children"] = kids
	}

	return m
}
