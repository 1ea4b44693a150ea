package tags

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagflow/pkg/errors"
)

// Format identifies a tag document encoding.
type Format string

// Supported document formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FormatFromPath picks a format from a file extension. Unknown extensions
// are read as plain text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTOML, FormatJSON, FormatText:
		return f, nil
	case "txt":
		return FormatText, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid document format: %q (must be one of: toml, json, text)", s)
}

// ReadFile loads and normalizes the document at path, choosing the format
// from its extension.
func ReadFile(path string) (*Set, error) {
	return ReadFileAs(path, FormatFromPath(path))
}

// ReadFileAs loads and normalizes the document at path in the given format.
func ReadFileAs(path string, format Format) (*Set, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "document path cannot be empty")
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tag document %s not found", path)
	}
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and normalizes a document.
func Parse(data []byte, format Format) (*Set, error) {
	var (
		s   *Set
		err error
	)
	switch format {
	case FormatTOML:
		s, err = parseTOML(data)
	case FormatJSON:
		s, err = parseJSON(data)
	case FormatText:
		s, err = parseText(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid document format: %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Normalize(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseTOML(data []byte) (*Set, error) {
	var s Set
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q", undecoded[0].String())
	}
	return &s, nil
}

func parseJSON(data []byte) (*Set, error) {
	var s Set
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
	}
	return &s, nil
}

func parseText(data []byte) (*Set, error) {
	var s Set
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Tags = append(s.Tags, Tag{Label: line})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read text")
	}
	return &s, nil
}
