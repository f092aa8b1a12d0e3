package cmpengine

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding accepted by DecodeDescription.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat maps a format name or common alias to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "msgpack", "mpk", "mp":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// FormatFromContentType picks a format from an HTTP Content-Type.
// Empty and unrecognised types default to JSON.
func FormatFromContentType(contentType string) Format {
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch strings.TrimSpace(strings.ToLower(mediaType)) {
	case "application/msgpack", "application/x-msgpack", "application/vnd.msgpack":
		return FormatMsgpack
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML
	case "application/toml", "text/toml":
		return FormatTOML
	}
	return FormatJSON
}

// DecodeDescription reads one description from r.
func DecodeDescription(r io.Reader, f Format) (Description, error) {
	var desc Description
	var err error

	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&desc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&desc)
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&desc)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&desc)
	default:
		return Description{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return Description{}, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, f, err)
	}
	return desc, nil
}

// LoadDescription reads a description file, choosing the format by
// extension.
func LoadDescription(path string) (Description, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Description{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Description{}, fmt.Errorf("cmpengine: open description: %w", err)
	}
	defer file.Close()

	desc, err := DecodeDescription(file, f)
	if err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}
