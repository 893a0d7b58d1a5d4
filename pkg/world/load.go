package world

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.json
var builtinFS embed.FS

// Format is a world file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from a file name's extension.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported world file extension: %s", filename)
	}
}

// IsWorldFile reports whether filename has a supported world extension.
func IsWorldFile(filename string) bool {
	_, err := FormatFor(filename)
	return err == nil
}

// Decode strictly parses a world (unknown fields are rejected) and validates it.
func Decode(data []byte, format Format) (*World, error) {
	var w World
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode world json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode world yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported world format %q", format)
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Load reads, decodes and validates a world file.
func Load(path string) (*World, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	return Decode(data, format)
}

// Builtin loads one of the worlds shipped with the engine, by id (e.g. "dunnet").
func Builtin(id string) (*World, error) {
	data, err := builtinFS.ReadFile("builtin/" + strings.TrimSuffix(id, ".json") + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: builtin world %q", fs.ErrNotExist, id)
	}
	return Decode(data, FormatJSON)
}

// BuiltinIDs lists the shipped worlds in sorted order.
func BuiltinIDs() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids
}

// MustBuiltin is Builtin for worlds that are known to be valid, such as in tests.
func MustBuiltin(id string) *World {
	w, err := Builtin(id)
	if err != nil {
		panic(err)
	}
	return w
}
