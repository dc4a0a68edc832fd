package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/repr"
)

var errUnsupportedInput = errors.New("unsupported input format")

func init() {
	// JSON numbers are decoded as json.Number to preserve their exact
	// spelling; render them as numbers, not quoted strings.
	repr.Register(func(p *repr.Printer, n json.Number) {
		p.WriteStyled(repr.StyleNumber, n.String())
	})
}

// formatForPath guesses the input format from the file extension,
// defaulting to JSON.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".msgpack", ".mp":
		return "msgpack"
	default:
		return "json"
	}
}

// decodeFile reads and decodes one document. An empty format means
// guess from the extension.
func decodeFile(path, format string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = formatForPath(path)
	}
	return decode(data, format)
}

func decode(data []byte, format string) (any, error) {
	var v any
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	case "msgpack":
		if err := msgpack.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedInput, format)
	}
	return v, nil
}
