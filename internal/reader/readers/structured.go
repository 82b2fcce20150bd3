package readers

import (
	"encoding/csv"
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sia-framework/sia/internal/reader"
	"go.yaml.in/yaml/v3"
)

func init() {
	reader.Register(func() reader.Reader { return JSON{} })
	reader.Register(func() reader.Reader { return YAML{ext: "yaml"} })
	reader.Register(func() reader.Reader { return YAML{ext: "yml"} })
	reader.Register(func() reader.Reader { return TOML{} })
	reader.Register(func() reader.Reader { return CSV{} })
}

// JSON reads .json files, verifying they parse before returning the source
// text.
type JSON struct{}

func (JSON) Extension() string { return "json" }

func (JSON) Read(path string) (string, error) {
	data, err := readValidated(path)
	if err != nil {
		return "", err
	}
	text, err := decodeUTF8(path, data)
	if err != nil {
		return "", err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return "", &reader.CorruptedFileError{Path: path, Reason: "malformed JSON", Err: err}
	}
	return text, nil
}

// YAML reads YAML documents. One implementation serves both conventional
// suffixes; ext selects which key an instance claims at registration.
type YAML struct {
	ext string
}

func (y YAML) Extension() string { return y.ext }

func (y YAML) Read(path string) (string, error) {
	data, err := readValidated(path)
	if err != nil {
		return "", err
	}
	text, err := decodeUTF8(path, data)
	if err != nil {
		return "", err
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return "", &reader.CorruptedFileError{Path: path, Reason: "malformed YAML", Err: err}
	}
	return text, nil
}

// TOML reads .toml files, verifying they parse before returning the source
// text.
type TOML struct{}

func (TOML) Extension() string { return "toml" }

func (TOML) Read(path string) (string, error) {
	data, err := readValidated(path)
	if err != nil {
		return "", err
	}
	text, err := decodeUTF8(path, data)
	if err != nil {
		return "", err
	}

	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return "", &reader.CorruptedFileError{Path: path, Reason: "malformed TOML", Err: err}
	}
	return text, nil
}

// CSV reads .csv files. Records must be rectangular; ragged rows are
// reported as corrupted.
type CSV struct{}

func (CSV) Extension() string { return "csv" }

func (CSV) Read(path string) (string, error) {
	data, err := readValidated(path)
	if err != nil {
		return "", err
	}
	text, err := decodeUTF8(path, data)
	if err != nil {
		return "", err
	}

	if _, err := csv.NewReader(strings.NewReader(text)).ReadAll(); err != nil {
		return "", &reader.CorruptedFileError{Path: path, Reason: "malformed CSV", Err: err}
	}
	return text, nil
}
