package readers

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/sia-framework/sia/internal/reader"
)

func init() {
	reader.Register(func() reader.Reader { return newHTML("html") })
	reader.Register(func() reader.Reader { return newHTML("htm") })
}

// HTML extracts the textual content of HTML documents as markdown. One
// implementation serves both conventional suffixes.
type HTML struct {
	ext  string
	conv *converter.Converter
}

func newHTML(ext string) *HTML {
	return &HTML{
		ext: ext,
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

func (h *HTML) Extension() string { return h.ext }

func (h *HTML) Read(path string) (string, error) {
	data, err := readValidated(path)
	if err != nil {
		return "", err
	}
	text, err := decodeUTF8(path, data)
	if err != nil {
		return "", err
	}

	md, err := h.conv.ConvertString(text)
	if err != nil {
		return "", &reader.CorruptedFileError{Path: path, Reason: "cannot extract text from HTML", Err: err}
	}
	return md, nil
}
