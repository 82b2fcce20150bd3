package readers

import "github.com/sia-framework/sia/internal/reader"

func init() {
	reader.Register(func() reader.Reader { return Text{} })
	reader.Register(func() reader.Reader { return Markdown{} })
}

// Text reads plain UTF-8 text files (.txt). Empty files and invalid
// encodings are reported as corrupted.
type Text struct{}

func (Text) Extension() string { return "txt" }

func (Text) Read(path string) (string, error) {
	data, err := readValidated(path)
	if err != nil {
		return "", err
	}
	return decodeUTF8(path, data)
}

// Markdown reads markdown documents (.md). Markdown is returned verbatim;
// knowledge files are consumed in source form.
type Markdown struct{}

func (Markdown) Extension() string { return "md" }

func (Markdown) Read(path string) (string, error) {
	data, err := readValidated(path)
	if err != nil {
		return "", err
	}
	return decodeUTF8(path, data)
}
