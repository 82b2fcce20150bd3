package reader

import "testing"

// stubReader is a minimal conforming implementation for registry and
// factory tests.
type stubReader struct {
	ext     string
	content string
}

func (s stubReader) Extension() string { return s.ext }

func (s stubReader) Read(path string) (string, error) { return s.content, nil }

// stub returns a constructor producing stubReader values.
func stub(ext, content string) Constructor {
	return func() Reader { return stubReader{ext: ext, content: content} }
}

func TestExtensionKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"file.txt", "txt"},
		{"FILE.TXT", "txt"},
		{"file.Txt", "txt"},
		{"archive.tar.txt", "txt"},
		{"report.2024.pdf", "pdf"},
		{"README", ""},
		{"trailing.", ""},
		{"/some/dir/notes.Md", "md"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ExtensionKey(tt.path); got != tt.want {
				t.Errorf("ExtensionKey(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	r := stubReader{ext: "txt"}

	tests := []struct {
		path string
		want bool
	}{
		{"file.txt", true},
		{"FILE.TXT", true},
		{"file.Txt", true},
		{"file.pdf", false},
		{"file.txt.bak", false},
		{"README", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Supports(r, tt.path); got != tt.want {
				t.Errorf("Supports(txt, %q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSupportsEmptyExtensionReaderNeverMatchesSuffixlessPath(t *testing.T) {
	// A reader claiming the empty key must still reject suffixless paths.
	r := stubReader{ext: ""}
	if Supports(r, "README") {
		t.Error("Supports(empty-extension reader, \"README\") = true, want false")
	}
}
