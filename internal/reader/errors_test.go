package reader

import (
	"errors"
	"strings"
	"testing"
)

func TestTaxonomyBlanketCapture(t *testing.T) {
	cause := errors.New("bad byte at offset 12")

	errs := []error{
		&UnsupportedFormatError{Extension: "docx"},
		&CorruptedFileError{Path: "a.txt", Reason: "truncated"},
		&CorruptedFileError{Path: "b.txt", Reason: "invalid encoding", Err: cause},
	}

	for _, err := range errs {
		if !errors.Is(err, ErrReader) {
			t.Errorf("%T does not match ErrReader", err)
		}
	}
}

func TestCorruptedFilePreservesCause(t *testing.T) {
	cause := errors.New("invalid UTF-8 sequence")
	err := &CorruptedFileError{Path: "/tmp/data.txt", Reason: "bad encoding", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("CorruptedFileError does not match its wrapped cause")
	}
	if !errors.Is(err, ErrReader) {
		t.Error("CorruptedFileError with cause no longer matches ErrReader")
	}
	if !strings.Contains(err.Error(), cause.Error()) {
		t.Errorf("message %q does not preserve cause description", err.Error())
	}
}

func TestCorruptedFileMessageCarriesContext(t *testing.T) {
	err := &CorruptedFileError{Path: "/data/reports/q3.csv", Reason: "row 4 has 2 fields, want 5"}

	msg := err.Error()
	if !strings.Contains(msg, "q3.csv") {
		t.Errorf("message %q missing file name", msg)
	}
	if !strings.Contains(msg, "row 4") {
		t.Errorf("message %q missing defect description", msg)
	}
}

func TestUnsupportedFormatErrorAs(t *testing.T) {
	var err error = &UnsupportedFormatError{Extension: "docx", Supported: []string{"pdf", "txt"}}

	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatal("errors.As failed for *UnsupportedFormatError")
	}
	if ufe.Extension != "docx" {
		t.Errorf("Extension = %q, want %q", ufe.Extension, "docx")
	}
}

func TestValidatorErrorsStayOutsideTaxonomy(t *testing.T) {
	err := ValidateFileExists("/nonexistent/file_12345.txt")
	if err == nil {
		t.Fatal("ValidateFileExists on missing path succeeded")
	}
	if errors.Is(err, ErrReader) {
		t.Error("filesystem failure matches ErrReader, want it outside the taxonomy")
	}
}
