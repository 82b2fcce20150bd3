package reader

import (
	"reflect"
	"testing"
)

func TestRegisterMakesFormatAvailable(t *testing.T) {
	defer Isolate()()

	Register(stub("test", "test content"))

	formats := SupportedFormats()
	if len(formats) != 1 || formats[0] != "test" {
		t.Fatalf("SupportedFormats() = %v, want [test]", formats)
	}

	r, err := ForPath("file.test")
	if err != nil {
		t.Fatalf("ForPath(\"file.test\") error: %v", err)
	}
	got, err := r.Read("file.test")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "test content" {
		t.Errorf("Read() = %q, want %q", got, "test content")
	}
}

func TestRegisterNormalizesKey(t *testing.T) {
	defer Isolate()()

	Register(stub("TEST", "upper"))

	formats := SupportedFormats()
	if len(formats) != 1 || formats[0] != "test" {
		t.Fatalf("SupportedFormats() = %v, want [test]", formats)
	}
}

func TestRegisterNilConstructorIsNeverServable(t *testing.T) {
	defer Isolate()()

	Register(nil)

	if formats := SupportedFormats(); len(formats) != 0 {
		t.Errorf("SupportedFormats() = %v, want empty", formats)
	}
	if _, ok := Default().Lookup("test"); ok {
		t.Error("Lookup(\"test\") found an entry, want none")
	}
}

func TestLastRegistrationWins(t *testing.T) {
	defer Isolate()()

	Register(stub("dup", "first"))
	Register(stub("dup", "second"))

	r, err := ForPath("file.dup")
	if err != nil {
		t.Fatalf("ForPath(\"file.dup\") error: %v", err)
	}
	got, _ := r.Read("file.dup")
	if got != "second" {
		t.Errorf("Read() = %q, want %q (last registration wins)", got, "second")
	}

	if formats := SupportedFormats(); len(formats) != 1 {
		t.Errorf("SupportedFormats() = %v, want a single entry", formats)
	}
}

func TestMultipleReadersRegisterIndependently(t *testing.T) {
	defer Isolate()()

	Register(stub("txt", "txt"))
	Register(stub("pdf", "pdf"))

	for _, ext := range []string{"txt", "pdf"} {
		if _, ok := Default().Lookup(ext); !ok {
			t.Errorf("Lookup(%q) not found after registration", ext)
		}
	}
}

func TestSupportedFormatsSortedAscending(t *testing.T) {
	defer Isolate()()

	Register(stub("pdf", ""))
	Register(stub("txt", ""))
	Register(stub("docx", ""))

	got := SupportedFormats()
	want := []string{"docx", "pdf", "txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SupportedFormats() = %v, want %v", got, want)
	}
}

func TestSupportedFormatsEmptyRegistry(t *testing.T) {
	defer Isolate()()

	if got := SupportedFormats(); len(got) != 0 {
		t.Errorf("SupportedFormats() = %v, want empty", got)
	}
}

func TestIsolateRestoresPreviousEntries(t *testing.T) {
	defer Isolate()()
	Register(stub("keep", "kept"))

	restore := Isolate()
	if formats := SupportedFormats(); len(formats) != 0 {
		t.Fatalf("SupportedFormats() after Isolate = %v, want empty", formats)
	}

	Register(stub("tmp", ""))
	restore()

	formats := SupportedFormats()
	if !reflect.DeepEqual(formats, []string{"keep"}) {
		t.Errorf("SupportedFormats() after restore = %v, want [keep]", formats)
	}
}

func TestRegistrySurvivesInstanceCreation(t *testing.T) {
	defer Isolate()()

	Register(stub("tmp", "temp"))

	// Create and drop an instance; the registration must persist.
	r, err := ForPath("file.tmp")
	if err != nil {
		t.Fatalf("ForPath error: %v", err)
	}
	_ = r

	if _, err := ForPath("file.tmp"); err != nil {
		t.Errorf("second ForPath error: %v", err)
	}
}
