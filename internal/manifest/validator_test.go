package manifest

import (
	"strings"
	"testing"
)

func TestValidateValidSkill(t *testing.T) {
	result, err := Validate([]byte(skillYAML))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("Valid = false, issues: %v", result.Issues)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	result, err := Validate([]byte(`name: incomplete
type: skill
`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for manifest missing version and description")
	}
	if len(result.Issues) == 0 {
		t.Error("Issues is empty, want at least one")
	}
}

func TestValidateBadVersion(t *testing.T) {
	result, err := Validate([]byte(`name: bad-version
type: skill
version: not-semver
description: Version fails the pattern
`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for non-semver version")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "version") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue mentions /version, got %v", result.Issues)
	}
}

func TestValidateBadTypeEnum(t *testing.T) {
	result, err := Validate([]byte(`name: widget
type: widget
version: "1.0.0"
description: Invalid discriminator
`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for invalid type value")
	}
}

func TestValidateFileMissing(t *testing.T) {
	if _, err := ValidateFile("/nonexistent/manifest.yaml"); err == nil {
		t.Error("ValidateFile() succeeded for missing file, want error")
	}
}
