package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sia-framework/sia/internal/platform"
)

// gitignoreMarker identifies the managed block inside .gitignore. Its
// presence means the block was already installed.
const gitignoreMarker = "# SIA Framework"

// EnsureGitignore appends the managed ignore block to the project .gitignore,
// creating the file when absent. A .gitignore that already carries the marker
// is left untouched.
func EnsureGitignore(root string, res *Result, out io.Writer) error {
	raw, err := templateFS.ReadFile("templates/gitignore")
	if err != nil {
		return fmt.Errorf("reading embedded gitignore block: %w", err)
	}
	block := string(raw)

	path := filepath.Join(root, ".gitignore")
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if strings.Contains(string(existing), gitignoreMarker) {
			fmt.Fprintf(out, "  skip  .gitignore (already exists)\n")
			res.Skipped = append(res.Skipped, ".gitignore")
			return nil
		}
		content := string(existing)
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + block
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("updating .gitignore: %w", err)
		}
		fmt.Fprintf(out, "  write .gitignore (appended)\n")
	case os.IsNotExist(err):
		if err := os.WriteFile(path, []byte(block), 0o644); err != nil {
			return fmt.Errorf("writing .gitignore: %w", err)
		}
		fmt.Fprintf(out, "  write .gitignore\n")
	default:
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	if err := platform.Chmod(path, 0o644); err != nil {
		return fmt.Errorf("setting mode on .gitignore: %w", err)
	}
	res.Created = append(res.Created, ".gitignore")
	return nil
}
