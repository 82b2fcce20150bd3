package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/sia-framework/sia/internal/integrations"
	"github.com/sia-framework/sia/internal/platform"
)

//go:embed all:templates
var templateFS embed.FS

// Options configures an installation.
type Options struct {
	ProjectName string
	ProjectType string
	Version     string
	LinkSource  string    // dev mode: symlink prompts/skills from a framework checkout
	Out         io.Writer // progress and warnings; nil silences output
}

// Result reports what an installation did.
type Result struct {
	Created []string // paths written, relative to root
	Skipped []string // paths left alone because they already exist
	Linked  []string // paths symlinked in dev mode
}

// dirs is the directory skeleton, relative to the project root.
var dirs = []string{
	".sia",
	".sia/agents",
	".sia/knowledge/active",
	".sia/knowledge/_archive",
	".sia/requirements",
	".sia/requirements/_archive",
	".sia/skills",
	".sia/prompts",
}

// fileSpec maps an embedded template to its destination.
type fileSpec struct {
	src string // path under templates/
	dst string // path relative to the project root
}

var files = []fileSpec{
	{"sia/README.md", ".sia/README.md"},
	{"sia/INIT_REQUIRED.md", ".sia/INIT_REQUIRED.md"},
	{"sia/knowledge/active/README.md", ".sia/knowledge/active/README.md"},
	{"sia/requirements/README.md", ".sia/requirements/README.md"},
	{"sia/skills/README.md", ".sia/skills/README.md"},
	{"sia/agents/README.md", ".sia/agents/README.md"},
	{"sia/prompts/README.md", ".sia/prompts/README.md"},
}

// Install writes the SIA layout under root. Existing files are preserved and
// reported as skipped; running Install twice is a no-op the second time.
func Install(root string, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	res := &Result{}

	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", d, err)
		}
	}

	specs := append([]fileSpec{}, files...)
	prompts, err := promptSpecs()
	if err != nil {
		return nil, err
	}
	specs = append(specs, prompts...)

	for _, spec := range specs {
		if err := installFile(root, spec, opts, res, out); err != nil {
			return nil, err
		}
	}

	if err := EnsureGitignore(root, res, out); err != nil {
		return nil, err
	}

	outcome, err := integrations.ApplyAll(root, integrations.Data{
		ProjectName: opts.ProjectName,
		ProjectType: opts.ProjectType,
	})
	if err != nil {
		return nil, err
	}
	for _, p := range outcome.Created {
		fmt.Fprintf(out, "  write %s\n", p)
	}
	for _, p := range outcome.Skipped {
		fmt.Fprintf(out, "  skip  %s (already exists)\n", p)
	}
	res.Created = append(res.Created, outcome.Created...)
	res.Skipped = append(res.Skipped, outcome.Skipped...)

	if opts.LinkSource != "" {
		if err := linkDevDirs(root, opts.LinkSource, res, out); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// promptSpecs enumerates the embedded prompt templates so adding a prompt
// file never requires touching the install list.
func promptSpecs() ([]fileSpec, error) {
	entries, err := templateFS.ReadDir("templates/sia/prompts")
	if err != nil {
		return nil, fmt.Errorf("reading embedded prompts: %w", err)
	}
	var specs []fileSpec
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" || e.Name() == "README.md" {
			continue
		}
		specs = append(specs, fileSpec{
			src: "sia/prompts/" + e.Name(),
			dst: ".sia/prompts/" + e.Name(),
		})
	}
	return specs, nil
}

func installFile(root string, spec fileSpec, opts Options, res *Result, out io.Writer) error {
	dst := filepath.Join(root, spec.dst)
	if _, err := os.Stat(dst); err == nil {
		fmt.Fprintf(out, "  skip  %s (already exists)\n", spec.dst)
		res.Skipped = append(res.Skipped, spec.dst)
		return nil
	}

	content, err := render(spec.src, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", spec.dst, err)
	}
	if err := platform.Chmod(dst, 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", spec.dst, err)
	}
	fmt.Fprintf(out, "  write %s\n", spec.dst)
	res.Created = append(res.Created, spec.dst)
	return nil
}

// render executes an embedded template with the install options.
func render(src string, opts Options) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + src)
	if err != nil {
		return nil, fmt.Errorf("reading embedded template %s: %w", src, err)
	}
	tmpl, err := template.New(filepath.Base(src)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", src, err)
	}

	data := struct {
		ProjectName string
		ProjectType string
		Version     string
	}{opts.ProjectName, opts.ProjectType, opts.Version}
	if data.ProjectName == "" {
		data.ProjectName = "this project"
	}
	if data.ProjectType == "" {
		data.ProjectType = "generic"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", src, err)
	}
	return buf.Bytes(), nil
}

// linkDevDirs replaces empty prompts/skills directories with symlinks into a
// framework checkout so template edits show up live.
func linkDevDirs(root, source string, res *Result, out io.Writer) error {
	for _, d := range []string{"prompts", "skills"} {
		srcDir := filepath.Join(source, d)
		if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
			continue
		}
		dst := filepath.Join(root, ".sia", d)

		// Only link over a directory the installer itself just populated.
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("clearing %s for dev link: %w", dst, err)
		}
		if err := platform.CreateSymlink(srcDir, dst); err != nil {
			return fmt.Errorf("linking %s: %w", dst, err)
		}
		fmt.Fprintf(out, "  link  .sia/%s -> %s\n", d, srcDir)
		res.Linked = append(res.Linked, ".sia/"+d)
	}
	return nil
}

// Installed reports whether root already carries a SIA layout.
func Installed(root string) bool {
	info, err := os.Stat(filepath.Join(root, ".sia"))
	return err == nil && info.IsDir()
}
