package integrations

import (
	"os"
	"path/filepath"
)

func init() {
	Register(&copilot{})
}

// copilot points GitHub Copilot at the project's SIA context.
type copilot struct{}

func (c *copilot) Name() string        { return "copilot" }
func (c *copilot) Description() string { return "GitHub Copilot repository instructions" }

func (c *copilot) Apply(root string, data Data) (*Outcome, error) {
	o := &Outcome{}
	if err := writeIfAbsent(root, "github/copilot-instructions.md", ".github/copilot-instructions.md", data, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (c *copilot) Detect(root string) bool {
	_, err := os.Stat(filepath.Join(root, ".github", "copilot-instructions.md"))
	return err == nil
}
