package integrations

import (
	"os"
	"path/filepath"
)

func init() {
	Register(&vscode{})
}

// vscode enables prompt files and archive exclusions in VS Code.
type vscode struct{}

func (v *vscode) Name() string        { return "vscode" }
func (v *vscode) Description() string { return "VS Code workspace settings for SIA prompt files" }

func (v *vscode) Apply(root string, data Data) (*Outcome, error) {
	o := &Outcome{}
	if err := writeIfAbsent(root, "vscode/settings.json", ".vscode/settings.json", data, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (v *vscode) Detect(root string) bool {
	_, err := os.Stat(filepath.Join(root, ".vscode", "settings.json"))
	return err == nil
}
