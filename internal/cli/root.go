package cli

import (
	"fmt"
	"os"

	"github.com/sia-framework/sia/internal/branding"
	"github.com/spf13/cobra"

	// Pulls in the file reader registrations for read and formats.
	_ "github.com/sia-framework/sia/internal/reader/readers"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs and maintains the project scaffolding that gives AI coding
assistants durable, versioned context: knowledge files, requirement documents,
skills, and prompt commands, all living under the project's .sia directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// projectRoot resolves the project directory a command operates on: the
// --dir flag when given, otherwise the working directory.
func projectRoot(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}
