package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/sia-framework/sia/internal/config"
	"github.com/sia-framework/sia/internal/manifest"
	"github.com/sia-framework/sia/internal/skills"
	"github.com/spf13/cobra"
)

var skillsDir string

func init() {
	skillsCmd.PersistentFlags().StringVar(&skillsDir, "dir", "", "Project directory (default: current directory)")
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsValidateCmd)
	rootCmd.AddCommand(skillsCmd)
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List and validate installed skills",
}

// skillSources resolves the search order: project skills first, then the
// user's shared skills under ~/.sia.
func skillSources(root string) []skills.Source {
	return []skills.Source{
		{Name: "project", BasePath: filepath.Join(root, ".sia", "skills")},
		{Name: "user", BasePath: filepath.Join(config.Dir(), "skills")},
	}
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot(skillsDir)
		if err != nil {
			return err
		}

		found, err := skills.Discover(skillSources(root))
		if err != nil {
			return err
		}
		if len(found) == 0 {
			fmt.Println("No skills installed.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tSOURCE\tDESCRIPTION")
		for _, s := range found {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Manifest.Name, s.Manifest.Version, s.Source, s.Manifest.Description)
		}
		return w.Flush()
	},
}

var skillsValidateCmd = &cobra.Command{
	Use:   "validate [manifest...]",
	Short: "Validate skill manifests against the schema",
	Long: `Validate the given manifest files, or every discovered skill manifest
when no arguments are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			root, err := projectRoot(skillsDir)
			if err != nil {
				return err
			}
			found, err := skills.Discover(skillSources(root))
			if err != nil {
				return err
			}
			for _, s := range found {
				paths = append(paths, s.ManifestPath)
			}
		}
		if len(paths) == 0 {
			fmt.Println("Nothing to validate.")
			return nil
		}

		failed := 0
		for _, path := range paths {
			result, err := manifest.ValidateFile(path)
			if err != nil {
				return err
			}
			if result.Valid {
				fmt.Printf("ok    %s\n", path)
				continue
			}
			failed++
			fmt.Printf("FAIL  %s\n", path)
			for _, issue := range result.Issues {
				fmt.Printf("      %s: %s\n", issue.Path, issue.Message)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d manifest(s) failed validation", failed)
		}
		return nil
	},
}
