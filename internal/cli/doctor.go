package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sia-framework/sia/internal/detect"
	"github.com/sia-framework/sia/internal/hosttools"
	"github.com/sia-framework/sia/internal/integrations"
	"github.com/sia-framework/sia/internal/scaffold"
	"github.com/sia-framework/sia/internal/skills"
	"github.com/spf13/cobra"
)

var doctorDir string

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a SIA installation",
	Long:  `Run diagnostic checks on the project's SIA installation and the host environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot(doctorDir)
		if err != nil {
			return err
		}

		problems := 0

		fmt.Println("Scaffolding:")
		if scaffold.Installed(root) {
			fmt.Println("  [ok] .sia directory present")
		} else {
			fmt.Println("  [--] .sia directory missing (run 'sia install')")
			problems++
		}
		if _, err := os.Stat(filepath.Join(root, ".sia", "INIT_REQUIRED.md")); err == nil {
			fmt.Println("  [!!] not initialized yet (run /activate in your editor)")
			problems++
		}

		fmt.Println("\nDetection:")
		if report, err := detect.Load(root); err == nil {
			fmt.Printf("  [ok] %s\n", report.Summary())
		} else {
			fmt.Println("  [--] no detection snapshot (run 'sia detect --save')")
			problems++
		}

		fmt.Println("\nIntegrations:")
		for _, i := range integrations.All() {
			if i.Detect(root) {
				fmt.Printf("  [ok] %s\n", i.Name())
			} else {
				fmt.Printf("  [--] %s not configured\n", i.Name())
				problems++
			}
		}

		fmt.Println("\nHost tools:")
		hosttools.Report(os.Stdout)

		fmt.Println("\nSkills:")
		found, err := skills.Discover(skillSources(root))
		if err != nil {
			return err
		}
		if len(found) == 0 {
			fmt.Println("  none installed")
		} else {
			issues := skills.Verify(found, nil)
			fmt.Printf("  %d installed\n", len(found))
			for _, issue := range issues {
				fmt.Printf("  [!!] %s\n", issue)
				problems++
			}
		}

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		fmt.Println("\nAll checks passed.")
		return nil
	},
}
