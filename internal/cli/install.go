package cli

import (
	"fmt"
	"os"

	"github.com/sia-framework/sia/internal/detect"
	"github.com/sia-framework/sia/internal/hosttools"
	"github.com/sia-framework/sia/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	installDir  string
	installName string
	installLink string
)

func init() {
	installCmd.Flags().StringVar(&installDir, "dir", "", "Project directory (default: current directory)")
	installCmd.Flags().StringVar(&installName, "name", "", "Override the detected project name")
	installCmd.Flags().StringVar(&installLink, "link", "", "Dev mode: symlink prompts and skills from a framework checkout")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the SIA scaffolding into a project",
	Long: `Create the .sia directory tree, editor integrations, prompt commands and
.gitignore entries for the target project. Files that already exist are
never overwritten, so re-running install is always safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot(installDir)
		if err != nil {
			return err
		}

		report := detect.Detect(root)
		if installName != "" {
			report.Name = installName
		}
		fmt.Printf("Detected project: %s\n", report.Summary())

		res, err := scaffold.Install(root, scaffold.Options{
			ProjectName: report.Name,
			ProjectType: report.Type,
			Version:     buildVersion,
			LinkSource:  installLink,
			Out:         os.Stdout,
		})
		if err != nil {
			return fmt.Errorf("installing scaffolding: %w", err)
		}

		if err := detect.Save(root, report); err != nil {
			return err
		}

		fmt.Println("\nHost tools:")
		hosttools.Report(os.Stdout)

		fmt.Printf("\nDone: %d files written, %d preserved.\n", len(res.Created), len(res.Skipped))
		if len(res.Created) > 0 {
			fmt.Println("Run /activate in your editor chat to initialize.")
		}
		return nil
	},
}
