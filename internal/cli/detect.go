package cli

import (
	"fmt"

	"github.com/sia-framework/sia/internal/detect"
	"github.com/spf13/cobra"
)

var (
	detectDir  string
	detectSave bool
)

func init() {
	detectCmd.Flags().StringVar(&detectDir, "dir", "", "Project directory (default: current directory)")
	detectCmd.Flags().BoolVar(&detectSave, "save", false, "Write the result to .sia.detected.yaml")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the project's language and framework",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot(detectDir)
		if err != nil {
			return err
		}

		report := detect.Detect(root)
		fmt.Println(report.Summary())

		if detectSave {
			if err := detect.Save(root, report); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", detect.SnapshotFile)
		}
		return nil
	},
}
