package cli

import (
	"fmt"

	"github.com/sia-framework/sia/internal/reader"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Read a knowledge file and print its text content",
	Long: `Read a file through the format-aware reader pipeline: the file is
validated, dispatched to the reader registered for its extension, and its
text content is printed to stdout. This is the same pipeline skills use to
ingest knowledge files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if err := reader.ValidateFileExists(path); err != nil {
			return err
		}

		r, err := reader.ForPath(path)
		if err != nil {
			return err
		}

		content, err := r.Read(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		fmt.Print(content)
		return nil
	},
}
