package cli

import (
	"encoding/json"
	"fmt"

	"github.com/sia-framework/sia/internal/reader"
	"github.com/spf13/cobra"
)

var formatsJSON bool

func init() {
	formatsCmd.Flags().BoolVar(&formatsJSON, "json", false, "Print formats as JSON")
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the file formats the reader pipeline supports",
	RunE: func(cmd *cobra.Command, args []string) error {
		formats := reader.SupportedFormats()

		if formatsJSON {
			out, err := json.MarshalIndent(formats, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling formats: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(formats) == 0 {
			fmt.Println("No readers registered.")
			return nil
		}
		for _, f := range formats {
			fmt.Println(f)
		}
		return nil
	},
}
