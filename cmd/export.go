package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the shopping list as plain text",
	Long:  "Print the aisle-grouped shopping list as plain text, suitable for piping to a file or sharing.",
	Example: `  recifree export
  recifree export > list.txt
  recifree export --copy`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the exported list to the clipboard")
}

func runExport(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	text := store.PlainText()
	fmt.Fprint(cmd.OutOrStdout(), text)

	if flagCopy {
		if err := clipboard.WriteAll(text); err != nil {
			return internalError("copy the list to the clipboard", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "note: copied to clipboard")
	}
	return nil
}
