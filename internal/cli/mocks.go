package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zinc-sig/toolkit/internal/config"
	"github.com/zinc-sig/toolkit/internal/mocks"
)

var mocksCmd = &cobra.Command{
	Use:   "mocks",
	Short: "Materialize mock resources for local testing",
}

var mocksMaterializeCmd = &cobra.Command{
	Use:   "materialize <task-id>",
	Short: "Write the mock resource file sets to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, _, err := loadTask(cmd, args[0])
		if err != nil {
			return err
		}

		// Variants never override mock resources, but resolving still
		// validates the document and rejects unknown variant names early.
		variant, _ := cmd.Flags().GetString("variant")
		res, err := config.Resolve(doc, variant)
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		written, err := mocks.Materialize(dir, res.MockResources)
		if err != nil {
			return err
		}

		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Materialized %d file(s) under %s\n", len(written), dir)
		return nil
	},
}

func init() {
	addTaskFlags(mocksMaterializeCmd)
	mocksMaterializeCmd.Flags().String("variant", "", "variant overlay to apply")
	mocksMaterializeCmd.Flags().String("dir", "", "target directory for materialized resources")
	mocksMaterializeCmd.MarkFlagRequired("dir")
	mocksCmd.AddCommand(mocksMaterializeCmd)
}
