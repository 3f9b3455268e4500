package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zinc-sig/toolkit/internal/config"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Inspect the variants of a test configuration",
}

var variantsListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List variant names in declaration order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, _, err := loadTask(cmd, args[0])
		if err != nil {
			return err
		}

		names := config.ListVariants(doc)
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No variants defined.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	addTaskFlags(variantsListCmd)
	variantsCmd.AddCommand(variantsListCmd)
}
