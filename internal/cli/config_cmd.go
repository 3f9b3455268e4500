package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zinc-sig/toolkit/internal/config"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and inspect test configurations",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <task-id>",
	Short: "Validate the test configuration for a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load validates before applying defaults, so this surfaces the
		// first schema violation as-is.
		if _, _, err := loadTask(cmd, args[0]); err != nil {
			return err
		}
		cmd.Println("Configuration is valid.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show the resolved configuration with defaults and variant applied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, _, err := loadTask(cmd, args[0])
		if err != nil {
			return err
		}

		variant, _ := cmd.Flags().GetString("variant")
		res, err := config.Resolve(doc, variant)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshalling config: %w", err)
		}
		cmd.Print(string(data))
		return nil
	},
}

func init() {
	addTaskFlags(configValidateCmd)
	addTaskFlags(configShowCmd)
	configShowCmd.Flags().String("variant", "", "variant overlay to apply")
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}
