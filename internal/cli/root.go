package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "toolkit",
	Short: "toolkit — local development tooling for grading-pipeline task templates",
	Long: `toolkit resolves declarative test configurations for grading-pipeline task
templates: it applies variant overlays, validates the result, and emits the
render artifact, generated pipeline document, and materialized mock resources
used to exercise a template locally.

The CI executor, object store, and command runner are external; toolkit stops
at producing the documents that drive them.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(mocksCmd)
}
