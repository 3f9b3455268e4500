package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zinc-sig/toolkit/internal/config"
	"github.com/zinc-sig/toolkit/internal/render"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Generate pipeline documents from test configurations",
}

var pipelineGenerateCmd = &cobra.Command{
	Use:   "generate <task-id>",
	Short: "Generate the pipeline document for a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, scriptDir, err := loadTask(cmd, args[0])
		if err != nil {
			return err
		}

		variant, _ := cmd.Flags().GetString("variant")
		res, err := config.Resolve(doc, variant)
		if err != nil {
			return err
		}

		opts := render.Options{ScriptDir: scriptDir}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := render.PipelineToFile(res, opts, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		}

		p, err := render.BuildPipeline(res, opts)
		if err != nil {
			return err
		}
		data, err := render.EncodePipeline(p)
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(data)
		return nil
	},
}

func init() {
	addTaskFlags(pipelineGenerateCmd)
	pipelineGenerateCmd.Flags().String("variant", "", "variant overlay to apply")
	pipelineGenerateCmd.Flags().StringP("output", "o", "", "write the pipeline to a file instead of stdout")
	pipelineCmd.AddCommand(pipelineGenerateCmd)
}
