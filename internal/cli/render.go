package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zinc-sig/toolkit/internal/config"
	"github.com/zinc-sig/toolkit/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <task-id>",
	Short: "Resolve a test configuration and emit the render artifact",
	Long: `Resolve the test configuration for a task (applying the requested variant,
if any) and emit the sectioned render artifact: mock resource listings, task
parameters, and the preparation and verification stages.

With --summary, print a short overview of the resolved configuration instead
of the full artifact.`,
	Args: cobra.ExactArgs(1),
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

		if summary, _ := cmd.Flags().GetBool("summary"); summary {
			printSummary(cmd, doc, res)
			return nil
		}

		opts := render.Options{ScriptDir: scriptDir}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := render.ArtifactToFile(res, opts, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		}

		data, err := render.Artifact(res, opts)
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(data)
		return nil
	},
}

func printSummary(cmd *cobra.Command, doc *config.Document, res *config.Resolved) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Task: %s\n", res.Name)
	if res.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", res.Description)
	}
	variant := res.Variant
	if variant == "" {
		variant = "(none)"
	}
	fmt.Fprintf(w, "Variant: %s\n", variant)

	roles := make([]string, 0, len(res.MockResources))
	for role := range res.MockResources {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	parts := make([]string, 0, len(roles))
	for _, role := range roles {
		parts = append(parts, fmt.Sprintf("%s (%d files)", role, len(res.MockResources[role])))
	}
	fmt.Fprintf(w, "Mock resources: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(w, "Task parameters: %d\n", len(res.TaskParameters))

	prep := "no"
	if res.HasPreparation() {
		prep = "yes"
	}
	fmt.Fprintf(w, "Preparation: %s\n", prep)

	var img config.Image
	if res.Verification != nil {
		img = res.Verification.Image
	}
	fmt.Fprintf(w, "Verification image: %s\n", render.ImageRef(img))

	names := config.ListVariants(doc)
	if len(names) == 0 {
		fmt.Fprintln(w, "Variants: (none)")
	} else {
		fmt.Fprintf(w, "Variants: %s\n", strings.Join(names, ", "))
	}
}

func init() {
	addTaskFlags(renderCmd)
	renderCmd.Flags().String("variant", "", "variant overlay to apply")
	renderCmd.Flags().Bool("summary", false, "print a summary instead of the full artifact")
	renderCmd.Flags().StringP("output", "o", "", "write the artifact to a file instead of stdout")
}
