package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zinc-sig/toolkit/internal/config"
)

// addTaskFlags registers the flags shared by every command that loads a test
// configuration for a task.
func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "explicit config file path (skips discovery)")
	cmd.Flags().String("config-dir", ".", "directory searched for <category>/<name>.test.yaml")
}

// loadTask resolves the configuration for a task identifier. An explicit
// --file path wins over convention-based discovery. The returned directory is
// where relative script_file paths resolve, i.e. the config file's directory.
func loadTask(cmd *cobra.Command, taskID string) (*config.Document, string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		configDir, _ := cmd.Flags().GetString("config-dir")
		var err error
		path, err = config.Discover(configDir, taskID)
		if err != nil {
			return nil, "", err
		}
	}
	doc, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc, filepath.Dir(path), nil
}
