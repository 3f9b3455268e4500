package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a test-configuration document from the
// given YAML file path, then substitutes defaults for optional scalar fields.
// Validation runs before defaulting, so a file that omits a required field
// still fails even when a default exists for it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Kind: "config file", Name: path}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SyntaxError{Path: path, Err: err}
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}

	applyDefaults(&doc)
	return &doc, nil
}

// Discover resolves a task identifier to a config file path by convention.
// A task identifier is either "<category>/<name>" or a bare "<name>".
// Candidates are tried in order: <dir>/<category>/<name>.test.yaml, then
// <dir>/<name>.test.yaml.
func Discover(configDir, taskID string) (string, error) {
	var candidates []string
	if category, name, ok := strings.Cut(taskID, "/"); ok {
		candidates = append(candidates,
			filepath.Join(configDir, category, name+".test.yaml"),
			filepath.Join(configDir, name+".test.yaml"))
	} else {
		candidates = append(candidates, filepath.Join(configDir, taskID+".test.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &NotFoundError{Kind: "config for task", Name: taskID}
}

// applyDefaults substitutes defaults for optional scalar fields of a
// validated document.
func applyDefaults(doc *Document) {
	if doc.Verification != nil {
		if doc.Verification.Image.Repository == "" {
			doc.Verification.Image.Repository = DefaultImageRepository
		}
		if doc.Verification.Image.Tag == "" {
			doc.Verification.Image.Tag = DefaultImageTag
		}
	}
	if doc.Preparation != nil && doc.Preparation.Image.Tag == "" {
		doc.Preparation.Image.Tag = DefaultImageTag
	}
}
