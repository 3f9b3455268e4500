// Package render turns a resolved test configuration into the artifacts used
// to exercise a task template locally: a sectioned text artifact and a
// generated pipeline document. Rendering is fail-fast — output is produced
// fully in memory and nothing is written when any part of it cannot be
// resolved.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zinc-sig/toolkit/internal/config"
)

// FallbackScript is emitted when neither an inline script nor a script file
// is available for the verification stage.
const FallbackScript = `echo "No verification script specified"`

// Options configures rendering.
type Options struct {
	// ScriptDir is the directory relative script_file paths are resolved
	// against, normally the directory of the config file.
	ScriptDir string
}

// VerifyScript returns the verification script text. An inline script wins
// over script_file; with neither, the fixed fallback line is returned.
func VerifyScript(v *config.Verification, opts Options) (string, error) {
	if v == nil {
		return FallbackScript, nil
	}
	if v.Script != "" {
		return v.Script, nil
	}
	if v.ScriptFile != "" {
		path := v.ScriptFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(opts.ScriptDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading script file %s: %w", v.ScriptFile, err)
		}
		return string(data), nil
	}
	return FallbackScript, nil
}

// ImageRef formats an image reference, substituting the standard defaults
// for missing coordinates. A variant's replacing verification block may
// legitimately carry an empty image; this is where it bottoms out.
func ImageRef(img config.Image) string {
	repo := img.Repository
	if repo == "" {
		repo = config.DefaultImageRepository
	}
	tag := img.Tag
	if tag == "" {
		tag = config.DefaultImageTag
	}
	return repo + ":" + tag
}
