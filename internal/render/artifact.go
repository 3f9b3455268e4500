package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zinc-sig/toolkit/internal/config"
)

// Artifact renders a resolved configuration as a line-oriented text artifact
// with ordered sections: mock resource listings, task parameters, the
// preparation stage (when present), and the verification stage. Roles and
// parameter names are sorted so the output is stable across runs.
func Artifact(res *config.Resolved, opts Options) ([]byte, error) {
	script, err := VerifyScript(res.Verification, opts)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# test configuration: %s\n", res.Name)
	if res.Variant != "" {
		fmt.Fprintf(&b, "# variant: %s\n", res.Variant)
	}
	if res.Description != "" {
		fmt.Fprintf(&b, "# %s\n", res.Description)
	}

	b.WriteString("\n## mock resources\n\n")
	for _, role := range sortedKeys(res.MockResources) {
		fmt.Fprintf(&b, "%s:\n", role)
		files := res.MockResources[role]
		if len(files) == 0 {
			b.WriteString("  - (placeholder)\n")
			continue
		}
		paths := make([]string, 0, len(files))
		for path := range files {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Fprintf(&b, "  - %s (%d bytes)\n", path, len(files[path]))
		}
	}

	b.WriteString("\n## task parameters\n\n")
	for _, name := range sortedKeys(res.TaskParameters) {
		encoded, err := EncodeScalar(res.TaskParameters[name])
		if err != nil {
			return nil, fmt.Errorf("task parameter %s: %w", name, err)
		}
		fmt.Fprintf(&b, "%s: %s\n", name, encoded)
	}

	if res.HasPreparation() {
		prep := res.Preparation
		b.WriteString("\n## preparation\n\n")
		fmt.Fprintf(&b, "image: %s\n", ImageRef(prep.Image))
		if len(prep.Outputs) > 0 {
			fmt.Fprintf(&b, "outputs: %s\n", strings.Join(prep.Outputs, ", "))
		}
		b.WriteString("script:\n")
		writeScript(&b, prep.Script)
	}

	b.WriteString("\n## verification\n\n")
	var img config.Image
	if res.Verification != nil {
		img = res.Verification.Image
	}
	fmt.Fprintf(&b, "image: %s\n", ImageRef(img))
	b.WriteString("script:\n")
	writeScript(&b, script)

	return []byte(b.String()), nil
}

// ArtifactToFile renders the artifact and writes it atomically, so a failed
// render never leaves a partial file behind.
func ArtifactToFile(res *config.Resolved, opts Options, path string) error {
	data, err := Artifact(res, opts)
	if err != nil {
		return err
	}
	return WriteAtomic(path, data)
}

func writeScript(b *strings.Builder, script string) {
	b.WriteString(strings.TrimRight(script, "\n"))
	b.WriteString("\n")
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
