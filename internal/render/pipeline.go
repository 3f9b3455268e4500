package render

import (
	"fmt"

	"github.com/zinc-sig/toolkit/internal/config"
	"gopkg.in/yaml.v3"
)

// Pipeline is the generated pipeline document the CI executor consumes.
type Pipeline struct {
	Resources []Resource `yaml:"resources"`
	Jobs      []Job      `yaml:"jobs"`
}

// Resource declares a pipeline input. Mock resources stand in for the real
// artifacts (submission, assignment assets) during local testing.
type Resource struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Job is a named sequence of plan steps.
type Job struct {
	Name string `yaml:"name"`
	Plan []Step `yaml:"plan"`
}

// Step is one plan entry: either a resource get or an inline task.
type Step struct {
	Get    string      `yaml:"get,omitempty"`
	Task   string      `yaml:"task,omitempty"`
	Config *TaskConfig `yaml:"config,omitempty"`
}

// TaskConfig is the inline configuration of a task step.
type TaskConfig struct {
	Platform      string                 `yaml:"platform"`
	ImageResource ImageResource          `yaml:"image_resource"`
	Params        map[string]interface{} `yaml:"params,omitempty"`
	Inputs        []IOMapping            `yaml:"inputs,omitempty"`
	Outputs       []IOMapping            `yaml:"outputs,omitempty"`
	Run           RunConfig              `yaml:"run"`
}

// ImageResource names the container image a task runs in.
type ImageResource struct {
	Type   string      `yaml:"type"`
	Source ImageSource `yaml:"source"`
}

// ImageSource holds the image coordinates.
type ImageSource struct {
	Repository string `yaml:"repository"`
	Tag        string `yaml:"tag"`
}

// IOMapping names a task input or output directory.
type IOMapping struct {
	Name string `yaml:"name"`
}

// RunConfig is the command a task executes.
type RunConfig struct {
	Path string   `yaml:"path"`
	Args []string `yaml:"args,omitempty"`
}

// BuildPipeline generates the pipeline document for a resolved
// configuration: one mock resource per declared role and a single grade job
// whose plan fetches the mocks, runs the preparation task when one is
// declared, and runs the verification task with the resolved parameters.
func BuildPipeline(res *config.Resolved, opts Options) (*Pipeline, error) {
	script, err := VerifyScript(res.Verification, opts)
	if err != nil {
		return nil, err
	}

	roles := sortedKeys(res.MockResources)

	p := &Pipeline{}
	for _, role := range roles {
		p.Resources = append(p.Resources, Resource{Name: role, Type: "mock"})
	}

	var plan []Step
	for _, role := range roles {
		plan = append(plan, Step{Get: role})
	}

	verifyInputs := inputs(roles)
	if res.HasPreparation() {
		prep := res.Preparation
		plan = append(plan, Step{
			Task: "prepare",
			Config: &TaskConfig{
				Platform:      "linux",
				ImageResource: taskImage(prep.Image),
				Inputs:        inputs(roles),
				Outputs:       inputs(prep.Outputs),
				Run:           runScript(prep.Script),
			},
		})
		verifyInputs = append(verifyInputs, inputs(prep.Outputs)...)
	}

	plan = append(plan, Step{
		Task: "verify",
		Config: &TaskConfig{
			Platform:      "linux",
			ImageResource: taskImage(verifyImage(res)),
			Params:        res.TaskParameters,
			Inputs:        verifyInputs,
			Run:           runScript(script),
		},
	})

	p.Jobs = []Job{{Name: "grade", Plan: plan}}
	return p, nil
}

// EncodePipeline renders the pipeline document as YAML.
func EncodePipeline(p *Pipeline) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshalling pipeline: %w", err)
	}
	return data, nil
}

// PipelineToFile generates the pipeline document and writes it atomically.
func PipelineToFile(res *config.Resolved, opts Options, path string) error {
	p, err := BuildPipeline(res, opts)
	if err != nil {
		return err
	}
	data, err := EncodePipeline(p)
	if err != nil {
		return err
	}
	return WriteAtomic(path, data)
}

func verifyImage(res *config.Resolved) config.Image {
	if res.Verification == nil {
		return config.Image{}
	}
	return res.Verification.Image
}

func taskImage(img config.Image) ImageResource {
	repo := img.Repository
	if repo == "" {
		repo = config.DefaultImageRepository
	}
	tag := img.Tag
	if tag == "" {
		tag = config.DefaultImageTag
	}
	return ImageResource{
		Type:   "registry-image",
		Source: ImageSource{Repository: repo, Tag: tag},
	}
}

func inputs(names []string) []IOMapping {
	mapped := make([]IOMapping, 0, len(names))
	for _, name := range names {
		mapped = append(mapped, IOMapping{Name: name})
	}
	return mapped
}

func runScript(script string) RunConfig {
	return RunConfig{Path: "sh", Args: []string{"-ec", script}}
}
