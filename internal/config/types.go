package config

// Default image coordinates substituted when a configuration leaves them out.
const (
	DefaultImageRepository = "busybox"
	DefaultImageTag        = "latest"
)

// Document is the unresolved test-configuration structure parsed from YAML.
type Document struct {
	Name           string                       `yaml:"name"`
	Description    string                       `yaml:"description"`
	MockResources  map[string]map[string]string `yaml:"mock_resources"`
	TaskParameters map[string]interface{}       `yaml:"task_parameters"`
	Verification   *Verification                `yaml:"verification"`
	Preparation    *Preparation                 `yaml:"preparation"`
	Variants       []Variant                    `yaml:"variants"`
}

// HasPreparation reports whether the document declares a preparation stage.
// An absent or explicitly null preparation key means no preparation stage.
func (d *Document) HasPreparation() bool {
	return d.Preparation != nil
}

// Image identifies the container image a stage runs in.
type Image struct {
	Repository string `yaml:"repository"`
	Tag        string `yaml:"tag"`
}

// Verification describes the verification stage: the image it runs in and
// where its script comes from. An inline script takes precedence over
// script_file when both are set.
type Verification struct {
	Image      Image  `yaml:"image"`
	Script     string `yaml:"script"`
	ScriptFile string `yaml:"script_file"`
}

// Preparation describes the optional preparation stage run before
// verification. Outputs names the resources the stage produces, in order.
type Preparation struct {
	Image   Image    `yaml:"image"`
	Script  string   `yaml:"script"`
	Outputs []string `yaml:"outputs"`
}

// Variant is a named partial overlay applied on top of the base document.
// It may override task parameters and/or the verification block. Mock
// resources cannot be overridden; they always come from the base.
type Variant struct {
	Name           string                 `yaml:"name"`
	TaskParameters map[string]interface{} `yaml:"task_parameters"`
	Verification   *Verification          `yaml:"verification"`
}

// Resolved is a document after applying at most one variant overlay. It is a
// transient, single-use value consumed by the renderer.
type Resolved struct {
	Name           string                       `yaml:"name"`
	Description    string                       `yaml:"description"`
	Variant        string                       `yaml:"variant,omitempty"`
	MockResources  map[string]map[string]string `yaml:"mock_resources"`
	TaskParameters map[string]interface{}       `yaml:"task_parameters"`
	Verification   *Verification                `yaml:"verification"`
	Preparation    *Preparation                 `yaml:"preparation,omitempty"`
}

// HasPreparation reports whether the resolved configuration includes a
// preparation stage.
func (r *Resolved) HasPreparation() bool {
	return r.Preparation != nil
}
