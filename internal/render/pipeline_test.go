package render

import (
	"strings"
	"testing"

	"github.com/zinc-sig/toolkit/internal/config"
	"gopkg.in/yaml.v3"
)

func TestBuildPipelineResources(t *testing.T) {
	p, err := BuildPipeline(resolvedFixture(), Options{})
	if err != nil {
		t.Fatalf("BuildPipeline() error: %v", err)
	}

	if len(p.Resources) != 2 {
		t.Fatalf("len(Resources) = %d, want 2", len(p.Resources))
	}
	// Sorted role order.
	if p.Resources[0].Name != "assignment_assets" || p.Resources[1].Name != "submission" {
		t.Errorf("resources = %v", p.Resources)
	}
	for _, r := range p.Resources {
		if r.Type != "mock" {
			t.Errorf("resource %s type = %q, want mock", r.Name, r.Type)
		}
	}
}

func TestBuildPipelineVerifyOnly(t *testing.T) {
	p, err := BuildPipeline(resolvedFixture(), Options{})
	if err != nil {
		t.Fatalf("BuildPipeline() error: %v", err)
	}

	if len(p.Jobs) != 1 || p.Jobs[0].Name != "grade" {
		t.Fatalf("jobs = %v", p.Jobs)
	}
	plan := p.Jobs[0].Plan
	// Two gets plus the verify task, no prepare.
	if len(plan) != 3 {
		t.Fatalf("len(plan) = %d, want 3", len(plan))
	}
	verify := plan[2]
	if verify.Task != "verify" {
		t.Fatalf("last step = %+v, want verify task", verify)
	}
	if verify.Config.ImageResource.Source.Repository != "python" {
		t.Errorf("verify image = %q", verify.Config.ImageResource.Source.Repository)
	}
	if verify.Config.Params["timeout"] != 30 {
		t.Errorf("verify params = %v", verify.Config.Params)
	}
	if got := verify.Config.Run; got.Path != "sh" || len(got.Args) != 2 || got.Args[1] != "python3 main.py" {
		t.Errorf("verify run = %+v", got)
	}
}

func TestBuildPipelineWithPreparation(t *testing.T) {
	res := resolvedFixture()
	res.Preparation = &config.Preparation{
		Image:   config.Image{Repository: "alpine", Tag: "3.19"},
		Script:  "echo prepared > generated/marker",
		Outputs: []string{"generated"},
	}

	p, err := BuildPipeline(res, Options{})
	if err != nil {
		t.Fatalf("BuildPipeline() error: %v", err)
	}

	plan := p.Jobs[0].Plan
	if len(plan) != 4 {
		t.Fatalf("len(plan) = %d, want 4", len(plan))
	}
	prepare, verify := plan[2], plan[3]
	if prepare.Task != "prepare" {
		t.Fatalf("step 2 = %+v, want prepare task", prepare)
	}
	if len(prepare.Config.Outputs) != 1 || prepare.Config.Outputs[0].Name != "generated" {
		t.Errorf("prepare outputs = %v", prepare.Config.Outputs)
	}

	// Verify consumes the mocks plus the preparation outputs.
	var names []string
	for _, in := range verify.Config.Inputs {
		names = append(names, in.Name)
	}
	want := "assignment_assets submission generated"
	if strings.Join(names, " ") != want {
		t.Errorf("verify inputs = %v, want %q", names, want)
	}
}

func TestBuildPipelineImageFallback(t *testing.T) {
	res := resolvedFixture()
	res.Verification = &config.Verification{Script: "true"}

	p, err := BuildPipeline(res, Options{})
	if err != nil {
		t.Fatalf("BuildPipeline() error: %v", err)
	}
	src := p.Jobs[0].Plan[len(p.Jobs[0].Plan)-1].Config.ImageResource.Source
	if src.Repository != "busybox" || src.Tag != "latest" {
		t.Errorf("image source = %+v, want busybox:latest", src)
	}
}

func TestBuildPipelineScriptFileError(t *testing.T) {
	res := resolvedFixture()
	res.Verification = &config.Verification{ScriptFile: "missing.sh"}
	if _, err := BuildPipeline(res, Options{ScriptDir: t.TempDir()}); err == nil {
		t.Error("expected error for missing script file")
	}
}

func TestEncodePipelineRoundTrip(t *testing.T) {
	p, err := BuildPipeline(resolvedFixture(), Options{})
	if err != nil {
		t.Fatalf("BuildPipeline() error: %v", err)
	}
	data, err := EncodePipeline(p)
	if err != nil {
		t.Fatalf("EncodePipeline() error: %v", err)
	}

	var decoded Pipeline
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("re-parsing pipeline YAML: %v", err)
	}
	if len(decoded.Resources) != len(p.Resources) || len(decoded.Jobs) != 1 {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
	if decoded.Jobs[0].Plan[2].Config.Run.Args[1] != "python3 main.py" {
		t.Errorf("round-trip lost run args")
	}
}
