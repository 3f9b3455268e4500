package config

// Validate checks a document for required fields, stopping at the first
// violation. It is a pure check: the document is not mutated and no defaults
// are applied.
func Validate(doc *Document) error {
	if doc.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	if doc.MockResources == nil {
		return &MissingFieldError{Field: "mock_resources"}
	}
	if doc.TaskParameters == nil {
		return &MissingFieldError{Field: "task_parameters"}
	}
	if doc.Verification == nil {
		return &MissingFieldError{Field: "verification"}
	}
	if doc.Verification.Image.Repository == "" {
		return &MissingFieldError{Field: "verification.image.repository"}
	}
	if doc.Verification.Script == "" && doc.Verification.ScriptFile == "" {
		return &MissingFieldError{Field: "verification.script (or verification.script_file)"}
	}
	return nil
}
