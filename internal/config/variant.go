package config

// FindVariant returns the first variant whose name matches exactly
// (case-sensitive). Fails when no variant matches or none are declared.
func FindVariant(doc *Document, name string) (*Variant, error) {
	for i := range doc.Variants {
		if doc.Variants[i].Name == name {
			return &doc.Variants[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "variant", Name: name}
}

// ListVariants returns the declared variant names in declaration order.
// A document with no variants yields an empty slice, not an error.
func ListVariants(doc *Document) []string {
	names := make([]string, 0, len(doc.Variants))
	for _, v := range doc.Variants {
		names = append(names, v.Name)
	}
	return names
}

// Merge applies a variant overlay to a copy of the base document. Task
// parameters merge key by key: the variant wins where it sets a key, base
// keys it leaves out are retained, and the result's key set is the union of
// both. A verification block on the variant replaces the base block
// wholesale — fields the variant leaves out are not inherited from the base.
// Mock resources always come from the base. A nil variant resolves the base
// alone. The base document is never modified.
func Merge(base *Document, variant *Variant) *Resolved {
	res := &Resolved{
		Name:           base.Name,
		Description:    base.Description,
		MockResources:  base.MockResources,
		TaskParameters: make(map[string]interface{}, len(base.TaskParameters)),
		Verification:   base.Verification,
		Preparation:    base.Preparation,
	}
	for k, v := range base.TaskParameters {
		res.TaskParameters[k] = v
	}

	if variant == nil {
		return res
	}
	res.Variant = variant.Name

	for k, v := range variant.TaskParameters {
		res.TaskParameters[k] = v
	}
	if variant.Verification != nil {
		res.Verification = variant.Verification
	}
	return res
}

// Resolve validates the document and applies the named variant. An empty
// variant name resolves the base alone. On any failure no partial result is
// returned.
func Resolve(doc *Document, variantName string) (*Resolved, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	if variantName == "" {
		return Merge(doc, nil), nil
	}
	v, err := FindVariant(doc, variantName)
	if err != nil {
		return nil, err
	}
	return Merge(doc, v), nil
}
