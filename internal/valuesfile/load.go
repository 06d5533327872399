// Package valuesfile loads caller-provided parameter values from an HCL
// attribute file. Each top-level attribute names a script input; its
// expression must evaluate without context (literals and the standard
// constructors only).
//
//	count    = 5
//	greeting = "hello"
//	sizes    = [1, 2, 3]
package valuesfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Parse decodes HCL source into name/value bindings. The filename is
// used in diagnostics only.
func Parse(filename string, src []byte) (map[string]cty.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing values file %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading values file %s: %w", filename, diags)
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		// A nil eval context restricts values to literals.
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating value %q in %s: %w", name, filename, diags)
		}
		values[name] = val
	}
	return values, nil
}

// Load reads and decodes the values file at the given path.
func Load(path string) (map[string]cty.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values file: %w", err)
	}
	return Parse(path, src)
}
