package typereg

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Convert parses a raw textual token from a directive attribute into a
// value of the target type, using cty's standard conversion rules
// (string to number, string to bool, and so on).
//
// Capsule types cannot be produced from text; their values only ever
// come from the service registry.
func (r *Registry) Convert(raw string, ty cty.Type) (cty.Value, error) {
	if ty.IsCapsuleType() {
		return cty.NilVal, fmt.Errorf("cannot convert text %q to opaque type %s", raw, ty.FriendlyName())
	}
	if ty == cty.DynamicPseudoType {
		// An untyped parameter keeps the raw text.
		return cty.StringVal(raw), nil
	}
	val, err := convert.Convert(cty.StringVal(raw), ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert %q to %s: %w", raw, ty.FriendlyName(), err)
	}
	return val, nil
}
