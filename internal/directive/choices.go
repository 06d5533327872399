package directive

import (
	"regexp"

	"github.com/zclconf/go-cty/cty"
)

// choicePattern matches one choices token: quoted, or bare up to the
// next comma, brace, or whitespace.
var choicePattern = regexp.MustCompile(`"[^"]+"|'[^']+'|[^,\s{}]+`)

// ParseChoices splits the raw text of a `choices` attribute into tokens
// and converts each to the parameter's declared type, preserving source
// order. A token that fails conversion yields an InvalidChoiceError.
func ParseChoices(res Resolver, raw string, ty cty.Type) ([]cty.Value, error) {
	var choices []cty.Value
	for _, token := range choicePattern.FindAllString(raw, -1) {
		token = quoteStripper.Replace(token)
		val, err := res.Convert(token, ty)
		if err != nil {
			return nil, &InvalidChoiceError{Token: token, Err: err}
		}
		choices = append(choices, val)
	}
	return choices, nil
}
