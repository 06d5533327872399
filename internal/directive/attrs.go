package directive

import (
	"regexp"
	"strings"
)

// attrPattern matches one `key = value` pair. A value is a double-quoted
// string, a single-quoted string, a brace-delimited list, or a bare
// word token.
var attrPattern = regexp.MustCompile(`([^,=\s]+)\s*=\s*("[^"]+"|'[^']+'|\{[^}]+\}|[^\W]\w*)`)

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// ParseAttrs parses the text inside a directive's attribute clause (the
// parentheses content, possibly empty) into a key to value map.
//
// Quotes are stripped from values, except for the `choices` key: its
// raw text is preserved so ParseChoices can tokenize it in a second
// pass. A key occurring twice yields a DuplicateAttributeError.
func ParseAttrs(clause string) (map[string]string, error) {
	attrs := make(map[string]string)
	for _, m := range attrPattern.FindAllStringSubmatch(clause, -1) {
		key, value := m[1], m[2]
		if _, dup := attrs[key]; dup {
			return nil, &DuplicateAttributeError{Key: key}
		}
		if !strings.EqualFold(key, "choices") {
			value = quoteStripper.Replace(value)
		}
		attrs[key] = value
	}
	return attrs, nil
}
