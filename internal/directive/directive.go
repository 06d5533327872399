// Package directive parses single parameter directive lines from a
// script header into param.Item metadata records.
//
// A directive is the text following the `@` marker on a header comment
// line. The supported forms are:
//
//	<type> <varName>
//	<type>(<attr>=<value>, ...) <varName>
//	<IOType> <type> <varName>
//	<IOType>(<attr>=<value>, ...) <type> <varName>
//
// where <IOType> is one of INPUT, OUTPUT, or BOTH. The attribute clause
// may appear anywhere after the first token; it is excised before the
// remaining words are tokenized.
package directive

import (
	"context"
	"strings"

	"github.com/vk/scriptpipe/internal/param"
	"github.com/zclconf/go-cty/cty"
)

// Resolver is the external type-lookup and value-conversion capability
// the parser depends on. The typereg package provides the standard
// implementation.
type Resolver interface {
	// Lookup resolves a textual type name to a type.
	Lookup(name string) (cty.Type, bool)
	// Convert parses a raw attribute token into a value of the target type.
	Convert(raw string, ty cty.Type) (cty.Value, error)
}

// Parse parses the text following the directive marker and returns the
// populated item together with the declared variable name. The two can
// differ when a `name=` attribute overrides the item's name; the
// declared name is what decides whether the directive claims the
// reserved return-value identifier.
func Parse(ctx context.Context, res Resolver, text string) (*param.Item, string, error) {
	lParen := strings.Index(text, "(")
	rParen := strings.LastIndex(text, ")")
	if rParen < lParen {
		return nil, "", &SyntaxError{Directive: text}
	}

	rest, clause := text, ""
	if lParen >= 0 {
		rest = text[:lParen] + text[rParen+1:]
		clause = text[lParen+1 : rParen]
	}
	attrs, err := ParseAttrs(clause)
	if err != nil {
		return nil, "", err
	}

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return nil, "", &SyntaxError{Directive: text}
	}

	var typeName, varName string
	if _, isKind := param.ParseIOKind(tokens[0]); isKind {
		// Syntax: <IOType> <type> <varName>. The kind keyword routes
		// through the `type` attribute so an explicit type= attribute in
		// the clause is overridden by it, matching the directive grammar.
		if len(tokens) < 3 {
			return nil, "", &SyntaxError{Directive: text}
		}
		attrs["type"] = tokens[0]
		typeName, varName = tokens[1], tokens[2]
	} else {
		// Syntax: <type> <varName>.
		if len(tokens) < 2 {
			return nil, "", &SyntaxError{Directive: text}
		}
		typeName, varName = tokens[0], tokens[1]
	}

	ty, ok := res.Lookup(typeName)
	if !ok {
		return nil, "", &UnknownTypeError{TypeName: typeName}
	}

	item := param.New(varName, ty)
	if err := applyAttrs(ctx, res, item, attrs); err != nil {
		return nil, "", err
	}
	return item, varName, nil
}
