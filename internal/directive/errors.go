package directive

import "fmt"

// SyntaxError reports a directive whose tokens or attribute clause do
// not match the grammar. Directive holds the offending directive text.
type SyntaxError struct {
	Directive string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid parameter directive: %s", e.Directive)
}

// DuplicateAttributeError reports an attribute key that appears more
// than once inside a single attribute clause.
type DuplicateAttributeError struct {
	Key string
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("duplicate attribute key: %s", e.Key)
}

// UnknownAttributeError reports an attribute key outside the recognised
// vocabulary.
type UnknownAttributeError struct {
	Key string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute name: %s", e.Key)
}

// UnknownTypeError reports a type token the type registry could not
// resolve.
type UnknownTypeError struct {
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown parameter type: %s", e.TypeName)
}

// InvalidChoiceError reports a choices token that failed conversion to
// the parameter's declared type.
type InvalidChoiceError struct {
	Token string
	Err   error
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q: %v", e.Token, e.Err)
}

func (e *InvalidChoiceError) Unwrap() error { return e.Err }
