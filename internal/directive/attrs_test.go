package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttrsEmptyClause(t *testing.T) {
	attrs, err := ParseAttrs("")
	require.NoError(t, err)
	assert.Empty(t, attrs)
}

func TestParseAttrsPairs(t *testing.T) {
	attrs, err := ParseAttrs(`min=1, max=10, label="Count"`)
	require.NoError(t, err)

	assert.Equal(t, "1", attrs["min"])
	assert.Equal(t, "10", attrs["max"])
	assert.Equal(t, "Count", attrs["label"], "double quotes are stripped")
}

func TestParseAttrsSingleQuotes(t *testing.T) {
	attrs, err := ParseAttrs(`style='slider'`)
	require.NoError(t, err)
	assert.Equal(t, "slider", attrs["style"])
}

func TestParseAttrsChoicesKeepsRawValue(t *testing.T) {
	attrs, err := ParseAttrs(`choices={1,2,3}, label="x"`)
	require.NoError(t, err)

	assert.Equal(t, "{1,2,3}", attrs["choices"], "choices stays raw for the second parsing pass")
	assert.Equal(t, "x", attrs["label"])
}

func TestParseAttrsQuotedChoicesKeepQuotes(t *testing.T) {
	attrs, err := ParseAttrs(`choices="a,b"`)
	require.NoError(t, err)
	assert.Equal(t, `"a,b"`, attrs["choices"])
}

func TestParseAttrsDuplicateKey(t *testing.T) {
	_, err := ParseAttrs(`min=1, max=10, label="Count", min=1, max=10, label="Count"`)

	var dup *DuplicateAttributeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "min", dup.Key)
}
