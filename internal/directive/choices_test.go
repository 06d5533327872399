package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/scriptpipe/internal/typereg"
	"github.com/zclconf/go-cty/cty"
)

func TestParseChoicesNumbers(t *testing.T) {
	choices, err := ParseChoices(typereg.New(), "{1,2,3}", cty.Number)
	require.NoError(t, err)

	require.Len(t, choices, 3)
	assert.True(t, choices[0].RawEquals(cty.NumberIntVal(1)))
	assert.True(t, choices[1].RawEquals(cty.NumberIntVal(2)))
	assert.True(t, choices[2].RawEquals(cty.NumberIntVal(3)))
}

func TestParseChoicesQuotedStrings(t *testing.T) {
	choices, err := ParseChoices(typereg.New(), `"a,b"`, cty.String)
	require.NoError(t, err)

	// The quoted token is one choice; the comma inside is literal.
	require.Len(t, choices, 1)
	assert.True(t, choices[0].RawEquals(cty.StringVal("a,b")))
}

func TestParseChoicesBareStrings(t *testing.T) {
	choices, err := ParseChoices(typereg.New(), "{red, green, blue}", cty.String)
	require.NoError(t, err)

	require.Len(t, choices, 3)
	assert.True(t, choices[0].RawEquals(cty.StringVal("red")))
	assert.True(t, choices[2].RawEquals(cty.StringVal("blue")))
}

func TestParseChoicesInvalidToken(t *testing.T) {
	_, err := ParseChoices(typereg.New(), "{1,two,3}", cty.Number)

	var invalid *InvalidChoiceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "two", invalid.Token)
}
