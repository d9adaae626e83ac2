package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected City
	}{
		{name: "lower case", input: "chicago", expected: Chicago},
		{name: "upper case", input: "CHICAGO", expected: Chicago},
		{name: "mixed case with space", input: "New York", expected: NewYork},
		{name: "surrounding whitespace", input: "  washington\n", expected: Washington},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCity(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCity_Unknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "boston", "newyork", "new  york"} {
		_, err := ParseCity(input)
		assert.ErrorIs(t, err, ErrUnknownCity, "input %q", input)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()

	all := All()
	all[0] = "paris"
	assert.Equal(t, []City{Chicago, NewYork, Washington}, All())
}

func TestCity_HasDemographics(t *testing.T) {
	t.Parallel()

	assert.True(t, Chicago.HasDemographics())
	assert.True(t, NewYork.HasDemographics())
	assert.False(t, Washington.HasDemographics())
}
