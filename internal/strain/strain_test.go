package strain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipliers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.2, Sativa.Multiplier())
	assert.Equal(t, 0.8, Indica.Multiplier())
	assert.Equal(t, 1.0, Hybrid.Multiplier())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sativa", Sativa.String())
	assert.Equal(t, "Indica", Indica.String())
	assert.Equal(t, "Hybrid", Hybrid.String())
	assert.Equal(t, "Strain(42)", Strain(42).String())
}

func TestPersonalityAndDescription(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Energetic", Sativa.Personality())
	assert.Equal(t, "Relaxed", Indica.Personality())
	assert.Equal(t, "Balanced", Hybrid.Personality())
	assert.NotEmpty(t, Sativa.Description())
	assert.NotEmpty(t, Indica.Description())
	assert.NotEmpty(t, Hybrid.Description())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Strain
	}{
		{"sativa", Sativa},
		{"Sativa", Sativa},
		{"INDICA", Indica},
		{"hybrid", Hybrid},
		{"  hybrid  ", Hybrid},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "Parse(%q)", tt.input)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.input)
	}

	_, err := Parse("ruderalis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ruderalis")
}

func TestAllAndNames(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, []Strain{Sativa, Indica, Hybrid}, all)
	assert.Equal(t, []string{"sativa", "indica", "hybrid"}, Names())
}
