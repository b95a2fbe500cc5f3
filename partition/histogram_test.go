package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramEmptyValuesErrors(t *testing.T) {
	_, _, err := Histogram(nil, 0, 0, nil)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestHistogramProducesPerRowAssignment(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(i)
	}
	table, assignment, err := Histogram(values, 0, 39, nil)
	require.NoError(t, err)
	require.Len(t, assignment, len(values))
	for _, bin := range assignment {
		assert.GreaterOrEqual(t, bin, 0)
		assert.Less(t, bin, table.Len())
	}
}
