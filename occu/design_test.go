package occu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDesignRejectsEmptyLayout(t *testing.T) {
	_, err := NewDesign(0, 3)
	assert.ErrorIs(t, err, ErrBadDesign)
	_, err = NewDesign(5, 0)
	assert.ErrorIs(t, err, ErrBadDesign)
}

func TestDesignOccasions(t *testing.T) {
	d, err := NewDesign(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 15, d.Occasions())
}

func TestDesignPartition(t *testing.T) {
	d, err := NewDesign(5, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 6, 9, 12}, d.PrimaryOccasions())
	assert.Equal(t, []int{1, 2, 4, 5, 7, 8, 10, 11, 13, 14}, d.SecondaryOccasions())

	// Occasion 0 is the initialization point and belongs to neither set.
	assert.False(t, d.Transition(0))

	// The two sets partition 1..N-1.
	seen := map[int]bool{}
	for _, t0 := range append(d.PrimaryOccasions(), d.SecondaryOccasions()...) {
		seen[t0] = true
	}
	assert.Len(t, seen, d.Occasions()-1)
}

func TestDesignSingleSurveyAllPrimary(t *testing.T) {
	d, err := NewDesign(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, d.PrimaryOccasions())
	assert.Empty(t, d.SecondaryOccasions())
}
