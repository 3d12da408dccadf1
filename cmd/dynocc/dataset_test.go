package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliviergimenez/dynocc/occu"
)

func TestDatasetRoundTrip(t *testing.T) {
	design, err := occu.NewDesign(2, 2)
	require.NoError(t, err)
	data, err := occu.NewDataset(design, [][]int{
		{1, 0, 1, 0},
		{0, 0, 0, 1},
	}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeDataset(&buf, data))

	back, err := readDataset(&buf, design)
	require.NoError(t, err)
	require.Equal(t, data.Sites(), back.Sites())
	for i := 0; i < data.Sites(); i++ {
		assert.Equal(t, data.History(i), back.History(i))
	}
}

func TestReadDatasetRejectsBadInput(t *testing.T) {
	design, err := occu.NewDesign(2, 2)
	require.NoError(t, err)

	_, err = readDataset(strings.NewReader("1,0,1\n"), design)
	assert.Error(t, err)

	_, err = readDataset(strings.NewReader("1,0,2,0\n"), design)
	assert.ErrorIs(t, err, occu.ErrBadSymbol)

	_, err = readDataset(strings.NewReader("1,x,0,0\n"), design)
	assert.Error(t, err)
}
