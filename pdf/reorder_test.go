package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorder(t *testing.T) {
	file := newTestPDF(t, "deck.pdf", 3)

	artifact, err := Reorder(file, []int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, artifact.Pages)
	assert.Equal(t, "deck_reordered.pdf", artifact.Name)

	pages, err := PageCount(SourceFile{Name: artifact.Name, Data: artifact.Data})
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
}

func TestReorder_IdentityPassThrough(t *testing.T) {
	file := newTestPDF(t, "deck.pdf", 3)

	artifact, err := Reorder(file, []int{1, 2, 3})
	require.NoError(t, err)
	// Identity order skips the rebuild entirely.
	assert.Equal(t, file.Data, artifact.Data)
	assert.Equal(t, 3, artifact.Pages)
}

func TestReorder_Validation(t *testing.T) {
	file := newTestPDF(t, "deck.pdf", 3)

	for _, order := range [][]int{
		nil,
		{1, 2},
		{1, 1, 2},
		{1, 2, 4},
	} {
		_, err := Reorder(file, order)
		requireValidationErr(t, err)
	}
}
