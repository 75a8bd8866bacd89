package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_FileCountValidation(t *testing.T) {
	_, err := Merge(nil)
	requireValidationErr(t, err)
	assert.Contains(t, err.Error(), "no files provided")

	_, err = Merge([]SourceFile{{Name: "a.pdf", Data: []byte("%PDF-1.7")}})
	requireValidationErr(t, err)
	assert.Contains(t, err.Error(), "at least 2 files")
}

func TestMerge_RejectsNonPDF(t *testing.T) {
	good := newTestPDF(t, "good.pdf", 2)
	bad := SourceFile{Name: "bad.pdf", Data: []byte("not a pdf at all")}

	_, err := Merge([]SourceFile{good, bad})
	requireValidationErr(t, err)
	assert.Contains(t, err.Error(), "bad.pdf")
}

func TestMerge_PageCount(t *testing.T) {
	first := newTestPDF(t, "first.pdf", 3)
	second := newTestPDF(t, "second.pdf", 4)

	artifact, err := Merge([]SourceFile{first, second})
	require.NoError(t, err)

	assert.Equal(t, 7, artifact.Pages)
	assert.Equal(t, "first_merged.pdf", artifact.Name)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.NotEmpty(t, artifact.ID)

	pages, err := PageCount(SourceFile{Name: artifact.Name, Data: artifact.Data})
	require.NoError(t, err)
	assert.Equal(t, 7, pages)
}
