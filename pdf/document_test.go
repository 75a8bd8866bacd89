package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePDFBytes(t *testing.T) {
	assert.NoError(t, ValidatePDFBytes(SourceFile{Name: "a.pdf", Data: []byte("%PDF-1.7\n...")}))

	err := ValidatePDFBytes(SourceFile{Name: "a.pdf"})
	requireValidationErr(t, err)
	assert.Contains(t, err.Error(), "empty")

	err = ValidatePDFBytes(SourceFile{Name: "a.txt", Data: []byte("hello")})
	requireValidationErr(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestDocumentInfo(t *testing.T) {
	file := newTestPDF(t, "report.pdf", 5)

	info, err := DocumentInfo(file)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", info.Name)
	assert.Equal(t, len(file.Data), info.Size)
	assert.Equal(t, 5, info.Pages)
}

func TestPageCount_DecodeFailure(t *testing.T) {
	_, err := PageCount(SourceFile{Name: "broken.pdf", Data: []byte("%PDF-1.7 truncated")})
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrProcessing, kind)
}

func TestImagesToPDF(t *testing.T) {
	_, err := ImagesToPDF(nil)
	requireValidationErr(t, err)

	_, err = ImagesToPDF([]SourceFile{{Name: "empty.png"}})
	requireValidationErr(t, err)

	images := []SourceFile{
		{Name: "scan.png", Data: newTestImage(t, 120, 80, colorRed)},
		{Name: "scan2.png", Data: newTestImage(t, 120, 80, colorRed)},
	}
	artifact, err := ImagesToPDF(images)
	require.NoError(t, err)
	assert.Equal(t, 2, artifact.Pages)
	assert.Equal(t, "scan.pdf", artifact.Name)

	pages, err := PageCount(SourceFile{Name: artifact.Name, Data: artifact.Data})
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "report", baseName("report.pdf"))
	assert.Equal(t, "report", baseName("report.PDF"))
	assert.Equal(t, "archive.tar", baseName("archive.tar"))
	assert.Equal(t, "document", baseName(""))
	assert.Equal(t, "document", baseName(".pdf"))
}
