package pdf

import (
	"bytes"
	"fmt"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

var colorRed = color.NRGBA{R: 200, G: 20, B: 20, A: 255}

// newTestImage encodes a solid-color PNG in memory.
func newTestImage(t *testing.T, width, height int, c color.NRGBA) []byte {
	t.Helper()
	img := imaging.New(width, height, c)
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

// newTestPDF builds an in-memory document with the given number of pages,
// one imported image per page.
func newTestPDF(t *testing.T, name string, pages int) SourceFile {
	t.Helper()
	images := make([]SourceFile, pages)
	for i := range images {
		images[i] = SourceFile{
			Name: fmt.Sprintf("page_%d.png", i+1),
			Data: newTestImage(t, 200, 100, color.NRGBA{R: uint8(40 * i), G: 80, B: 120, A: 255}),
		}
	}
	artifact, err := ImagesToPDF(images)
	require.NoError(t, err)
	return SourceFile{Name: name, Data: artifact.Data}
}

func requireValidationErr(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok, "expected a tagged operation error, got %v", err)
	require.Equal(t, ErrValidation, kind)
}
