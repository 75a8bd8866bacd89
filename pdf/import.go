package pdf

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ImagesToPDF builds a single document with one page per input image,
// preserving input order. Supported image encodings are whatever the
// document model accepts (JPEG, PNG, TIFF, WebP).
func ImagesToPDF(images []SourceFile) (*Artifact, error) {
	if len(images) == 0 {
		return nil, validationErr("no images provided")
	}

	readers := make([]io.Reader, len(images))
	for i, img := range images {
		if len(img.Data) == 0 {
			return nil, validationErr("image %q is empty", displayName(img))
		}
		readers[i] = bytes.NewReader(img.Data)
	}

	var out bytes.Buffer
	imp := pdfcpu.DefaultImportConfig()
	if err := api.ImportImages(nil, &out, readers, imp, model.NewDefaultConfiguration()); err != nil {
		return nil, processingErr("failed to build document from images", err)
	}

	name := strings.TrimSuffix(images[0].Name, filepath.Ext(images[0].Name))
	if name == "" {
		name = fallbackBaseName
	}
	return newPDFArtifact(name+".pdf", out.Bytes(), len(images)), nil
}
