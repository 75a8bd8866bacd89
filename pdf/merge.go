package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Merge concatenates the given documents into one, preserving both the
// caller-supplied file order and the page order within each file. A decode
// failure on any file aborts the whole operation, naming the failing file.
func Merge(files []SourceFile) (*Artifact, error) {
	if len(files) == 0 {
		return nil, validationErr("no files provided")
	}
	if len(files) < 2 {
		return nil, validationErr("merge requires at least 2 files, got %d", len(files))
	}

	totalPages := 0
	readers := make([]io.ReadSeeker, 0, len(files))
	for _, file := range files {
		if err := ValidatePDFBytes(file); err != nil {
			return nil, err
		}
		ctx, err := readContext(file)
		if err != nil {
			return nil, err
		}
		totalPages += ctx.PageCount
		readers = append(readers, bytes.NewReader(file.Data))
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, model.NewDefaultConfiguration()); err != nil {
		return nil, processingErr("failed to merge documents", err)
	}

	name := fmt.Sprintf("%s_merged.pdf", baseName(files[0].Name))
	return newPDFArtifact(name, out.Bytes(), totalPages), nil
}
