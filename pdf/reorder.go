package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Reorder builds a new document with the source pages arranged exactly in
// the given 1-based order. This is the one operation where caller-specified
// order is preserved verbatim rather than normalized. The order must be a
// full permutation of the document's pages.
func Reorder(file SourceFile, order []int) (*Artifact, error) {
	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}

	ctx, err := readContext(file)
	if err != nil {
		return nil, err
	}

	if err := ValidatePageOrder(order, ctx.PageCount); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_reordered.pdf", baseName(file.Name))

	if !IsReorderNecessary(order) {
		// Identity order: pass the document through untouched.
		return newPDFArtifact(name, file.Data, ctx.PageCount), nil
	}

	selected := make([]string, len(order))
	for i, page := range order {
		selected[i] = strconv.Itoa(page)
	}

	var out bytes.Buffer
	if err := api.Collect(bytes.NewReader(file.Data), &out, selected, model.NewDefaultConfiguration()); err != nil {
		return nil, processingErr("failed to reorder pages", err)
	}

	return newPDFArtifact(name, out.Bytes(), ctx.PageCount), nil
}
