package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfHeader is the magic prefix every well-formed PDF starts with.
var pdfHeader = []byte("%PDF")

// ValidatePDFBytes checks the file header before any document-model call is made.
func ValidatePDFBytes(file SourceFile) error {
	if len(file.Data) == 0 {
		return validationErr("file %q is empty", displayName(file))
	}
	if len(file.Data) < len(pdfHeader) || !bytes.HasPrefix(file.Data, pdfHeader) {
		return validationErr("file %q is not a valid PDF: header does not match", displayName(file))
	}
	return nil
}

// readContext decodes a document into the pdfcpu object model.
func readContext(file SourceFile) (*model.Context, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(file.Data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, processingErr(fmt.Sprintf("failed to decode %q", displayName(file)), err)
	}
	return ctx, nil
}

// writeContext serializes a context into a fresh PDF buffer.
func writeContext(ctx *model.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, processingErr("failed to encode output document", err)
	}
	return buf.Bytes(), nil
}

// extractPages copies the given 1-based pages out of ctx into a new document.
// Page order in the output follows the order of pages.
func extractPages(ctx *model.Context, pages []int) ([]byte, error) {
	out, err := pdfcpu.ExtractPages(ctx, pages, false)
	if err != nil {
		return nil, processingErr("failed to copy pages", err)
	}
	return writeContext(out)
}

// PageCount returns the number of pages in a document.
func PageCount(file SourceFile) (int, error) {
	if err := ValidatePDFBytes(file); err != nil {
		return 0, err
	}
	ctx, err := readContext(file)
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

// Info describes an uploaded document without transforming it.
type Info struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Pages int    `json:"pages"`
}

// DocumentInfo inspects a document and reports its size and page count.
func DocumentInfo(file SourceFile) (*Info, error) {
	pages, err := PageCount(file)
	if err != nil {
		return nil, err
	}
	return &Info{Name: file.Name, Size: len(file.Data), Pages: pages}, nil
}

// baseName strips a trailing .pdf extension for output naming.
func baseName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name = name[:len(name)-4]
	}
	if name == "" {
		return fallbackBaseName
	}
	return name
}

func displayName(file SourceFile) string {
	if file.Name == "" {
		return fallbackBaseName
	}
	return file.Name
}
