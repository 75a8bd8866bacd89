package pdf

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// CompressionLevel selects how aggressively a document is re-saved.
type CompressionLevel string

const (
	CompressionLow    CompressionLevel = "low"
	CompressionMedium CompressionLevel = "medium"
	CompressionHigh   CompressionLevel = "high"
)

// infoKeys are the metadata fields stripped at medium and high levels.
var infoKeys = []string{"Title", "Author", "Subject", "Keywords", "Creator", "Producer"}

// CompressionResult pairs the re-saved document with before/after sizes.
type CompressionResult struct {
	Artifact       *Artifact `json:"artifact"`
	OriginalSize   int       `json:"originalSize"`
	CompressedSize int       `json:"compressedSize"`
	Percentage     int       `json:"percentage"`
}

// Compress re-saves the document with level-dependent write options and, at
// medium and high levels, strips the info dictionary. This is a pass-through
// over the document model's optimizer; it does not re-encode page content.
func Compress(file SourceFile, level CompressionLevel) (*CompressionResult, error) {
	switch level {
	case "":
		level = CompressionMedium
	case CompressionLow, CompressionMedium, CompressionHigh:
	default:
		return nil, validationErr("unknown compression level %q, expected low, medium or high", level)
	}

	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = level != CompressionLow
	conf.WriteXRefStream = level == CompressionHigh

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(file.Data), conf)
	if err != nil {
		return nil, processingErr(fmt.Sprintf("failed to decode %q", displayName(file)), err)
	}

	if level != CompressionLow {
		stripInfo(ctx)
	}

	data, err := writeContext(ctx)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_compressed.pdf", baseName(file.Name))
	return &CompressionResult{
		Artifact:       newPDFArtifact(name, data, ctx.PageCount),
		OriginalSize:   len(file.Data),
		CompressedSize: len(data),
		Percentage:     CompressionPercentage(len(file.Data), len(data)),
	}, nil
}

// stripInfo removes descriptive metadata from the document info dictionary.
// The writer still stamps its own producer on output.
func stripInfo(ctx *model.Context) {
	if ctx.Info == nil {
		return
	}
	d, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil || d == nil {
		return
	}
	for _, key := range infoKeys {
		d.Delete(key)
	}
}

// CompressionPercentage reports the saved size as a whole percentage,
// clamped to zero when the output grew. Small or already-optimized files can
// legitimately come out larger than the input.
func CompressionPercentage(originalSize, compressedSize int) int {
	if originalSize <= 0 {
		return 0
	}
	pct := int(math.Round(float64(originalSize-compressedSize) / float64(originalSize) * 100))
	if pct < 0 {
		return 0
	}
	return pct
}
