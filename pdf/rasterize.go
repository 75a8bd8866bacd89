package pdf

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"
)

// ImageFormat selects the raster output encoding.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
)

// Selection is an axis-aligned crop rectangle in rendered-pixel space at the
// render scale used for the page.
type Selection struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Validate checks the selection against the rendered (scaled) page bounds.
func (s Selection) Validate(renderedWidth, renderedHeight int) error {
	if s.Width <= 0 || s.Height <= 0 {
		return validationErr("selection dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.X < 0 || s.Y < 0 {
		return validationErr("selection origin must be non-negative, got (%d, %d)", s.X, s.Y)
	}
	if s.X+s.Width > renderedWidth || s.Y+s.Height > renderedHeight {
		return validationErr("selection (%d,%d %dx%d) exceeds rendered page bounds %dx%d",
			s.X, s.Y, s.Width, s.Height, renderedWidth, renderedHeight)
	}
	return nil
}

// RenderPage rasterizes a single 1-based page at the given scale. A scale of
// zero or less falls back to DefaultRenderScale.
func RenderPage(file SourceFile, pageNumber int, scale float64) (image.Image, error) {
	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = DefaultRenderScale
	}

	doc, err := fitz.NewFromMemory(file.Data)
	if err != nil {
		return nil, processingErr(fmt.Sprintf("failed to open %q for rendering", displayName(file)), err)
	}
	defer doc.Close()

	total := doc.NumPage()
	if pageNumber < 1 || pageNumber > total {
		return nil, validationErr("page %d not found: document has %d pages", pageNumber, total)
	}

	img, err := doc.ImageDPI(pageNumber-1, baseDPI*scale)
	if err != nil {
		return nil, processingErr(fmt.Sprintf("failed to render page %d", pageNumber), err)
	}
	return img, nil
}

// ConvertToImages renders the pages named by spec ("all" or a range list) to
// one image artifact each, in ascending page order. Rendering stops at the
// first failing page.
func ConvertToImages(file SourceFile, spec string, format ImageFormat, quality, scale float64) ([]*Artifact, error) {
	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = DefaultRenderScale
	}

	doc, err := fitz.NewFromMemory(file.Data)
	if err != nil {
		return nil, processingErr(fmt.Sprintf("failed to open %q for rendering", displayName(file)), err)
	}
	defer doc.Close()

	if spec == "" {
		spec = "all"
	}
	pages, err := ParsePageRanges(spec, doc.NumPage())
	if err != nil {
		return nil, err
	}

	base := baseName(file.Name)
	artifacts := make([]*Artifact, 0, len(pages))
	for _, page := range pages {
		img, err := doc.ImageDPI(page-1, baseDPI*scale)
		if err != nil {
			return nil, processingErr(fmt.Sprintf("failed to render page %d", page), err)
		}
		data, contentType, err := encodeImage(img, format, quality)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%s_page_%d.%s", base, page, imageExt(format))
		artifacts = append(artifacts, newImageArtifact(name, contentType, data))
	}

	return artifacts, nil
}

// SelectArea renders a page, crops it to the given rectangle and encodes the
// result. The selection is validated against the rendered (scaled) page
// bounds, not the unscaled page size.
func SelectArea(file SourceFile, pageNumber int, sel Selection, format ImageFormat, quality, scale float64) (*Artifact, error) {
	if sel.Width <= 0 || sel.Height <= 0 {
		return nil, validationErr("selection dimensions must be positive, got %dx%d", sel.Width, sel.Height)
	}

	img, err := RenderPage(file, pageNumber, scale)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if err := sel.Validate(bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}

	cropped := imaging.Crop(img, image.Rect(sel.X, sel.Y, sel.X+sel.Width, sel.Y+sel.Height))
	data, contentType, err := encodeImage(cropped, format, quality)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_page_%d_selection.%s", baseName(file.Name), pageNumber, imageExt(format))
	return newImageArtifact(name, contentType, data), nil
}

// encodeImage serializes img in the requested format. A quality of zero
// selects DefaultJPEGQuality; otherwise it must lie in (0, 1].
func encodeImage(img image.Image, format ImageFormat, quality float64) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJPEG, "":
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		if quality < 0 || quality > 1 {
			return nil, "", validationErr("jpeg quality must be in (0, 1], got %g", quality)
		}
		q := int(math.Round(quality * 100))
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
			return nil, "", processingErr("failed to encode jpeg image", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	case FormatPNG:
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, "", processingErr("failed to encode png image", err)
		}
		return buf.Bytes(), "image/png", nil
	default:
		return nil, "", validationErr("unsupported image format %q, expected jpeg or png", format)
	}
}

func imageExt(format ImageFormat) string {
	if format == FormatPNG {
		return "png"
	}
	return "jpg"
}
