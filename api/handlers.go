package api

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	pdfPkg "pdf_toolbox/pdf"

	"github.com/gin-gonic/gin"
)

func HandleInfo(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	info, err := pdfPkg.DocumentInfo(file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "name": info.Name, "size": info.Size, "pages": info.Pages})
}

func HandleMerge(c *gin.Context, config *Config) {
	files, ok := readUploads(c, config, "pdfs")
	if !ok {
		return
	}
	if len(files) > config.MaxMergeFiles {
		respondValidation(c, fmt.Sprintf("too many files: %d exceeds maximum of %d", len(files), config.MaxMergeFiles))
		return
	}

	artifact, err := pdfPkg.Merge(files)
	if err != nil {
		respondError(c, err)
		return
	}

	sendArtifact(c, artifact)
}

func HandleSplit(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	var artifacts []*pdfPkg.Artifact
	var err error

	mode := c.DefaultPostForm("mode", "span")
	switch mode {
	case "span":
		span, convErr := strconv.Atoi(c.PostForm("span"))
		if convErr != nil {
			respondValidation(c, "invalid span: expected a positive integer")
			return
		}
		artifacts, err = pdfPkg.SplitBySpan(file, span)
	case "ranges":
		artifacts, err = pdfPkg.SplitByRanges(file, c.PostForm("pages"))
	default:
		respondValidation(c, fmt.Sprintf("unknown split mode %q, expected span or ranges", mode))
		return
	}

	if err != nil {
		respondError(c, err)
		return
	}

	sendArtifacts(c, splitArchiveName(file.Name), artifacts)
}

func HandleExtract(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	artifact, err := pdfPkg.Extract(file, c.PostForm("pages"))
	if err != nil {
		respondError(c, err)
		return
	}

	sendArtifact(c, artifact)
}

func HandleRemovePages(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	artifact, err := pdfPkg.RemovePages(file, c.PostForm("pages"))
	if err != nil {
		respondError(c, err)
		return
	}

	sendArtifact(c, artifact)
}

func HandleReorder(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	order, err := resolveOrderParam(file, c.PostForm("order"))
	if err != nil {
		respondError(c, err)
		return
	}

	artifact, err := pdfPkg.Reorder(file, order)
	if err != nil {
		respondError(c, err)
		return
	}

	sendArtifact(c, artifact)
}

func HandleCompress(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	level := pdfPkg.CompressionLevel(c.DefaultPostForm("level", "medium"))
	result, err := pdfPkg.Compress(file, level)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("X-Original-Size", strconv.Itoa(result.OriginalSize))
	c.Header("X-Compressed-Size", strconv.Itoa(result.CompressedSize))
	c.Header("X-Compression-Percentage", strconv.Itoa(result.Percentage))
	sendArtifact(c, result.Artifact)
}

func HandleToImages(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	format := pdfPkg.ImageFormat(c.DefaultPostForm("format", "jpeg"))
	quality, err := postFormFloat(c, "quality", 0)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	scale, err := postFormFloat(c, "scale", 0)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}

	artifacts, opErr := pdfPkg.ConvertToImages(file, c.PostForm("pages"), format, quality, scale)
	if opErr != nil {
		respondError(c, opErr)
		return
	}

	if len(artifacts) == 1 {
		sendArtifact(c, artifacts[0])
		return
	}
	sendArtifacts(c, baseNameOf(file.Name)+"_images.zip", artifacts)
}

func HandleFromImages(c *gin.Context, config *Config) {
	images, ok := readUploads(c, config, "images")
	if !ok {
		return
	}

	artifact, err := pdfPkg.ImagesToPDF(images)
	if err != nil {
		respondError(c, err)
		return
	}

	sendArtifact(c, artifact)
}

func HandleAreaSelect(c *gin.Context, config *Config) {
	file, ok := readUpload(c, config, "pdf")
	if !ok {
		return
	}

	page, err := postFormInt(c, "page")
	if err != nil {
		respondValidation(c, err.Error())
		return
	}

	var sel pdfPkg.Selection
	if sel.X, err = postFormInt(c, "x"); err != nil {
		respondValidation(c, err.Error())
		return
	}
	if sel.Y, err = postFormInt(c, "y"); err != nil {
		respondValidation(c, err.Error())
		return
	}
	if sel.Width, err = postFormInt(c, "width"); err != nil {
		respondValidation(c, err.Error())
		return
	}
	if sel.Height, err = postFormInt(c, "height"); err != nil {
		respondValidation(c, err.Error())
		return
	}

	format := pdfPkg.ImageFormat(c.DefaultPostForm("format", "png"))
	quality, err := postFormFloat(c, "quality", 0)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	scale, err := postFormFloat(c, "scale", 0)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}

	artifact, opErr := pdfPkg.SelectArea(file, page, sel, format, quality, scale)
	if opErr != nil {
		respondError(c, opErr)
		return
	}

	sendArtifact(c, artifact)
}

// resolveOrderParam turns the order form value into an explicit page
// sequence. The literals "reverse" and "random" are resolved against the
// document's page count.
func resolveOrderParam(file pdfPkg.SourceFile, param string) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "reverse":
		total, err := pdfPkg.PageCount(file)
		if err != nil {
			return nil, err
		}
		return pdfPkg.ReversedPageOrder(total), nil
	case "random":
		total, err := pdfPkg.PageCount(file)
		if err != nil {
			return nil, err
		}
		return pdfPkg.ShuffledPageOrder(total), nil
	}
	return parseOrderParam(param)
}

// parseOrderParam parses a comma-separated page sequence like "3,1,2".
func parseOrderParam(param string) ([]int, error) {
	parts := strings.Split(param, ",")
	order := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		page, err := strconv.Atoi(part)
		if err != nil {
			return nil, &pdfPkg.Error{Kind: pdfPkg.ErrValidation, Message: fmt.Sprintf("invalid page number %q in order", part)}
		}
		order = append(order, page)
	}
	return order, nil
}

// readUpload reads a single multipart file field fully into memory.
func readUpload(c *gin.Context, config *Config, field string) (pdfPkg.SourceFile, bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		respondValidation(c, "no file provided in field "+strconv.Quote(field))
		return pdfPkg.SourceFile{}, false
	}
	defer file.Close()

	source, ok := readFormFile(c, config, file, header)
	return source, ok
}

// readUploads reads every file under a multipart field, preserving upload order.
func readUploads(c *gin.Context, config *Config, field string) ([]pdfPkg.SourceFile, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		respondValidation(c, "invalid multipart form")
		return nil, false
	}

	headers := form.File[field]
	files := make([]pdfPkg.SourceFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			respondValidation(c, fmt.Sprintf("failed to open upload %q", header.Filename))
			return nil, false
		}
		source, ok := readFormFile(c, config, f, header)
		f.Close()
		if !ok {
			return nil, false
		}
		files = append(files, source)
	}
	return files, true
}

func readFormFile(c *gin.Context, config *Config, file multipart.File, header *multipart.FileHeader) (pdfPkg.SourceFile, bool) {
	if header.Size > config.MaxFileSize {
		respondValidation(c, fmt.Sprintf("file %q size %d exceeds maximum allowed %d bytes",
			header.Filename, header.Size, config.MaxFileSize))
		return pdfPkg.SourceFile{}, false
	}

	data, err := io.ReadAll(io.LimitReader(file, config.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read uploaded file"})
		return pdfPkg.SourceFile{}, false
	}
	if int64(len(data)) > config.MaxFileSize {
		respondValidation(c, fmt.Sprintf("file %q exceeds maximum allowed %d bytes", header.Filename, config.MaxFileSize))
		return pdfPkg.SourceFile{}, false
	}

	return pdfPkg.SourceFile{Name: sanitizeFilename(header.Filename), Data: data}, true
}

// respondError maps engine error kinds onto HTTP statuses; validation
// failures are the client's fault, everything else is a processing failure.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if kind, ok := pdfPkg.KindOf(err); ok && kind == pdfPkg.ErrValidation {
		status = http.StatusBadRequest
	}

	var opErr *pdfPkg.Error
	if errors.As(err, &opErr) && opErr.Details != "" {
		c.JSON(status, gin.H{"success": false, "error": opErr.Message, "details": opErr.Details})
		return
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func respondValidation(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// sendArtifact returns a single artifact as a file download.
func sendArtifact(c *gin.Context, artifact *pdfPkg.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Name))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// sendArtifacts packages multiple artifacts into a single zip download.
func sendArtifacts(c *gin.Context, archiveName string, artifacts []*pdfPkg.Artifact) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, artifact := range artifacts {
		entry, err := zw.Create(artifact.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build archive"})
			return
		}
		if _, err := entry.Write(artifact.Data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build archive"})
			return
		}
	}
	if err := zw.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build archive"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archiveName))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

func splitArchiveName(filename string) string {
	return baseNameOf(filename) + "_split.zip"
}

func baseNameOf(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	if name == "" {
		return "document"
	}
	return name
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	// Remove directory separators and path traversal attempts
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")

	// Get just the base filename to prevent path issues
	filename = filepath.Base(filename)
	filename = strings.TrimSpace(filename)

	if filename == "" || filename == "." {
		filename = "document.pdf"
	}

	return filename
}

// postFormInt parses a required integer form field.
func postFormInt(c *gin.Context, key string) (int, error) {
	value := c.PostForm(key)
	if value == "" {
		return 0, fmt.Errorf("missing required field %q", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for field %q: expected an integer", value, key)
	}
	return n, nil
}

// postFormFloat parses an optional float form field, falling back to def.
func postFormFloat(c *gin.Context, key string, def float64) (float64, error) {
	value := c.PostForm(key)
	if value == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for field %q: expected a number", value, key)
	}
	return f, nil
}
