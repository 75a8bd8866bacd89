package pdf

const (
	// DefaultRenderScale oversamples rendered pages for quality (2x)
	DefaultRenderScale = 2.0

	// DefaultJPEGQuality is used when the caller does not supply a quality
	DefaultJPEGQuality = 0.92

	// baseDPI is the PDF user-space resolution; render DPI = scale * baseDPI
	baseDPI = 72.0

	// fallbackBaseName is used when a source filename is empty after sanitization
	fallbackBaseName = "document"
)
