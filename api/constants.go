package api

const (
	// DefaultMaxMergeFiles caps the number of documents accepted by a single
	// merge request
	DefaultMaxMergeFiles = 20

	// DefaultMaxFileSize is the default maximum upload size (50MB)
	DefaultMaxFileSize = 50 * 1024 * 1024
)
