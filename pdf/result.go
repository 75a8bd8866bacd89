package pdf

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrorKind distinguishes bad caller input from failures inside the
// document or rendering model.
type ErrorKind string

const (
	// ErrValidation means the input was rejected before any document
	// model call was made.
	ErrValidation ErrorKind = "validation"

	// ErrProcessing means the underlying document or rendering model
	// failed during decode, copy, render or encode.
	ErrProcessing ErrorKind = "processing"
)

// Error is the failure value returned by every operation in this package.
// Details carries the underlying library message when one exists.
type Error struct {
	Kind    ErrorKind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// KindOf extracts the error kind so callers can branch without string
// matching. Returns false for errors not produced by this package.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func validationErr(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func processingErr(msg string, cause error) *Error {
	e := &Error{Kind: ErrProcessing, Message: msg}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// SourceFile is an uploaded document held fully in memory. Operations treat
// it as read-only and always produce a new output buffer.
type SourceFile struct {
	Name string
	Data []byte
}

// Artifact is the byte output of an operation plus descriptive metadata.
// Ownership transfers to the caller once returned.
type Artifact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
	Pages       int    `json:"pages"`
}

// Size returns the artifact payload size in bytes.
func (a *Artifact) Size() int {
	return len(a.Data)
}

func newPDFArtifact(name string, data []byte, pages int) *Artifact {
	return &Artifact{
		ID:          uuid.NewString(),
		Name:        name,
		ContentType: "application/pdf",
		Data:        data,
		Pages:       pages,
	}
}

func newImageArtifact(name, contentType string, data []byte) *Artifact {
	return &Artifact{
		ID:          uuid.NewString(),
		Name:        name,
		ContentType: contentType,
		Data:        data,
		Pages:       1,
	}
}
