// Package extract turns resume documents into plain text.
//
// Each format is read by a walker that hands text fragments to a Visitor in
// document order and returns once it has no more items. Extract collects the
// fragments into a single trimmed string.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrUnsupported = errors.New("unsupported file type, expected PDF or DOCX")

// Visitor receives one text fragment. Returning an error stops the walk.
type Visitor func(fragment string) error

type walkFunc func(ctx context.Context, data []byte, visit Visitor) error

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeZIP  = "application/zip"
	mimeText = "text/plain"
)

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract sniffs data and returns its text content.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	walk, err := walkerFor(data)
	if err != nil {
		return "", err
	}
	return Collect(ctx, data, walk)
}

func walkerFor(data []byte) (walkFunc, error) {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is(mimePDF):
		return walkPDF, nil
	case mt.Is(mimeDOCX), mt.Is(mimeZIP):
		return walkDOCX, nil
	case mt.Is(mimeText):
		return walkText, nil
	default:
		return nil, fmt.Errorf("%w (got %s)", ErrUnsupported, mt.String())
	}
}

// ResumeExtension sniffs an uploaded resume and returns the extension it
// is stored under. Anything but PDF, DOCX or plain text is ErrUnsupported;
// the name the client sent is never trusted.
func ResumeExtension(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is(mimePDF):
		return ".pdf", nil
	case mt.Is(mimeDOCX):
		return ".docx", nil
	case mt.Is(mimeText):
		return ".txt", nil
	default:
		return "", fmt.Errorf("%w (got %s)", ErrUnsupported, mt.String())
	}
}

// Collect runs walk and concatenates everything it emits.
func Collect(ctx context.Context, data []byte, walk walkFunc) (string, error) {
	var sb strings.Builder
	err := walk(ctx, data, func(fragment string) error {
		sb.WriteString(fragment)
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

func walkText(_ context.Context, data []byte, visit Visitor) error {
	return visit(string(data))
}
