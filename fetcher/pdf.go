package fetcher

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"summary-share/apperrors"
)

// PDF extracts text from page-structured PDF documents.
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

// CheckExtension rejects anything that is not a .pdf before parsing is
// attempted.
func (p *PDF) CheckExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return apperrors.ErrUnsupportedType.WithMessage("unsupported file type: %s", ext)
	}
	return nil
}

// ExtractText extracts text page by page and concatenates it in page order.
// Pages without extractable text contribute nothing. A byte stream that
// cannot be parsed as PDF yields a file format error.
func (p *PDF) ExtractText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperrors.ErrFileFormat.WithCause(fmt.Errorf("pdf parse panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.ErrFileFormat.WithCause(err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", apperrors.ErrFileFormat.WithCause(err)
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String()), nil
}
