// Package textextract turns uploaded documents into prompt text.
package textextract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const MaxPDFPages = 200

var (
	ErrUnsupported = errors.New("unsupported document type")
	ErrEmpty       = errors.New("document contains no text")
)

// FromFile extracts text based on the file extension: .txt and .md are read
// as UTF-8, .pdf goes through the PDF text layer. The text is returned whole;
// callers bound the upload size instead.
func FromFile(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		text, err = plainText(data)
	case ".pdf":
		text, err = PDFText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(filename))
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

func plainText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", errors.New("text document is not valid UTF-8")
	}
	return string(data), nil
}

// PDFText returns the plain text of every page, pages separated by a blank
// line. Pages whose text cannot be read are skipped.
func PDFText(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("invalid PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
	}
	total := reader.NumPage()
	if total == 0 {
		return "", ErrEmpty
	}
	if total > MaxPDFPages {
		return "", fmt.Errorf("PDF has too many pages (%d), max allowed is %d", total, MaxPDFPages)
	}

	var b strings.Builder
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pt, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pt = strings.TrimSpace(pt)
		if pt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(pt)
	}
	return b.String(), nil
}
