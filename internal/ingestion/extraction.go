package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphEndRe = regexp.MustCompile(`</w:p>|<w:br[^>]*>`)
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// ExtractText pulls the plain text out of a résumé file, dispatching on the
// file extension. Legacy .doc files are fed through the DOCX reader, which
// handles the common case of a renamed .docx.
func ExtractText(path string) (string, error) {
	switch ext := FileExtension(path); ext {
	case "pdf":
		return extractPDFText(path)
	case "docx", "doc":
		return extractDocxText(path)
	case "txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
}

func extractPDFText(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}

func extractDocxText(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer func() { _ = r.Close() }()

	return docxContentToText(r.Editable().GetContent()), nil
}

// docxContentToText flattens WordprocessingML into plain text: paragraph and
// line-break boundaries become newlines, remaining markup is stripped, and
// XML entities are decoded.
func docxContentToText(content string) string {
	content = paragraphEndRe.ReplaceAllString(content, "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
