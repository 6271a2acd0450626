package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nEngineer"), 0o644))

	text, err := ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer", text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText("/tmp/resume.xyz")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_MissingTextFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := ExtractText(path)

	assert.Error(t, err)
}

func TestDocxContentToText(t *testing.T) {
	content := `<w:document><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Engineer &amp; Researcher</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>First line</w:t><w:br/><w:t>Second line</w:t></w:r></w:p></w:document>`

	text := docxContentToText(content)

	assert.Equal(t, "Jane Doe\nEngineer & Researcher\nFirst line\nSecond line", text)
}

func TestDocxContentToText_EmptyParagraphsDropped(t *testing.T) {
	content := `<w:p></w:p><w:p><w:t>Only content</w:t></w:p><w:p><w:t>   </w:t></w:p>`

	assert.Equal(t, "Only content", docxContentToText(content))
}
