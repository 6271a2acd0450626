package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html><head><script>var x = 1;</script></head><body>
<nav>Home | Jobs</nav>
<div class="job-description">
<h1>Backend Engineer</h1>
<p>Build Go services.</p>
</div>
<footer>Copyright</footer>
</body></html>`

func TestJobPosting_ExtractsDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	result, err := JobPosting(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Contains(t, result.Text, "Backend Engineer")
	assert.Contains(t, result.Text, "Build Go services.")
	assert.NotContains(t, result.Text, "Home | Jobs")
	assert.NotContains(t, result.Text, "Copyright")
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	_, err := URL(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestURL_InvalidURL(t *testing.T) {
	tests := []string{"", "not-a-url", "://missing-scheme"}

	for _, input := range tests {
		_, err := URL(context.Background(), input, nil)
		require.Error(t, err)

		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, input, fetchErr.URL)
	}
}

func TestURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := ExtractText("<html><body><p>Plain page</p></body></html>", jobPostingSelectors())

	require.NoError(t, err)
	assert.Equal(t, "Plain page", text)
}

func TestExtractText_FirstSelectorWins(t *testing.T) {
	html := `<body><div class="job-description">Target</div><main>Other</main></body>`

	text, err := ExtractText(html, jobPostingSelectors())

	require.NoError(t, err)
	assert.Equal(t, "Target", text)
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", cleanWhitespace("  a  \n\n\n   b\n"))
}
