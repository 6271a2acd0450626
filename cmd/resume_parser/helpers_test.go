package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestLoadResumeRecord_ParsedJSON(t *testing.T) {
	record := types.ResumeRecord{
		ContactInfo: types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Experiences: []types.ExperienceEntry{{Title: "Engineer", Company: "ABC Inc"}},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := loadResumeRecord(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.ContactInfo.Name)
	require.Len(t, loaded.Experiences, 1)
	assert.Equal(t, "Engineer", loaded.Experiences[0].Title)
}

func TestLoadResumeRecord_TextFile(t *testing.T) {
	path := writeTempResume(t, "resume.txt", sampleResumeText)

	loaded, err := loadResumeRecord(path)

	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", loaded.ContactInfo.Email)
}

func TestLoadResumeRecord_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := loadResumeRecord(path)

	assert.Error(t, err)
}

func TestLoadResumeRecord_Missing(t *testing.T) {
	_, err := loadResumeRecord(filepath.Join(t.TempDir(), "absent.txt"))

	assert.Error(t, err)
}

func TestReadJobDescription_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior Go engineer wanted."), 0o644))

	text, err := readJobDescription(context.Background(), path, "")

	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer wanted.", text)
}

func TestReadJobDescription_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Senior Go engineer wanted.</main></body></html>`))
	}))
	defer srv.Close()

	text, err := readJobDescription(context.Background(), "", srv.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go engineer wanted.")
}

func TestReadJobDescription_BothSourcesRejected(t *testing.T) {
	_, err := readJobDescription(context.Background(), "job.txt", "https://example.com/job")

	assert.ErrorContains(t, err, "cannot use --job with --job-url")
}

func TestReadJobDescription_NoSourceRejected(t *testing.T) {
	_, err := readJobDescription(context.Background(), "", "")

	assert.ErrorContains(t, err, "must provide either --job or --job-url")
}
