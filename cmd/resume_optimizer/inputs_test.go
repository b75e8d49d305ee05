package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadResume_TextFile(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "Experienced Go engineer.\n")

	doc, err := loadResume(path)

	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Experienced Go engineer.", doc.Content)
	assert.Equal(t, types.FormatText, doc.Format)
	assert.Equal(t, 1, doc.Version)
}

func TestLoadResume_MarkdownFormat(t *testing.T) {
	path := writeTempFile(t, "resume.md", "# Resume\nGo engineer.")

	doc, err := loadResume(path)

	require.NoError(t, err)
	assert.Equal(t, types.FormatMarkdown, doc.Format)
}

func TestLoadResume_EmptyFileFails(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "   \n")

	_, err := loadResume(path)

	assert.Error(t, err)
}

func TestLoadJobPosting_FromFile(t *testing.T) {
	path := writeTempFile(t, "job.txt", "We need a Go engineer.")

	payload, err := loadJobPosting(context.Background(), path, "", config.Default(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, payload.JobID)
	assert.Equal(t, "We need a Go engineer.", payload.Content)
}

func TestLoadJobPosting_SourceFlagsAreExclusive(t *testing.T) {
	_, err := loadJobPosting(context.Background(), "", "", config.Default(), nil)
	assert.Error(t, err)

	_, err = loadJobPosting(context.Background(), "job.txt", "https://example.com", config.Default(), nil)
	assert.Error(t, err)
}
