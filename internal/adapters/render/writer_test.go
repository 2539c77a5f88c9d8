package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/3pl/internal/adapters/render"
	"go.trai.ch/3pl/internal/core/domain"
)

func writeLicense(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "LICENSE")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWriter_Render(t *testing.T) {
	withNewline := writeLicense(t, "MIT License text\n")
	withoutNewline := writeLicense(t, "Apache License text")

	sections := []domain.Section{
		{
			Header: "Summary",
			Lines: []string{
				"",
				"foo",
				"https://example.com/foo",
				"MIT",
				"",
				"bar v2.0.0",
				"Apache-2.0",
			},
		},
		{Header: "foo LICENSE", File: withNewline},
		{Header: "bar v2.0.0 LICENSE", File: withoutNewline},
	}

	var buf bytes.Buffer
	require.NoError(t, render.NewWriter(&buf).Render(sections))

	g := goldie.New(t)
	g.Assert(t, "report", buf.Bytes())
}

func TestWriter_Render_contentWithoutTrailingNewlineGetsOne(t *testing.T) {
	path := writeLicense(t, "no trailing newline")

	var buf bytes.Buffer
	require.NoError(t, render.NewWriter(&buf).Render([]domain.Section{
		{Header: "pkg LICENSE", File: path},
	}))

	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("no trailing newline\n")))
}

func TestWriter_Render_missingFileIsFatal(t *testing.T) {
	err := render.NewWriter(&bytes.Buffer{}).Render([]domain.Section{
		{Header: "pkg LICENSE", File: filepath.Join(t.TempDir(), "gone")},
	})
	require.ErrorIs(t, err, domain.ErrLicenseFileRead)
}

func TestWriter_Render_empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewWriter(&buf).Render(nil))
	assert.Empty(t, buf.String())
}
