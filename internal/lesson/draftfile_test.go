package lesson

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadDraft_JSON(t *testing.T) {
	p := writeFile(t, "req.json", `{
		"subject": "Biología",
		"topic": "La Célula",
		"level": "university",
		"duration": "90 min",
		"methodology": "pbl"
	}`)

	d, err := LoadDraft(p)
	require.NoError(t, err)
	assert.Equal(t, "Biología", d.Subject)
	assert.Equal(t, LevelUniversity, d.Level)
	assert.Equal(t, "pbl", d.Methodology)
}

func TestLoadDraft_YAML(t *testing.T) {
	p := writeFile(t, "req.yaml", `
subject: Matemáticas
topic: Fracciones
level: Primaria
duration: 45 min
context: Grupo con dos estudiantes con TDAH
methodology: gamification
`)

	d, err := LoadDraft(p)
	require.NoError(t, err)
	assert.Equal(t, "Fracciones", d.Topic)
	assert.Equal(t, LevelPrimary, d.Level)
	assert.Equal(t, "Grupo con dos estudiantes con TDAH", d.Context)
}

func TestLoadDraft_PartialFileStillLoads(t *testing.T) {
	p := writeFile(t, "partial.json", `{"subject": "Química"}`)

	d, err := LoadDraft(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, d.Level)

	_, err = Validate(d)
	assert.True(t, errors.Is(err, ErrIncompleteRequest))
}

func TestLoadDraft_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown key", "a.json", `{"subject": "x", "grade": 5}`},
		{"wrong type", "b.json", `{"duration": 90}`},
		{"not an object", "c.json", `["subject"]`},
		{"bad json", "d.json", `{"subject": `},
		{"bad yaml", "e.yaml", "subject: [unclosed"},
		{"unknown level", "f.json", `{"level": "kinder"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDraft(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			var fileErr *DraftFileError
			assert.True(t, errors.As(err, &fileErr), "expected DraftFileError, got %T", err)
		})
	}
}

func TestLoadDraft_MissingFile(t *testing.T) {
	_, err := LoadDraft(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
