package lesson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() Draft {
	return Draft{
		Subject:     "Biología",
		Topic:       "La Célula",
		Duration:    "90 min",
		Methodology: "pbl",
	}
}

func TestValidate_Complete(t *testing.T) {
	req, err := Validate(completeDraft())
	require.NoError(t, err)

	assert.Equal(t, "Biología", req.Subject)
	assert.Equal(t, "La Célula", req.Topic)
	assert.Equal(t, "90 min", req.Duration)
	assert.Equal(t, "pbl", req.Methodology)
	assert.Equal(t, LevelSecondary, req.Level, "level defaults to Secundaria")
}

func TestValidate_KeepsExplicitLevelAndTrims(t *testing.T) {
	d := completeDraft()
	d.Subject = "  Física  "
	d.Level = LevelUniversity
	d.Context = "  grupo de 30 estudiantes "

	req, err := Validate(d)
	require.NoError(t, err)
	assert.Equal(t, "Física", req.Subject)
	assert.Equal(t, LevelUniversity, req.Level)
	assert.Equal(t, "grupo de 30 estudiantes", req.Context)
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		missing []string
	}{
		{"no subject", func(d *Draft) { d.Subject = "" }, []string{FieldSubject}},
		{"no topic", func(d *Draft) { d.Topic = "" }, []string{FieldTopic}},
		{"no duration", func(d *Draft) { d.Duration = "" }, []string{FieldDuration}},
		{"no methodology", func(d *Draft) { d.Methodology = "" }, []string{FieldMethodology}},
		{"whitespace only", func(d *Draft) { d.Topic = "   \t" }, []string{FieldTopic}},
		{
			"everything empty",
			func(d *Draft) { *d = Draft{} },
			[]string{FieldSubject, FieldTopic, FieldDuration, FieldMethodology},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			tt.mutate(&d)

			_, err := Validate(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIncompleteRequest))

			var incomplete *IncompleteRequestError
			require.True(t, errors.As(err, &incomplete))
			assert.Equal(t, tt.missing, incomplete.Missing)
			for _, f := range tt.missing {
				assert.True(t, incomplete.Has(f))
			}
		})
	}
}

func TestValidate_Level(t *testing.T) {
	tests := []struct {
		name string
		in   Level
		want Level
	}{
		{"unset defaults", "", DefaultLevel},
		{"label", LevelPrimary, LevelPrimary},
		{"english key", "secondary", LevelSecondary},
		{"mixed case key", "  University ", LevelUniversity},
		{"lowercase label", "posgrado", LevelPostgraduate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			d.Level = tt.in

			req, err := Validate(d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Level)
		})
	}
}

func TestValidate_UnknownLevel(t *testing.T) {
	d := completeDraft()
	d.Level = "banana"

	req, err := Validate(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLevel))
	assert.False(t, errors.Is(err, ErrIncompleteRequest))
	assert.Equal(t, Request{}, req)

	var invalid *InvalidLevelError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "banana", invalid.Value)
}

func TestValidate_MissingFieldsReportedBeforeLevel(t *testing.T) {
	d := completeDraft()
	d.Subject = ""
	d.Level = "banana"

	_, err := Validate(d)
	assert.True(t, errors.Is(err, ErrIncompleteRequest))
}

func TestValidate_ContextIsOptional(t *testing.T) {
	d := completeDraft()
	d.Context = ""
	_, err := Validate(d)
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"", LevelSecondary, false},
		{"Primaria", LevelPrimary, false},
		{"posgrado", LevelPostgraduate, false},
		{"university", LevelUniversity, false},
		{"SECONDARY", LevelSecondary, false},
		{"kindergarten", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseLevel(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseLevel(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.in)
	}
}

func TestRequestDraftRoundTrip(t *testing.T) {
	req, err := Validate(completeDraft())
	require.NoError(t, err)

	again, err := Validate(req.Draft())
	require.NoError(t, err)
	assert.Equal(t, req, again)
}
