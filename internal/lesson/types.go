package lesson

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the education level a lesson is planned for. The value is the
// label shown to teachers and substituted into prompts.
type Level string

const (
	LevelPrimary      Level = "Primaria"
	LevelSecondary    Level = "Secundaria"
	LevelUniversity   Level = "Universitario"
	LevelPostgraduate Level = "Posgrado"
)

// DefaultLevel is used when a draft leaves the level unset.
const DefaultLevel = LevelSecondary

// Levels returns every level in display order.
func Levels() []Level {
	return []Level{LevelPrimary, LevelSecondary, LevelUniversity, LevelPostgraduate}
}

// levelAliases maps English keys to levels so flags and request files can
// use either form.
var levelAliases = map[string]Level{
	"primary":      LevelPrimary,
	"secondary":    LevelSecondary,
	"university":   LevelUniversity,
	"postgraduate": LevelPostgraduate,
}

// ParseLevel accepts a display label ("Secundaria") or an English key
// ("secondary"), case-insensitively. An empty string yields DefaultLevel.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLevel, nil
	}
	for _, l := range Levels() {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	if l, ok := levelAliases[strings.ToLower(s)]; ok {
		return l, nil
	}
	return "", &InvalidLevelError{Value: s}
}

// ErrInvalidLevel is matched by every *InvalidLevelError.
var ErrInvalidLevel = errors.New("invalid education level")

// InvalidLevelError reports a level that is neither a label nor an alias.
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("unknown education level %q", e.Value)
}

func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}

// Draft is a partially filled lesson request as collected by a form, flags,
// or a request file. Fields may be empty until Validate accepts it.
type Draft struct {
	Subject     string `json:"subject,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Level       Level  `json:"level,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Context     string `json:"context,omitempty"`
	Methodology string `json:"methodology,omitempty"`
}

// Request is a validated lesson request. It parameterizes every generation
// call and is not modified after validation.
type Request struct {
	Subject     string
	Topic       string
	Level       Level
	Duration    string
	Context     string // optional
	Methodology string // methodology ID, see Methodologies
}

// Draft returns the request as a draft, e.g. to prefill a form.
func (r Request) Draft() Draft {
	return Draft{
		Subject:     r.Subject,
		Topic:       r.Topic,
		Level:       r.Level,
		Duration:    r.Duration,
		Context:     r.Context,
		Methodology: r.Methodology,
	}
}
