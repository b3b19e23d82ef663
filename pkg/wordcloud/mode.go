package wordcloud

import (
	"strings"

	"github.com/matzehuels/chartcore/pkg/errors"
)

// Mode selects the placement strategy.
type Mode int

const (
	Spiral Mode = iota
	Random
	Circular
	Grid
)

var modeNames = [...]string{
	Spiral:   "spiral",
	Random:   "random",
	Circular: "circular",
	Grid:     "grid",
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode parses a mode name (case-insensitive). The empty string selects
// Spiral.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Spiral, nil
	}
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown word cloud mode %q (want spiral, random, circular or grid)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) valid() bool {
	return m >= 0 && int(m) < len(modeNames)
}
