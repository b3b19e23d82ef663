package wordcloud

import "github.com/mattn/go-runewidth"

// DefaultGlyphAspect is the average glyph width as a fraction of font size.
const DefaultGlyphAspect = 0.6

// Measurer returns the bounding box size of text rendered at fontSize.
type Measurer interface {
	Measure(text string, fontSize float64) (width, height float64)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, fontSize float64) (width, height float64)

// Measure calls f.
func (f MeasurerFunc) Measure(text string, fontSize float64) (float64, float64) {
	return f(text, fontSize)
}

// RuneWidthMeasurer estimates text boxes from display cell width.
type RuneWidthMeasurer struct {
	// GlyphAspect is the width of one display cell relative to the font
	// size. Zero selects DefaultGlyphAspect.
	GlyphAspect float64
}

// Measure returns (cells * fontSize * aspect, fontSize).
func (m RuneWidthMeasurer) Measure(text string, fontSize float64) (float64, float64) {
	aspect := m.GlyphAspect
	if aspect <= 0 {
		aspect = DefaultGlyphAspect
	}
	return float64(runewidth.StringWidth(text)) * fontSize * aspect, fontSize
}
