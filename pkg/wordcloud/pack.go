package wordcloud

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/stats"
)

// Packing defaults.
const (
	DefaultMinFontSize = 10.0
	DefaultMaxFontSize = 48.0
	DefaultMaxAttempts = 500
)

const (
	spiralStep   = 0.1 // radians between spiral candidates
	spiralGrowth = 2.0 // radius gained per radian
	defaultSeed  = 0x5eed
)

// Word is one weighted label.
type Word struct {
	Text   string  `json:"text" toml:"text"`
	Weight float64 `json:"weight" toml:"weight"`
}

// Options configures [Pack]. Zero font sizes and attempts select the
// defaults. A zero Seed selects a fixed default seed, so packing is always
// deterministic.
type Options struct {
	Width       float64  `json:"width" toml:"width"`
	Height      float64  `json:"height" toml:"height"`
	Mode        Mode     `json:"mode" toml:"mode"`
	Padding     float64  `json:"padding,omitempty" toml:"padding,omitempty"`
	MinFontSize float64  `json:"min_font_size,omitempty" toml:"min_font_size,omitempty"`
	MaxFontSize float64  `json:"max_font_size,omitempty" toml:"max_font_size,omitempty"`
	MaxAttempts int      `json:"max_attempts,omitempty" toml:"max_attempts,omitempty"`
	Seed        uint64   `json:"seed,omitempty" toml:"seed,omitempty"`
	Measurer    Measurer `json:"-" toml:"-"`
}

func (o Options) withDefaults() Options {
	if o.MinFontSize <= 0 {
		o.MinFontSize = DefaultMinFontSize
	}
	if o.MaxFontSize <= 0 {
		o.MaxFontSize = DefaultMaxFontSize
	}
	if o.MaxFontSize < o.MinFontSize {
		o.MinFontSize, o.MaxFontSize = o.MaxFontSize, o.MinFontSize
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed
	}
	if o.Measurer == nil {
		o.Measurer = RuneWidthMeasurer{}
	}
	return o
}

// Placement is the position of one word.
type Placement struct {
	Text     string    `json:"text"`
	Weight   float64   `json:"weight"`
	FontSize float64   `json:"font_size"`
	Box      geom.Rect `json:"box"`
	// Fallback marks a word that found no free spot and was centered.
	Fallback bool `json:"fallback,omitempty"`
}

// Pack places words on an opts.Width x opts.Height canvas.
//
// It returns an error for an invalid canvas, an unknown mode or a
// non-finite weight. An empty word list yields an empty result.
func Pack(words []Word, opts Options) ([]Placement, error) {
	if err := errors.ValidateCanvas(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	if !opts.Mode.valid() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown word cloud mode %d", int(opts.Mode))
	}
	for i, w := range words {
		if err := errors.ValidateFinite(fmt.Sprintf("word %d (%q) weight", i, w.Text), w.Weight); err != nil {
			return nil, err
		}
	}
	opts = opts.withDefaults()

	weights := make([]float64, len(words))
	for i, w := range words {
		weights[i] = w.Weight
	}
	sizes := stats.NormalizeToRange(weights, opts.MinFontSize, opts.MaxFontSize)

	order := make([]int, len(words))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(words[b].Weight, words[a].Weight)
	})

	p := newPacker(opts)
	boxes := make([][2]float64, len(order))
	for k, i := range order {
		w, h := opts.Measurer.Measure(words[i].Text, sizes[i])
		boxes[k] = [2]float64{w, h}
	}
	if opts.Mode == Grid {
		p.prepareGrid(boxes)
	}

	out := make([]Placement, 0, len(words))
	for k, i := range order {
		box, ok := p.place(k, boxes[k][0], boxes[k][1], sizes[i])
		if !ok {
			box = geom.RectAt(p.canvas.Center(), boxes[k][0], boxes[k][1])
		}
		p.occupy(box)
		out = append(out, Placement{
			Text:     words[i].Text,
			Weight:   words[i].Weight,
			FontSize: sizes[i],
			Box:      box,
			Fallback: !ok,
		})
	}
	return out, nil
}

type packer struct {
	opts   Options
	canvas geom.Rect
	placed []geom.Rect // padded boxes
	rng    *rand.Rand

	cellW, cellH float64
	cols, rows   int
}

func newPacker(opts Options) *packer {
	return &packer{
		opts:   opts,
		canvas: geom.Rect{W: opts.Width, H: opts.Height},
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
}

func (p *packer) occupy(box geom.Rect) {
	p.placed = append(p.placed, box.Expand(p.opts.Padding))
}

// fits reports whether box, padded, lies inside the canvas and clear of
// every placed box.
func (p *packer) fits(box geom.Rect) bool {
	padded := box.Expand(p.opts.Padding)
	if !p.canvas.Contains(padded) {
		return false
	}
	for _, q := range p.placed {
		if padded.Overlaps(q) {
			return false
		}
	}
	return true
}

func (p *packer) place(k int, w, h, fontSize float64) (geom.Rect, bool) {
	switch p.opts.Mode {
	case Random:
		return p.placeRandom(w, h)
	case Circular:
		return p.placeCircular(w, h, fontSize)
	case Grid:
		return p.placeGrid(k, w, h)
	default:
		return p.placeSpiral(w, h)
	}
}

func (p *packer) placeSpiral(w, h float64) (geom.Rect, bool) {
	center := p.canvas.Center()
	for attempt := 0; attempt < p.spiralAttempts(); attempt++ {
		theta := float64(attempt) * spiralStep
		box := geom.RectAt(geom.Polar(center, spiralGrowth*theta, theta), w, h)
		if p.fits(box) {
			return box, true
		}
	}
	return geom.Rect{}, false
}

// spiralAttempts is MaxAttempts, raised so the spiral always reaches the
// canvas half-diagonal. Past that radius no box can fit.
func (p *packer) spiralAttempts() int {
	reach := math.Hypot(p.canvas.W, p.canvas.H) / 2
	return max(p.opts.MaxAttempts, int(math.Ceil(reach/(spiralGrowth*spiralStep)))+1)
}

func (p *packer) placeRandom(w, h float64) (geom.Rect, bool) {
	pad := p.opts.Padding
	spanX := p.canvas.W - w - 2*pad
	spanY := p.canvas.H - h - 2*pad
	if spanX < 0 || spanY < 0 {
		return geom.Rect{}, false
	}
	for attempt := 0; attempt < p.opts.MaxAttempts; attempt++ {
		box := geom.Rect{
			X: pad + p.rng.Float64()*spanX,
			Y: pad + p.rng.Float64()*spanY,
			W: w,
			H: h,
		}
		if p.fits(box) {
			return box, true
		}
	}
	return geom.Rect{}, false
}

func (p *packer) placeCircular(w, h, fontSize float64) (geom.Rect, bool) {
	center := p.canvas.Center()
	spacing := math.Max(fontSize, 1)
	maxRadius := math.Hypot(p.canvas.W, p.canvas.H) / 2

	attempts := 0
	for ring := 0; attempts < p.opts.MaxAttempts; ring++ {
		r := float64(ring) * spacing
		if r > maxRadius {
			break
		}
		slots := max(1, int(2*math.Pi*r/spacing))
		for s := 0; s < slots && attempts < p.opts.MaxAttempts; s++ {
			attempts++
			angle := 2 * math.Pi * float64(s) / float64(slots)
			box := geom.RectAt(geom.Polar(center, r, angle), w, h)
			if p.fits(box) {
				return box, true
			}
		}
	}
	return geom.Rect{}, false
}

// prepareGrid sizes grid cells from the largest box.
func (p *packer) prepareGrid(boxes [][2]float64) {
	for _, b := range boxes {
		p.cellW = max(p.cellW, b[0]+2*p.opts.Padding)
		p.cellH = max(p.cellH, b[1]+2*p.opts.Padding)
	}
	if p.cellW > 0 && p.cellH > 0 {
		p.cols = int(p.canvas.W / p.cellW)
		p.rows = int(p.canvas.H / p.cellH)
	}
}

func (p *packer) placeGrid(k int, w, h float64) (geom.Rect, bool) {
	if k >= p.cols*p.rows {
		return geom.Rect{}, false
	}
	cell := geom.Rect{
		X: float64(k%p.cols) * p.cellW,
		Y: float64(k/p.cols) * p.cellH,
		W: p.cellW,
		H: p.cellH,
	}
	return geom.RectAt(cell.Center(), w, h), true
}
