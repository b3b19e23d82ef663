package cache

// Keyer derives cache keys from a dataset hash and the options that shape
// the result. Two calls with equal arguments return equal keys.
type Keyer interface {
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string
	StatsKey(datasetHash string, opts StatsKeyOpts) string
}

// LayoutKeyOpts holds the options that change a computed layout.
type LayoutKeyOpts struct {
	Kind   string  `json:"kind"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Params carries kind-specific options. It is JSON-encoded into the key,
	// so it must be a value that marshals deterministically.
	Params any `json:"params,omitempty"`
}

// StatsKeyOpts holds the options that change a statistics summary.
type StatsKeyOpts struct {
	Kind           string  `json:"kind"`
	ModePrecision  int     `json:"mode_precision"`
	DensitySamples int     `json:"density_samples"`
	Bandwidth      float64 `json:"bandwidth"`
	Bins           int     `json:"bins"`
	TickCount      int     `json:"tick_count"`
}

// DefaultKeyer produces keys of the form "<namespace>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns the key for a layout of the dataset with the given hash.
func (DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// StatsKey returns the key for a statistics summary of the dataset.
func (DefaultKeyer) StatsKey(datasetHash string, opts StatsKeyOpts) string {
	return hashKey("stats", datasetHash, opts)
}

var _ Keyer = DefaultKeyer{}
