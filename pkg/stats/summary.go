package stats

// Summary bundles the descriptive statistics of a series.
type Summary struct {
	Count    int     `json:"count"`
	Sum      float64 `json:"sum"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Mode     float64 `json:"mode"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// DefaultModePrecision is the rounding precision used by [Summarize] for
// the mode.
const DefaultModePrecision = 2

// Summarize computes every descriptive statistic of values in one call.
// An empty slice yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	q1, median, q3 := Quartiles(values)
	variance := Variance(values)
	return Summary{
		Count:    len(values),
		Sum:      Sum(values),
		Min:      Min(values),
		Max:      Max(values),
		Mean:     Mean(values),
		Median:   median,
		Mode:     Mode(values, DefaultModePrecision),
		Variance: variance,
		StdDev:   StdDev(values),
		Q1:       q1,
		Q3:       q3,
		IQR:      q3 - q1,
		Skewness: Skewness(values),
		Kurtosis: Kurtosis(values),
	}
}
