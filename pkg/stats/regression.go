package stats

import (
	"math"

	"github.com/aclements/go-moremath/fit"
)

// Regression is the result of an ordinary least squares fit y = Slope*x + Intercept.
type Regression struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// Predict evaluates the fitted line at x.
func (r Regression) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Correlation returns the Pearson correlation coefficient of x and y.
// Returns 0 if the lengths differ, fewer than two pairs are given, or either
// series has zero variance.
func Correlation(x, y []float64) float64 {
	sxx, syy, sxy, ok := comoments(x, y)
	if !ok || sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

// LinearRegression fits y = slope*x + intercept by ordinary least squares.
// RSquared is the square of [Correlation]. Returns the zero Regression on
// degenerate input (length mismatch, fewer than two pairs, constant x) or
// when the fit is not finite.
func LinearRegression(x, y []float64) Regression {
	sxx, _, _, ok := comoments(x, y)
	if !ok || sxx == 0 {
		return Regression{}
	}
	coef := fit.PolynomialRegression(x, y, nil, 1).Coefficients
	if len(coef) != 2 || !isFinite(coef[0]) || !isFinite(coef[1]) {
		return Regression{}
	}
	r := Correlation(x, y)
	return Regression{
		Slope:     coef[1],
		Intercept: coef[0],
		RSquared:  r * r,
	}
}

// comoments returns the centered sums of squares and cross products.
func comoments(x, y []float64) (sxx, syy, sxy float64, ok bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, 0, 0, false
	}
	mx, my := Mean(x), Mean(y)
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	return sxx, syy, sxy, true
}
