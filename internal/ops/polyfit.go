package ops

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/series"
	"github.com/tabula-cli/tabula/internal/frame"
	"gonum.org/v1/gonum/mat"
)

// PolyFit fits y = p(x) of the given degree by least squares and appends a
// column polyfit_<degree> with the fitted values.
func PolyFit(t *frame.Table, xcol, ycol string, degree int) (*frame.Table, error) {
	for _, col := range []string{xcol, ycol} {
		if !t.HasColumn(col) {
			return nil, frame.Errorf("No such column %s", col)
		}
		if !t.IsNumeric(col) {
			return nil, frame.Errorf("Column %s is not numeric", col)
		}
	}
	if degree < 1 {
		return nil, frame.Errorf("Degree must be at least 1, got %d", degree)
	}

	xs := t.Col(xcol).Float()
	ys := t.Col(ycol).Float()
	var xf, yf []float64
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		xf = append(xf, xs[i])
		yf = append(yf, ys[i])
	}
	if len(xf) < degree+1 {
		return nil, frame.Errorf("Need at least %d rows for a degree-%d fit, got %d",
			degree+1, degree, len(xf))
	}

	coeffs, err := fitPolynomial(xf, yf, degree)
	if err != nil {
		return nil, err
	}

	fitted := make([]float64, len(xs))
	for i, x := range xs {
		fitted[i] = evalPolynomial(coeffs, x)
	}
	name := fmt.Sprintf("polyfit_%d", degree)
	df := t.Frame().Mutate(series.New(fitted, series.Float, name))
	return frame.New(df)
}

// fitPolynomial solves the least-squares problem over the Vandermonde
// matrix with a QR factorization. Coefficients come back lowest order
// first.
func fitPolynomial(xs, ys []float64, degree int) ([]float64, error) {
	n := len(xs)
	a := mat.NewDense(n, degree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), ys...))

	var qr mat.QR
	qr.Factorize(a)
	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, b); err != nil {
		return nil, frame.Errorf("Polynomial fit failed: %v", err)
	}

	coeffs := make([]float64, degree+1)
	for j := range coeffs {
		coeffs[j] = c.AtVec(j)
	}
	return coeffs, nil
}

func evalPolynomial(coeffs []float64, x float64) float64 {
	y := 0.0
	for j := len(coeffs) - 1; j >= 0; j-- {
		y = y*x + coeffs[j]
	}
	return y
}
