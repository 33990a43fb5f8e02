package nn

import (
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Scaler rescales predictions in place.
type Scaler interface {
	Scale(m *mat.Dense) error
}

// StandardScaler undoes a standardization: x*Stddev + Mean, column-wise.
// Mean and Stddev have either one element, used for every column, or one
// per column.
type StandardScaler struct {
	Mean   []float64
	Stddev []float64
}

// NewStandardScaler returns a scaler for dim columns. A nil mean means 0
// and a nil stddev means 1.
func NewStandardScaler(mean, stddev []float64, dim int) (*StandardScaler, error) {
	if len(mean) == 0 {
		mean = []float64{0}
	}
	if len(stddev) == 0 {
		stddev = []float64{1}
	}
	s := &StandardScaler{Mean: broadcast(mean, dim), Stddev: broadcast(stddev, dim)}
	if s.Mean == nil || s.Stddev == nil {
		return nil, NewError(ErrConfig, "NewStandardScaler", "mean (%d) and stddev (%d) must have 1 or %d elements", len(mean), len(stddev), dim)
	}
	return s, nil
}

// FitStandardScaler returns the scaler that maps standardized values back
// to the distribution of the columns of targets (one row per structure).
// Columns with zero deviation get a stddev of 1.
func FitStandardScaler(targets mat.Matrix) (*StandardScaler, error) {
	r, c := targets.Dims()
	if r < 2 {
		return nil, NewError(ErrShape, "FitStandardScaler", "need at least 2 rows, got %d", r)
	}
	s := &StandardScaler{Mean: make([]float64, c), Stddev: make([]float64, c)}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, targets)
		s.Mean[j], s.Stddev[j] = stat.MeanStdDev(col, nil)
		if s.Stddev[j] == 0 {
			s.Stddev[j] = 1
		}
	}
	return s, nil
}

func broadcast(v []float64, dim int) []float64 {
	switch len(v) {
	case dim:
		return append([]float64(nil), v...)
	case 1:
		ret := make([]float64, dim)
		for i := range ret {
			ret[i] = v[0]
		}
		return ret
	}
	return nil
}

func (s *StandardScaler) Scale(m *mat.Dense) error {
	r, c := m.Dims()
	if c != len(s.Mean) {
		return NewError(ErrShape, "StandardScaler.Scale", "%d columns, scaler has %d", c, len(s.Mean))
	}
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		vek.Mul_Inplace(row, s.Stddev)
		vek.Add_Inplace(row, s.Mean)
	}
	return nil
}

func (s *StandardScaler) String() string {
	return fmt.Sprintf("StandardScaler(mean=%v, stddev=%v)", s.Mean, s.Stddev)
}
