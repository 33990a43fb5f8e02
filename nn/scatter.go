package nn

import (
	"strings"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// Aggregation is the reduction used over rows that share a group index.
type Aggregation int

const (
	AggrAdd Aggregation = iota
	AggrMean
)

// ParseAggregation accepts "add" (or "sum") and "mean". Anything else is
// a configuration error.
func ParseAggregation(name string) (Aggregation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add", "sum":
		return AggrAdd, nil
	case "mean":
		return AggrMean, nil
	}
	return AggrAdd, NewError(ErrConfig, "ParseAggregation", "aggregation must be add or mean, got %q", name)
}

func (a Aggregation) String() string {
	if a == AggrMean {
		return "mean"
	}
	return "add"
}

// Scatter reduces the rows of src into size rows: row index[i] of the
// result accumulates row i of src. Groups that receive no rows are zero.
func Scatter(src *mat.Dense, index []int, size int, aggr Aggregation) (*mat.Dense, error) {
	if src == nil {
		return nil, NewError(ErrShape, "Scatter", "nil source")
	}
	r, c := src.Dims()
	if len(index) != r {
		return nil, NewError(ErrShape, "Scatter", "%d indexes for %d rows", len(index), r)
	}
	if size < 1 {
		return nil, NewError(ErrShape, "Scatter", "output size must be positive, got %d", size)
	}
	ret := mat.NewDense(size, c, nil)
	counts := make([]int, size)
	for i, g := range index {
		if g < 0 || g >= size {
			return nil, NewError(ErrOutOfRange, "Scatter", "index %d of row %d is outside [0,%d)", g, i, size)
		}
		vek.Add_Inplace(ret.RawRowView(g), src.RawRowView(i))
		counts[g]++
	}
	if aggr == AggrMean {
		for g, n := range counts {
			if n > 1 {
				vek.MulNumber_Inplace(ret.RawRowView(g), 1/float64(n))
			}
		}
	}
	return ret, nil
}
