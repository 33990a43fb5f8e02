package nn

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestActivations(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"ssp", 0, 0},
		{"shifted_softplus", 1000, 1000 - math.Ln2},
		{"softplus", 0, math.Ln2},
		{"softplus", -1000, 0},
		{"SiLU", 0, 0},
		{"swish", 1, 1 / (1 + math.Exp(-1))},
		{"relu", -1, 0},
		{"relu", 2, 2},
		{"tanh", 0.3, math.Tanh(0.3)},
		{"sigmoid", 0, 0.5},
		{"linear", -3, -3},
	}
	for _, c := range cases {
		a, err := ParseActivation(c.name)
		require.NoError(t, err, c.name)
		assert.InDelta(t, c.want, a.Func()(c.x), 1e-12, "%s(%g)", c.name, c.x)
	}
	_, err := ParseActivation("gelu")
	assert.True(t, errors.Is(err, ErrConfig))

	m := mat.NewDense(1, 2, []float64{-1, 1})
	ReLU.Apply(m)
	assert.Equal(t, []float64{0, 1}, m.RawRowView(0))
}

func TestInit(t *testing.T) {
	for _, name := range []string{"xavier_uniform", "xavier_normal", "kaiming_uniform", "glorot_orthogonal", "zeros"} {
		in, err := ParseInit(name)
		require.NoError(t, err)
		assert.Equal(t, name, in.String())
		w1, w2 := mat.NewDense(12, 5, nil), mat.NewDense(12, 5, nil)
		in.Fill(w1, rand.NewPCG(7, 7))
		in.Fill(w2, rand.NewPCG(7, 7))
		assert.True(t, mat.Equal(w1, w2), "%s is not reproducible", name)
	}
	_, err := ParseInit("lecun")
	assert.True(t, errors.Is(err, ErrConfig))

	w := mat.NewDense(64, 32, nil)
	XavierUniform.Fill(w, rand.NewPCG(1, 2))
	a := math.Sqrt(6.0 / 96)
	assert.LessOrEqual(t, mat.Max(w), a)
	assert.GreaterOrEqual(t, mat.Min(w), -a)
	assert.NotEqual(t, 0.0, mat.Norm(w, 2))

	//orthogonal columns, all of the same norm.
	w = mat.NewDense(10, 4, nil)
	GlorotOrthogonal.Fill(w, rand.NewPCG(3, 4))
	var wtw mat.Dense
	wtw.Mul(w.T(), w)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				assert.InDelta(t, wtw.At(0, 0), wtw.At(i, i), 1e-10)
				continue
			}
			assert.InDelta(t, 0, wtw.At(i, j), 1e-10)
		}
	}
	//and rows, for wide matrices.
	w = mat.NewDense(3, 7, nil)
	GlorotOrthogonal.Fill(w, rand.NewPCG(3, 4))
	var wwt mat.Dense
	wwt.Mul(w, w.T())
	assert.InDelta(t, 0, wwt.At(0, 2), 1e-10)
}

func TestDense(t *testing.T) {
	d := NewDense(2, 3, true, Identity, Zeros, nil)
	d.W = mat.NewDense(3, 2, []float64{1, 0, 0, 1, 1, 1})
	d.B[2] = 1
	y, err := d.Forward(mat.NewDense(2, 2, []float64{2, 3, -1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 6}, y.RawRowView(0))
	assert.Equal(t, []float64{-1, 1, 1}, y.RawRowView(1))

	_, err = d.Forward(mat.NewDense(1, 3, nil))
	assert.True(t, errors.Is(err, ErrShape))

	p := d.Params("l")
	require.Len(t, p, 2)
	assert.Equal(t, "l.weight", p[0].Name)
	assert.Equal(t, "l.bias", p[1].Name)
	p[1].Value.Set(0, 0, 5)
	assert.Equal(t, 5.0, d.B[0], "bias parameter does not share the layer storage")

	noBias := NewDense(2, 3, false, ReLU, XavierUniform, rand.NewPCG(1, 1))
	assert.Len(t, noBias.Params("x"), 1)

	s := Sequential{NewDense(4, 8, true, ShiftedSoftplus, XavierUniform, rand.NewPCG(1, 1)), NewDense(8, 2, true, Identity, XavierUniform, rand.NewPCG(2, 2))}
	assert.Equal(t, 4, s.In())
	assert.Equal(t, 2, s.Out())
	y, err = s.Forward(mat.NewDense(5, 4, nil))
	require.NoError(t, err)
	r, c := y.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, "s.1.bias", s.Params("s")[3].Name)
	_, err = s.Forward(mat.NewDense(5, 3, nil))
	assert.True(t, errors.Is(err, ErrShape))
}

func TestScatter(t *testing.T) {
	src := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	add, err := Scatter(src, []int{0, 0, 2}, 3, AggrAdd)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 2, []float64{4, 6, 0, 0, 5, 6}), add))
	mean, err := Scatter(src, []int{0, 0, 2}, 3, AggrMean)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 2, []float64{2, 3, 0, 0, 5, 6}), mean))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, src.RawMatrix().Data, "source modified")

	_, err = Scatter(src, []int{0, 3, 1}, 3, AggrAdd)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = Scatter(src, []int{0, 1}, 3, AggrAdd)
	assert.True(t, errors.Is(err, ErrShape))
	_, err = Scatter(src, []int{0, 0, 0}, 0, AggrAdd)
	assert.True(t, errors.Is(err, ErrShape))

	for _, name := range []string{"add", "sum", "Mean"} {
		_, err := ParseAggregation(name)
		assert.NoError(t, err, name)
	}
	_, err = ParseAggregation("max")
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestScaler(t *testing.T) {
	s, err := NewStandardScaler([]float64{1}, []float64{2}, 3)
	require.NoError(t, err)
	m := mat.NewDense(2, 3, []float64{1, 1, 1, 0, -1, 2})
	require.NoError(t, s.Scale(m))
	assert.Equal(t, []float64{3, 3, 3, 1, -1, 5}, m.RawMatrix().Data)

	s, err = NewStandardScaler(nil, []float64{1, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, s.Mean)
	assert.True(t, errors.Is(s.Scale(mat.NewDense(1, 3, nil)), ErrShape))

	_, err = NewStandardScaler([]float64{1, 2}, nil, 3)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestEmbedding(t *testing.T) {
	e1, err := NewEmbedding(10, 4, rand.NewPCG(5, 5))
	require.NoError(t, err)
	e2, err := NewEmbedding(10, 4, rand.NewPCG(5, 5))
	require.NoError(t, err)
	assert.Equal(t, 4, e1.Dim())
	assert.Equal(t, 10, e1.MaxZ())
	z := []int{0, 1, 8, 8, 10}
	x1, err := e1.Forward(z)
	require.NoError(t, err)
	x2, err := e2.Forward(z)
	require.NoError(t, err)
	assert.True(t, mat.Equal(x1, x2))
	assert.Equal(t, x1.RawRowView(2), x1.RawRowView(3), "same element, different embedding")

	_, err = e1.Forward([]int{1, 11})
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = e1.Forward([]int{-1})
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = NewEmbedding(0, 4, nil)
	assert.True(t, errors.Is(err, ErrConfig))

	ex, err := NewExponentEmbedding(86, 6, XavierUniform, rand.NewPCG(1, 1))
	require.NoError(t, err)
	x, err := ex.Forward([]int{1, 86})
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 6, c)
	_, err = ex.Forward([]int{0})
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = NewExponentEmbedding(87, 6, XavierUniform, nil)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestErrorDecoration(t *testing.T) {
	err := NewError(ErrShape, "inner", "bad %d", 3)
	out := Decorate(Decorate(err, "middle"), "outer")
	assert.True(t, errors.Is(out, ErrShape))
	assert.False(t, errors.Is(out, ErrConfig))
	assert.Equal(t, "inner <- middle <- outer", err.Trace())
	assert.Contains(t, out.Error(), "inner: bad 3")
	assert.True(t, err.Critical())

	plain := Decorate(fmt.Errorf("boom"), "f")
	assert.EqualError(t, plain, "f: boom")
	assert.Nil(t, Decorate(nil, "f"))
}

func TestFitStandardScaler(t *testing.T) {
	y := mat.NewDense(4, 2, []float64{1, 5, 2, 5, 3, 5, 4, 5})
	s, err := FitStandardScaler(y)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, s.Mean[0], 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3), s.Stddev[0], 1e-12)
	assert.Equal(t, 5.0, s.Mean[1])
	assert.Equal(t, 1.0, s.Stddev[1], "constant column")
	_, err = FitStandardScaler(mat.NewDense(1, 2, nil))
	assert.True(t, errors.Is(err, ErrShape))
}
