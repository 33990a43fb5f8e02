package gnn

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rmera/gognn/nn"
	v3 "github.com/rmera/gognn/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSaveLoad(t *testing.T) {
	c := smallConfig()
	c.NConvLayer = 2
	m1, err := New(c)
	require.NoError(t, err)
	c.Seed = 1234
	m2, err := New(c)
	require.NoError(t, err)

	b := ohBatch()
	o1, err := m1.Forward(b)
	require.NoError(t, err)
	o2, err := m2.Forward(b)
	require.NoError(t, err)
	require.NotEqual(t, o1.At(0, 0), o2.At(0, 0))

	var buf bytes.Buffer
	require.NoError(t, m1.Save(&buf))
	saved := buf.Bytes()
	require.NoError(t, m2.Load(bytes.NewReader(saved)))
	o2, err = m2.Forward(b)
	require.NoError(t, err)
	assert.Equal(t, o1.At(0, 0), o2.At(0, 0))

	m3, err := LoadModel(bytes.NewReader(saved))
	require.NoError(t, err)
	assert.Equal(t, m1.Config(), m3.Config())
	o3, err := m3.Forward(b)
	require.NoError(t, err)
	assert.Equal(t, o1.At(0, 0), o3.At(0, 0))

	//a model of another shape rejects the weights and keeps its own.
	c.NodeDim = 4
	m4, err := New(c)
	require.NoError(t, err)
	before, err := m4.Forward(b)
	require.NoError(t, err)
	err = m4.Load(bytes.NewReader(saved))
	assert.True(t, errors.Is(err, nn.ErrShape), err)
	after, err := m4.Forward(b)
	require.NoError(t, err)
	assert.Equal(t, before.At(0, 0), after.At(0, 0))

	assert.Error(t, m1.Load(bytes.NewReader([]byte("not zstd at all"))))
}

func TestPredictAll(t *testing.T) {
	m, err := New(smallConfig())
	require.NoError(t, err)
	batches := []*Batch{ohBatch(), waterBatch(t), {AtomicNumbers: []int{6}}, ohBatch()}
	want := make([]*mat.Dense, len(batches))
	for i, b := range batches {
		want[i], err = m.Forward(b)
		require.NoError(t, err)
	}
	for _, workers := range []int{0, 1, 3} {
		got, err := PredictAll(context.Background(), m, batches, workers)
		require.NoError(t, err)
		require.Len(t, got, len(batches))
		for i := range got {
			assert.True(t, mat.Equal(want[i], got[i]), "workers %d, batch %d", workers, i)
		}
	}

	batches = append(batches, &Batch{AtomicNumbers: []int{1000}})
	_, err = PredictAll(context.Background(), m, batches, 2)
	assert.True(t, errors.Is(err, nn.ErrOutOfRange))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = PredictAll(ctx, m, batches[:1], 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBatchValidate(t *testing.T) {
	ok := ohBatch()
	require.NoError(t, ok.Validate())
	assert.Equal(t, 1, ok.NStructures())

	bad := map[string]*Batch{
		"no atoms":        {},
		"edge lengths":    {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{}, Distances: []float64{}},
		"batch length":    {AtomicNumbers: []int{1, 1}, BatchIndex: []int{0}},
		"cross structure": {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Distances: []float64{1}, BatchIndex: []int{0, 1}},
		"no geometry":     {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}},
		"distances":       {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Distances: []float64{1, 1}},
		"negative":        {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Distances: []float64{-0.96}},
		"NaN":             {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Distances: []float64{math.NaN()}},
		"infinite":        {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Distances: []float64{math.Inf(1)}},
		"2-col positions": {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Positions: &v3.Matrix{Dense: mat.NewDense(2, 2, nil)}},
		"empty positions": {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Positions: &v3.Matrix{}},
		"2-col shifts": {AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1},
			Positions: &v3.Matrix{Dense: mat.NewDense(2, 3, nil)}, Shifts: &v3.Matrix{Dense: mat.NewDense(1, 2, nil)}},
	}
	m, err := New(smallConfig())
	require.NoError(t, err)
	for name, b := range bad {
		err := b.Validate()
		assert.True(t, errors.Is(err, nn.ErrShape), "%s: %v", name, err)
		_, err = m.Forward(b)
		assert.True(t, errors.Is(err, nn.ErrShape), "%s: Forward accepted the batch", name)
	}
	//computed distances are checked too.
	nan := &Batch{AtomicNumbers: []int{8, 1}, EdgeSrc: []int{0, 1}, EdgeDst: []int{1, 0},
		Positions: &v3.Matrix{Dense: mat.NewDense(2, 3, []float64{0, 0, 0, math.NaN(), 0, 0})}}
	require.NoError(t, nan.Validate())
	_, err = nan.EdgeDistances()
	assert.True(t, errors.Is(err, nn.ErrShape), "%v", err)
	_, err = PredictAll(context.Background(), m, []*Batch{ohBatch(), nan}, 2)
	assert.True(t, errors.Is(err, nn.ErrShape), "%v", err)
	outside := []*Batch{
		{AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{2}, Distances: []float64{1}},
		{AtomicNumbers: []int{1, 1}, BatchIndex: []int{0, -1}},
	}
	for i, b := range outside {
		assert.True(t, errors.Is(b.Validate(), nn.ErrOutOfRange), "case %d", i)
	}
	//a structure may have no atoms in the middle of a batch.
	gap := &Batch{AtomicNumbers: []int{1, 1}, BatchIndex: []int{0, 2}}
	require.NoError(t, gap.Validate())
	assert.Equal(t, 3, gap.NStructures())
}
