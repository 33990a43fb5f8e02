package chemjson

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const input = `{"Name": "water", "Symbols": ["O", "H", "H"], "Coords": [0, 0, 0, 0.9572, 0, 0, -0.24, 0.9266, 0]}
{"Name": "h2", "AtomicNumbers": [1, 1], "Coords": [0, 0, 0, 0.74, 0, 0]}
`

func TestToBatch(t *testing.T) {
	structs, jerr := DecodeStructures(strings.NewReader(input))
	require.Nil(t, jerr)
	require.Len(t, structs, 2)
	b, jerr := ToBatch(structs, 4.0, 0)
	require.Nil(t, jerr)
	assert.Equal(t, []int{8, 1, 1, 1, 1}, b.AtomicNumbers)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, b.BatchIndex)
	assert.Equal(t, 2, b.NStructures())
	//full graph in each structure, none across.
	assert.Equal(t, 6+2, b.NEdges())
	for e := range b.EdgeSrc {
		assert.Equal(t, b.BatchIndex[b.EdgeSrc[e]], b.BatchIndex[b.EdgeDst[e]])
	}
	d, err := b.EdgeDistances()
	require.NoError(t, err)
	for e := range d {
		if b.EdgeSrc[e] >= 3 {
			assert.InDelta(t, 0.74, d[e], 1e-12)
		}
	}

	//a short cutoff leaves the H atoms of water apart.
	b, jerr = ToBatch(structs, 1.0, 0)
	require.Nil(t, jerr)
	assert.Equal(t, 4+2, b.NEdges())
}

func TestToBatchDistances(t *testing.T) {
	s := []*Structure{
		{AtomicNumbers: []int{1, 8}, EdgeSrc: []int{0, 1}, EdgeDst: []int{1, 0}, Distances: []float64{0.96, 0.96}},
		{AtomicNumbers: []int{6}, Distances: []float64{}, EdgeSrc: []int{}, EdgeDst: []int{}},
	}
	b, jerr := ToBatch(s, 4, 0)
	require.Nil(t, jerr)
	assert.Nil(t, b.Positions)
	assert.Equal(t, []float64{0.96, 0.96}, b.Distances)
	assert.Equal(t, []int{0, 0, 1}, b.BatchIndex)
}

func TestToBatchShifts(t *testing.T) {
	s := []*Structure{
		{AtomicNumbers: []int{3}, Coords: []float64{0, 0, 0}, EdgeSrc: []int{}, EdgeDst: []int{}, Shifts: []float64{}},
		{AtomicNumbers: []int{1, 1}, Coords: []float64{0, 0, 0, 0.74, 0, 0}, EdgeSrc: []int{0, 1}, EdgeDst: []int{1, 0},
			Shifts: []float64{3, 0, 0, -3, 0, 0}},
	}
	b, jerr := ToBatch(s, 4, 0)
	require.Nil(t, jerr)
	require.NotNil(t, b.Shifts)
	assert.Equal(t, 2, b.Shifts.NVecs())
	d, err := b.EdgeDistances()
	require.NoError(t, err)
	assert.InDelta(t, 3.74, d[0], 1e-12)

	s[0].Shifts = nil
	_, jerr = ToBatch(s, 4, 0)
	require.NotNil(t, jerr, "shifts in some structures only")
	assert.Equal(t, 1, jerr.Structure)

	withDist := []*Structure{{AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Distances: []float64{1}, Shifts: []float64{1, 0, 0}}}
	_, jerr = ToBatch(withDist, 4, 0)
	assert.NotNil(t, jerr, "shifts given with distances")
}

func TestErrors(t *testing.T) {
	_, jerr := DecodeStructures(strings.NewReader(""))
	assert.NotNil(t, jerr)
	_, jerr = DecodeStructures(strings.NewReader(`{"Atoms": [1]}`))
	require.NotNil(t, jerr)
	assert.True(t, jerr.InInput)

	bad := [][]*Structure{
		{{Symbols: []string{"Xx"}, Coords: []float64{0, 0, 0}}},
		{{AtomicNumbers: []int{1, 1}, Coords: []float64{0, 0, 0}}},
		{{AtomicNumbers: []int{1}, Distances: []float64{1}}},
		{{AtomicNumbers: []int{1, 1}, EdgeSrc: []int{0}, EdgeDst: []int{1}, Distances: []float64{1}}, {AtomicNumbers: []int{1}, Coords: []float64{0, 0, 0}}},
		{{}},
	}
	for i, s := range bad {
		_, jerr := ToBatch(s, 4, 0)
		assert.NotNil(t, jerr, "case %d", i)
	}
	jerr = NewError("input", "TestErrors", 3, assert.AnError)
	var back Error
	require.NoError(t, json.Unmarshal(jerr.Marshal(), &back))
	assert.Equal(t, 3, back.Structure)
	assert.True(t, back.IsError)
}

func TestInfo(t *testing.T) {
	structs, jerr := DecodeStructures(strings.NewReader(input))
	require.Nil(t, jerr)
	info := NewInfo(structs, mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	var buf bytes.Buffer
	require.Nil(t, info.Send(&buf))
	back := new(Info)
	require.NoError(t, json.Unmarshal(buf.Bytes(), back))
	assert.Equal(t, 2, back.Structures)
	assert.Equal(t, []string{"water", "h2"}, back.Names)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, back.Properties)
}
