package kspdv

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// DeltaVMatrix is the delta-V of every flight path of a catalog, for a given
// pair of orbit flags. Rows are departures and columns are arrivals, both in
// catalog order.
type DeltaVMatrix struct {
	catalog                    *Catalog
	startOrbiting, endOrbiting bool
	dv                         *mat64.Dense
}

// NewDeltaVMatrix computes the delta-V matrix of the provided catalog.
func NewDeltaVMatrix(c *Catalog, startOrbiting, endOrbiting bool) *DeltaVMatrix {
	n := c.Len()
	dv := mat64.NewDense(n, n, nil)
	for i, start := range c.bodies {
		for j, end := range c.bodies {
			// Catalog bodies are valid, so the flight path cannot fail.
			fp := &FlightPath{start, end, startOrbiting, endOrbiting}
			dv.Set(i, j, float64(fp.DeltaV()))
		}
	}
	return &DeltaVMatrix{c, startOrbiting, endOrbiting, dv}
}

// Catalog returns the catalog this matrix was computed from.
func (m *DeltaVMatrix) Catalog() *Catalog {
	return m.catalog
}

// Orbiting returns the orbit flags of the departures and of the arrivals.
func (m *DeltaVMatrix) Orbiting() (start, end bool) {
	return m.startOrbiting, m.endOrbiting
}

// Dense returns a copy of the underlying matrix.
func (m *DeltaVMatrix) Dense() *mat64.Dense {
	return mat64.DenseCopyOf(m.dv)
}

// At returns the delta-V from body i to body j.
// It panics if either index is out of the catalog range.
func (m *DeltaVMatrix) At(i, j int) int {
	return int(m.dv.At(i, j))
}

// Row returns a copy of the delta-V from body i to every body.
// It panics if i is out of the catalog range.
func (m *DeltaVMatrix) Row(i int) []float64 {
	return mat64.Row(nil, i, m.dv)
}

// Cheapest returns the index of the cheapest destination from body i, other
// than i itself, and its delta-V. It returns -1 if the catalog has a single body
// or if i is out of range.
func (m *DeltaVMatrix) Cheapest(i int) (to, dv int) {
	if n := m.catalog.Len(); n < 2 || i < 0 || i >= n {
		return -1, 0
	}
	row := m.Row(i)
	row[i] = math.Inf(1)
	to = floats.MinIdx(row)
	return to, int(row[to])
}

// Mean returns the average delta-V from body i to every other body, or zero if
// i is out of range.
func (m *DeltaVMatrix) Mean(i int) float64 {
	n := m.catalog.Len()
	if n < 2 || i < 0 || i >= n {
		return 0
	}
	row := m.Row(i)
	row[i] = 0
	return floats.Sum(row) / float64(n-1)
}

// Max returns the largest delta-V of the matrix.
func (m *DeltaVMatrix) Max() int {
	return int(mat64.Max(m.dv))
}
