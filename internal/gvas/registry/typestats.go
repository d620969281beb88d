// Package registry collects aggregate statistics over a decoded property
// tree — counts and numeric samples keyed by wire type.
package registry

import (
	"sort"

	"github.com/mabhi256/gvasdiag/internal/gvas"
	"github.com/mabhi256/gvasdiag/utils"
)

// TypeCount is one property type's tally: how many times it occurred and,
// for numeric scalars, the sample used to compute mean/variance.
type TypeCount struct {
	Count   int
	samples []float64
}

// TypeStats tallies property-type occurrences across a decoded Value tree.
type TypeStats struct {
	byType     map[string]*TypeCount
	total      int
	arrayLens  []float64
	arrayCount int
}

// NewTypeStats returns an empty registry.
func NewTypeStats() *TypeStats {
	return &TypeStats{byType: make(map[string]*TypeCount)}
}

// Collect walks root (and every nested map/seq) and tallies every scalar it
// finds by its Go kind — the closest the generic Value tree gets to the
// wire-level type tag, since Value does not retain it once decoded — plus
// the length of every ArrayProperty (KindSeq) encountered.
func (s *TypeStats) Collect(root *gvas.Value) {
	s.walk(root)
}

func (s *TypeStats) walk(v *gvas.Value) {
	if v == nil {
		return
	}
	switch v.Kind {
	case gvas.KindMap:
		for _, entry := range v.Map {
			s.walk(entry.Value)
		}
	case gvas.KindSeq:
		s.arrayCount++
		s.arrayLens = append(s.arrayLens, float64(len(v.Seq)))
		for _, elem := range v.Seq {
			s.walk(elem)
		}
	case gvas.KindScalar:
		s.record(v.Scalar)
	}
}

func (s *TypeStats) record(scalar any) {
	kind := scalarKindName(scalar)
	s.total++

	tc, ok := s.byType[kind]
	if !ok {
		tc = &TypeCount{}
		s.byType[kind] = tc
	}
	tc.Count++
	if f, ok := numericValue(scalar); ok {
		tc.samples = append(tc.samples, f)
	}
}

func scalarKindName(v any) string {
	switch v.(type) {
	case bool:
		return "bool"
	case int8:
		return "int8"
	case uint8:
		return "uint8"
	case int16:
		return "int16"
	case uint16:
		return "uint16"
	case int32:
		return "int32"
	case uint32:
		return "uint32"
	case int64:
		return "int64"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case string:
		return "string"
	default:
		return "unknown"
	}
}

func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case int8:
		return float64(x), true
	case uint8:
		return float64(x), true
	case int16:
		return float64(x), true
	case uint16:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// Total is the number of scalar values tallied.
func (s *TypeStats) Total() int {
	return s.total
}

// Kinds returns the tallied kind names sorted by descending count, ties
// broken alphabetically, the order a stats report or a bar chart wants.
func (s *TypeStats) Kinds() []string {
	kinds := make([]string, 0, len(s.byType))
	for k := range s.byType {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		ci, cj := s.byType[kinds[i]].Count, s.byType[kinds[j]].Count
		if ci != cj {
			return ci > cj
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}

// Count returns how many scalars of the given kind were tallied.
func (s *TypeStats) Count(kind string) int {
	if tc, ok := s.byType[kind]; ok {
		return tc.Count
	}
	return 0
}

// Mean returns the arithmetic mean of the numeric samples tallied under
// kind, or 0 if kind is non-numeric or unseen.
func (s *TypeStats) Mean(kind string) float64 {
	tc, ok := s.byType[kind]
	if !ok {
		return 0
	}
	return utils.CalculateMean(tc.samples)
}

// Variance returns the population variance of the numeric samples tallied
// under kind, or 0 if kind is non-numeric, unseen, or has fewer than two
// samples.
func (s *TypeStats) Variance(kind string) float64 {
	tc, ok := s.byType[kind]
	if !ok || len(tc.samples) < 2 {
		return 0
	}
	return utils.CalculateVariance(tc.samples, s.Mean(kind))
}

// ArrayCount is the number of ArrayProperty values tallied.
func (s *TypeStats) ArrayCount() int {
	return s.arrayCount
}

// ArrayLengthMean is the arithmetic mean of every tallied array's element
// count, or 0 if no arrays were seen.
func (s *TypeStats) ArrayLengthMean() float64 {
	return utils.CalculateMean(s.arrayLens)
}

// ArrayLengthVariance is the population variance of every tallied array's
// element count, or 0 if fewer than two arrays were seen.
func (s *TypeStats) ArrayLengthVariance() float64 {
	if len(s.arrayLens) < 2 {
		return 0
	}
	return utils.CalculateVariance(s.arrayLens, s.ArrayLengthMean())
}

// ArrayLengthMinMax returns the shortest and longest tallied array lengths,
// or (0, 0) if no arrays were seen.
func (s *TypeStats) ArrayLengthMinMax() (min, max int) {
	if len(s.arrayLens) == 0 {
		return 0, 0
	}
	min, max = int(s.arrayLens[0]), int(s.arrayLens[0])
	for _, l := range s.arrayLens[1:] {
		if int(l) < min {
			min = int(l)
		}
		if int(l) > max {
			max = int(l)
		}
	}
	return min, max
}
