package las

import (
	"math"

	"golang.org/x/exp/constraints"
)

// span returns the smallest and largest element of xs for which keep is true.
func span[T constraints.Ordered](xs []T, keep func(T) bool) (lo, hi T, ok bool) {
	for _, x := range xs {
		if !keep(x) {
			continue
		}
		if !ok {
			lo, hi, ok = x, x, true
			continue
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, ok
}

func finite[F constraints.Float](f F) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Range returns the minimum and maximum of a float column, ignoring NaN.
// ok is false for non-float columns and columns without finite samples.
func (c Column) Range() (lo, hi float64, ok bool) {
	if c.kind != ColumnFloat {
		return 0, 0, false
	}
	return span(c.floats, finite[float64])
}

// IndexRange returns the depth (or time) extent of the first curve as floats.
// Time indexes are reported as Unix seconds.
func (d *Document) IndexRange() (lo, hi float64, ok bool) {
	index, found := d.Index()
	if !found {
		return 0, 0, false
	}
	col := index.Data()
	if col.Kind() == ColumnTime {
		secs := make([]int64, 0, col.Len())
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				secs = append(secs, col.times[i].Unix())
			}
		}
		l, h, ok := span(secs, func(int64) bool { return true })
		return float64(l), float64(h), ok
	}
	return col.Range()
}
