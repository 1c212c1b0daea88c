package astar

// SegUsage records how a single undirected grid segment (the edge between
// two adjacent cells) has been consumed by previously routed edges, so a
// later route can share it only under the narrow conditions spec.md §4.2
// allows: the shared cell is the new route's own start or end point, and
// every route that already uses the segment agrees on that same start/end
// identity.
type SegUsage struct {
	Used    bool
	UsedAsMiddle bool

	StartSource      int
	StartSourceMulti bool
	EndTarget        int
	EndTargetMulti   bool

	UsedCount int
}

// SegmentUsage is the sparse table of all recorded segments for one layout
// attempt, keyed by SegmentKey.
type SegmentUsage struct {
	m map[int64]SegUsage
}

// NewSegmentUsage returns an empty usage table.
func NewSegmentUsage() *SegmentUsage {
	return &SegmentUsage{m: make(map[int64]SegUsage)}
}

// SegmentKey returns the order-independent key for the segment between two
// adjacent flat indices.
func SegmentKey(a, b int) int64 {
	if a > b {
		a, b = b, a
	}
	return int64(a)<<32 | int64(uint32(b))
}

// Get looks up usage for a segment key.
func (s *SegmentUsage) Get(key int64) (SegUsage, bool) {
	if s == nil {
		return SegUsage{}, false
	}
	u, ok := s.m[key]
	return u, ok
}

// RecordMiddle marks a segment as used by a path's interior (not touching
// either of that path's own endpoints) — such a segment can never be shared.
func (s *SegmentUsage) RecordMiddle(key int64) {
	u := s.m[key]
	u.Used = true
	u.UsedAsMiddle = true
	u.UsedCount++
	s.m[key] = u
}

// RecordStart marks a segment as used at a path's start point, attributing
// it to edgeFromID. If a different edgeFromID already claimed this segment's
// start, the segment becomes permanently unshareable (StartSourceMulti).
func (s *SegmentUsage) RecordStart(key int64, edgeFromID int) {
	u := s.m[key]
	u.Used = true
	if u.UsedCount == 0 {
		u.StartSource = edgeFromID
	} else if u.StartSource != edgeFromID {
		u.StartSourceMulti = true
	}
	u.UsedCount++
	s.m[key] = u
}

// RecordEnd mirrors RecordStart for a path's end point.
func (s *SegmentUsage) RecordEnd(key int64, edgeToID int) {
	u := s.m[key]
	u.Used = true
	if u.UsedCount == 0 {
		u.EndTarget = edgeToID
	} else if u.EndTarget != edgeToID {
		u.EndTargetMulti = true
	}
	u.UsedCount++
	s.m[key] = u
}

// RecordPath records every segment along a routed index path, classifying
// each as start/middle/end relative to the path's own two endpoints, and
// updates the per-cell UsedPoints connectivity masks.
func RecordPath(c *Context, usage *SegmentUsage, usedPoints []int, path []int, edgeFromID, edgeToID int) {
	if len(path) < 2 {
		return
	}
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		key := SegmentKey(a, b)
		switch {
		case i == 0:
			usage.RecordStart(key, edgeFromID)
		case i == len(path)-2:
			usage.RecordEnd(key, edgeToID)
		default:
			usage.RecordMiddle(key)
		}
		recordPointBits(c, usedPoints, a, b)
	}
}

func recordPointBits(c *Context, usedPoints []int, a, b int) {
	ax, ay := c.XY(a)
	bx, by := c.XY(b)
	var bitAB, bitBA int
	switch {
	case bx == ax-1:
		bitAB, bitBA = BitLeft, BitRight
	case bx == ax+1:
		bitAB, bitBA = BitRight, BitLeft
	case by == ay-1:
		bitAB, bitBA = BitUp, BitDown
	case by == ay+1:
		bitAB, bitBA = BitDown, BitUp
	}
	usedPoints[a] |= bitAB
	usedPoints[b] |= bitBA
}
