// Package astar implements the 4-neighbour A* search spec.md §4.2 describes:
// a rolling-epoch set of parallel arrays reused across searches, a binary
// heap that discards stale entries, and two entry points — unconstrained and
// strict — with the strict constraint checks inlined into neighbour
// expansion rather than dispatched through a callback.
package astar

import "container/heap"

// Connectivity bits, matching the box-drawing algebra in package canvas;
// duplicated locally (rather than imported) because astar is a leaf package
// with no drawing-stage dependency.
const (
	BitLeft  = 1
	BitRight = 2
	BitUp    = 4
	BitDown  = 8
)

// Bounds restricts a single search to a sub-rectangle of the context's full
// stride x height grid (the strict-retry "bounds expansion" of spec.md §4.3
// widens this rectangle between attempts).
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

func (b Bounds) contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Context holds the stamp/cost/predecessor arrays and blocked bitmap shared
// across every search performed during one layout attempt. A cell i is
// "touched in this search" iff costStamp[i] == stamp; stamp is bumped before
// each new search rather than zeroing the arrays.
type Context struct {
	Stride, Height int
	Blocked        []bool

	stamp     uint32
	costStamp []uint32
	costSoFar []int
	cameFrom  []int

	heapBuf []heapEntry
}

// NewContext allocates a context sized exactly stride*height.
func NewContext(stride, height int) *Context {
	n := stride * height
	return &Context{
		Stride:    stride,
		Height:    height,
		Blocked:   make([]bool, n),
		stamp:     0,
		costStamp: make([]uint32, n),
		costSoFar: make([]int, n),
		cameFrom:  make([]int, n),
	}
}

// Idx converts (x, y) to a flat index.
func (c *Context) Idx(x, y int) int { return x + y*c.Stride }

// XY converts a flat index back to (x, y).
func (c *Context) XY(idx int) (x, y int) { return idx % c.Stride, idx / c.Stride }

// nextStamp advances the monotonic epoch counter, skipping 0 on wraparound
// because 0 is the "never touched" sentinel in costStamp.
func (c *Context) nextStamp() uint32 {
	c.stamp++
	if c.stamp == 0 {
		c.stamp = 1
	}
	return c.stamp
}

func (c *Context) touched(idx int) bool { return c.costStamp[idx] == c.stamp }

func (c *Context) touch(idx, cost, from int) {
	c.costStamp[idx] = c.stamp
	c.costSoFar[idx] = cost
	c.cameFrom[idx] = from
}

func heuristic(ax, ay, bx, by int) int {
	dx := abs(ax - bx)
	dy := abs(ay - by)
	h := dx + dy
	if dx != 0 && dy != 0 {
		h++ // tie-break bonus toward straight-line completion
	}
	return h
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// heapEntry is a min-heap node: the cell index, its priority (cost plus
// heuristic), and the cost it was pushed with, which search compares against
// costSoFar to discard stale entries.
type heapEntry struct {
	idx      int
	priority int
	cost     int
}

type minHeap []heapEntry

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// neighbors4 returns the up-to-4 orthogonal neighbours of idx, each tagged
// with the connectivity bit pointing from idx toward it.
func (c *Context) neighbors4(idx int) [4]struct {
	idx int
	bit int
	ok  bool
} {
	x, y := c.XY(idx)
	return [4]struct {
		idx int
		bit int
		ok  bool
	}{
		{c.Idx(x-1, y), BitLeft, x > 0},
		{c.Idx(x+1, y), BitRight, x+1 < c.Stride},
		{c.Idx(x, y-1), BitUp, y > 0},
		{c.Idx(x, y+1), BitDown, y+1 < c.Height},
	}
}

// oppositeBit returns the bit a neighbour sees pointing back toward idx.
func oppositeBit(bit int) int {
	switch bit {
	case BitLeft:
		return BitRight
	case BitRight:
		return BitLeft
	case BitUp:
		return BitDown
	case BitDown:
		return BitUp
	default:
		return 0
	}
}

// GetPath runs the unconstrained search: only blocked cells are impassable,
// except the exact target index, which may always be entered (so the search
// can terminate on a node border). Returns the index path from source to
// target inclusive, or (nil, false) if bounds are exhausted.
func (c *Context) GetPath(fromIdx, toIdx int, bounds Bounds) ([]int, bool) {
	return c.search(fromIdx, toIdx, bounds, nil)
}

// StrictConstraints carries the usage tables and route identity the strict
// search's inlined rules consult at every step (spec.md §4.2).
type StrictConstraints struct {
	// UsedPoints holds a 4-bit connectivity mask per cell (only meaningful on
	// non-blocked cells).
	UsedPoints []int

	Segments *SegmentUsage

	RouteFromIdx, RouteToIdx int
	EdgeFromID, EdgeToID     int
}

// NativeStrict, when non-nil, is a host-provided implementation of the
// strict search satisfying the same contract (spec.md §6 "native fast
// path"/§9 "Global fast path"). GetPathStrict tries it first and falls back
// to the pure-Go search automatically.
var NativeStrict func(c *Context, fromIdx, toIdx int, bounds Bounds, cons StrictConstraints) ([]int, bool)

// RegisterNativeStrict installs a native strict-search implementation.
// Passing nil restores the pure-Go fallback.
func RegisterNativeStrict(fn func(c *Context, fromIdx, toIdx int, bounds Bounds, cons StrictConstraints) ([]int, bool)) {
	NativeStrict = fn
}

// GetPathStrict runs the constrained search used by the edge router: the
// four-way-crossing rule and the segment-sharing rule are evaluated inline
// on every candidate step, never through a per-step callback.
func (c *Context) GetPathStrict(fromIdx, toIdx int, bounds Bounds, cons StrictConstraints) ([]int, bool) {
	if NativeStrict != nil {
		if path, ok := NativeStrict(c, fromIdx, toIdx, bounds, cons); ok {
			return path, ok
		}
	}
	return c.search(fromIdx, toIdx, bounds, &cons)
}

func (c *Context) search(fromIdx, toIdx int, bounds Bounds, cons *StrictConstraints) ([]int, bool) {
	c.nextStamp()
	fx, fy := c.XY(fromIdx)
	tx, ty := c.XY(toIdx)
	if !bounds.contains(fx, fy) || !bounds.contains(tx, ty) {
		return nil, false
	}

	h := c.heapBuf[:0]
	hp := (*minHeap)(&h)
	heap.Init(hp)
	c.touch(fromIdx, 0, fromIdx)
	heap.Push(hp, heapEntry{idx: fromIdx, priority: heuristic(fx, fy, tx, ty), cost: 0})

	for hp.Len() > 0 {
		cur := heap.Pop(hp).(heapEntry)
		if cur.idx != fromIdx && cur.cost != c.costSoFar[cur.idx] {
			continue // stale entry: cost no longer matches under this stamp
		}
		if cur.idx == toIdx {
			c.heapBuf = h[:0]
			return c.reconstruct(fromIdx, toIdx), true
		}
		cx, cy := c.XY(cur.idx)
		for _, nb := range c.neighbors4(cur.idx) {
			if !nb.ok {
				continue
			}
			nx, ny := c.XY(nb.idx)
			if !bounds.contains(nx, ny) {
				continue
			}
			if nb.idx != toIdx && c.Blocked[nb.idx] {
				continue
			}
			if cons != nil && !c.allowedStep(cur.idx, nb.idx, nb.bit, cx, cy, cons) {
				continue
			}
			newCost := cur.cost + 1
			if !c.touched(nb.idx) || newCost < c.costSoFar[nb.idx] {
				c.touch(nb.idx, newCost, cur.idx)
				priority := newCost + heuristic(nx, ny, tx, ty)
				heap.Push(hp, heapEntry{idx: nb.idx, priority: priority, cost: newCost})
			}
		}
	}
	c.heapBuf = h[:0]
	return nil, false
}

// allowedStep evaluates the two inlined strict-routing rules for a step from
// `from` to `to` (spec.md §4.2).
func (c *Context) allowedStep(from, to, bitTowardTo int, fx, fy int, cons *StrictConstraints) bool {
	if cons.UsedPoints != nil {
		bitBack := oppositeBit(bitTowardTo)
		newFromMask := cons.UsedPoints[from] | bitTowardTo
		if hasBothAxes(newFromMask) {
			return false
		}
		newToMask := cons.UsedPoints[to] | bitBack
		if hasBothAxes(newToMask) {
			return false
		}
	}
	if cons.Segments != nil {
		key := SegmentKey(from, to)
		if su, ok := cons.Segments.Get(key); ok && su.Used {
			if su.UsedAsMiddle {
				return false
			}
			isStart := from == cons.RouteFromIdx
			isEnd := to == cons.RouteToIdx
			if !isStart && !isEnd {
				return false
			}
			if isStart {
				if su.StartSourceMulti || su.StartSource != cons.EdgeFromID {
					return false
				}
			}
			if isEnd {
				if su.EndTargetMulti || su.EndTarget != cons.EdgeToID {
					return false
				}
			}
		}
	}
	return true
}

func hasBothAxes(mask int) bool {
	return mask&(BitLeft|BitRight) == (BitLeft|BitRight) && mask&(BitUp|BitDown) == (BitUp|BitDown)
}

func (c *Context) reconstruct(fromIdx, toIdx int) []int {
	var rev []int
	idx := toIdx
	for {
		rev = append(rev, idx)
		if idx == fromIdx {
			break
		}
		idx = c.cameFrom[idx]
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// MergePathIdx collapses collinear runs in an index path to
// [endpoint, turn, ..., turn, endpoint].
func MergePathIdx(c *Context, path []int) []int {
	if len(path) < 3 {
		return path
	}
	out := []int{path[0]}
	px, py := c.XY(path[0])
	cx, cy := c.XY(path[1])
	dx, dy := cx-px, cy-py
	for i := 2; i < len(path); i++ {
		nx, ny := c.XY(path[i])
		ndx, ndy := nx-cx, ny-cy
		if ndx != dx || ndy != dy {
			out = append(out, path[i-1])
			dx, dy = ndx, ndy
		}
		cx, cy = nx, ny
	}
	out = append(out, path[len(path)-1])
	return out
}
