// Package router implements the orthogonal edge router: port selection,
// candidate expansion, the strict retry schedule, deterministic self-loops,
// usage recording and label-line selection described in spec.md §4.3.
package router

import (
	"github.com/raiscui/beautiful-mermaid/astar"
	"github.com/raiscui/beautiful-mermaid/graph"
)

// Router bundles one layout attempt's shared A* context and usage tables.
// A fresh Router (and the astar.Context/SegmentUsage it wraps) is built per
// render — never shared across renders (spec.md §5).
type Router struct {
	AStar      *astar.Context
	Dir        graph.GridDirection
	Usage      *astar.SegmentUsage
	UsedPoints []int
	ASCII      bool
}

// NewRouter builds a router over a grid of the given stride/height.
func NewRouter(stride, height int, dir graph.GridDirection, ascii bool) *Router {
	ac := astar.NewContext(stride, height)
	return &Router{
		AStar:      ac,
		Dir:        dir,
		Usage:      astar.NewSegmentUsage(),
		UsedPoints: make([]int, stride*height),
		ASCII:      ascii,
	}
}

// dirPair is a candidate (startDir, endDir) pair from the octant decision
// table.
type dirPair struct {
	start, end graph.Direction
}

// determineStartAndEndDir returns the preferred and alternative port pairs
// for the vector (dx, dy) from source to target, per spec.md §4.3's
// "fixed decision table enumerated per octant".
func determineStartAndEndDir(dir graph.GridDirection, dx, dy int) (preferred, alternative dirPair) {
	switch dir {
	case graph.LR:
		switch {
		case dx > 0 && abs(dx) >= abs(dy):
			return dirPair{graph.Right, graph.Left}, dirPair{graph.Down, graph.Up}
		case dx < 0 && abs(dx) >= abs(dy):
			return dirPair{graph.Left, graph.Right}, dirPair{graph.Down, graph.Up}
		case dy > 0:
			return dirPair{graph.Down, graph.Up}, dirPair{graph.Right, graph.Left}
		default:
			return dirPair{graph.Up, graph.Down}, dirPair{graph.Right, graph.Left}
		}
	default: // TD
		switch {
		case dy > 0 && abs(dy) >= abs(dx):
			return dirPair{graph.Down, graph.Up}, dirPair{graph.Right, graph.Left}
		case dy < 0 && abs(dy) >= abs(dx):
			return dirPair{graph.Up, graph.Down}, dirPair{graph.Right, graph.Left}
		case dx > 0:
			return dirPair{graph.Right, graph.Left}, dirPair{graph.Down, graph.Up}
		default:
			return dirPair{graph.Left, graph.Right}, dirPair{graph.Down, graph.Up}
		}
	}
}

// selfLoopPair returns the canned start/end direction pair for a
// self-referencing edge.
func selfLoopPair(dir graph.GridDirection) dirPair {
	if dir == graph.LR {
		return dirPair{graph.Right, graph.Down}
	}
	return dirPair{graph.Down, graph.Right}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// orthogonalDirs is the candidate-expansion universe; diagonals are
// explicitly excluded because they hug node corners and produce '┼' after
// compositing (spec.md §4.3).
var orthogonalDirs = []graph.Direction{graph.Right, graph.Left, graph.Down, graph.Up}

func expandSet(preferred, alternative graph.Direction) []graph.Direction {
	seen := map[graph.Direction]bool{preferred: true, alternative: true}
	out := []graph.Direction{preferred, alternative}
	for _, d := range orthogonalDirs {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// Candidate is one (startDir, endDir) port choice together with the routed
// path, once found.
type Candidate struct {
	StartDir, EndDir graph.Direction
	Path             []int
}

func candidatePairs(starts, ends []graph.Direction) []dirPair {
	out := make([]dirPair, 0, len(starts)*len(ends))
	for _, s := range starts {
		for _, e := range ends {
			out = append(out, dirPair{s, e})
		}
	}
	return out
}

// portPoint returns the grid index one step outside the node's border cell
// in direction d, given the node's port cell index.
func portPoint(ac *astar.Context, portIdx int, d graph.Direction) (int, bool) {
	x, y := ac.XY(portIdx)
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if nx < 0 || ny < 0 || nx >= ac.Stride || ny >= ac.Height {
		return 0, false
	}
	return ac.Idx(nx, ny), true
}

// candidateCost scores a found path per spec.md §4.3: merged-segment count
// plus diagonal-port and boundary-port penalties. Since orthogonalDirs
// excludes diagonals, the port penalty is always 0 here; it is retained so
// a future caller supplying diagonal candidates still scores correctly.
func candidateCost(ac *astar.Context, merged []int, startDir, endDir graph.Direction) int {
	turns := len(merged) - 2
	if turns < 0 {
		turns = 0
	}
	cost := turns + 2 // spec.md §4.3: "number of merged segments (turns + 2)"
	if isDiagonal(startDir) {
		cost += 100
	}
	if isDiagonal(endDir) {
		cost += 100
	}
	for _, idx := range []int{merged[0], merged[len(merged)-1]} {
		x, y := ac.XY(idx)
		if x == 0 || y == 0 {
			cost += 200
		}
	}
	return cost
}

func isDiagonal(d graph.Direction) bool { return d.IsDiagonal() }

// Bounds schedule constants (spec.md §4.3).
var fastSchedule = []int{12, 24, 48}
var fullSchedule = []int{12, 24, 48, 96, 192, 384}

func boundsAt(ac *astar.Context, center int, radius int) astar.Bounds {
	cx, cy := ac.XY(center)
	minX, maxX := cx-radius, cx+radius
	minY, maxY := cy-radius, cy+radius
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= ac.Stride {
		maxX = ac.Stride - 1
	}
	if maxY >= ac.Height {
		maxY = ac.Height - 1
	}
	return astar.Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// BuildSelfLoop constructs a deterministic rectangular excursion for a
// self-referencing edge, trying clearance 1..12 and accepting the first
// shape that leaves the box, never forms a crossing, and respects
// segment-sharing (spec.md §4.3).
func (r *Router) BuildSelfLoop(portIdx int, edgeFromID, edgeToID int) (Candidate, bool) {
	pair := selfLoopPair(r.Dir)
	x, y := r.AStar.XY(portIdx)
	sdx, sdy := pair.start.Delta()
	edx, edy := pair.end.Delta()

	for clearance := 1; clearance <= 12; clearance++ {
		outX, outY := x+sdx*clearance, y+sdy*clearance
		cornerX, cornerY := outX+edx*clearance, outY+edy*clearance
		pts := []struct{ x, y int }{{x, y}, {outX, outY}, {cornerX, cornerY}, {x + edx*clearance, y + edy*clearance}, {x, y}}
		path, ok := r.buildRectPath(pts)
		if !ok {
			continue
		}
		merged := astar.MergePathIdx(r.AStar, path)
		if len(merged) < 4 {
			continue
		}
		if !r.selfLoopRespectsUsage(path) {
			continue
		}
		astar.RecordPath(r.AStar, r.Usage, r.UsedPoints, path, edgeFromID, edgeToID)
		return Candidate{StartDir: pair.start, EndDir: pair.end, Path: merged}, true
	}
	return Candidate{}, false
}

func (r *Router) buildRectPath(pts []struct{ x, y int }) ([]int, bool) {
	var out []int
	for i, p := range pts {
		if p.x < 0 || p.y < 0 || p.x >= r.AStar.Stride || p.y >= r.AStar.Height {
			return nil, false
		}
		idx := r.AStar.Idx(p.x, p.y)
		if i > 0 {
			out = appendLine(r.AStar, out, idx)
		} else {
			out = append(out, idx)
		}
	}
	return out, true
}

// appendLine walks the straight line from the last point of path to idx,
// appending intermediate grid indices.
func appendLine(ac *astar.Context, path []int, idx int) []int {
	if len(path) == 0 {
		return append(path, idx)
	}
	fx, fy := ac.XY(path[len(path)-1])
	tx, ty := ac.XY(idx)
	dx, dy := sign(tx-fx), sign(ty-fy)
	x, y := fx, fy
	for x != tx || y != ty {
		x += dx
		y += dy
		path = append(path, ac.Idx(x, y))
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (r *Router) selfLoopRespectsUsage(path []int) bool {
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		bitAB, bitBA := bitsBetween(r.AStar, a, b)
		if bitAB == 0 {
			continue
		}
		if hasBothAxes(r.UsedPoints[a] | bitAB) {
			return false
		}
		if hasBothAxes(r.UsedPoints[b] | bitBA) {
			return false
		}
		key := astar.SegmentKey(a, b)
		if su, ok := r.Usage.Get(key); ok && su.UsedAsMiddle {
			return false
		}
	}
	return true
}

func bitsBetween(ac *astar.Context, a, b int) (int, int) {
	ax, ay := ac.XY(a)
	bx, by := ac.XY(b)
	switch {
	case bx == ax-1:
		return astar.BitLeft, astar.BitRight
	case bx == ax+1:
		return astar.BitRight, astar.BitLeft
	case by == ay-1:
		return astar.BitUp, astar.BitDown
	case by == ay+1:
		return astar.BitDown, astar.BitUp
	default:
		return 0, 0
	}
}

func hasBothAxes(mask int) bool {
	return mask&(astar.BitLeft|astar.BitRight) == (astar.BitLeft|astar.BitRight) &&
		mask&(astar.BitUp|astar.BitDown) == (astar.BitUp|astar.BitDown)
}
