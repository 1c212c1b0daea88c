package router

import (
	"github.com/raiscui/beautiful-mermaid/astar"
	"github.com/raiscui/beautiful-mermaid/graph"
)

// boxPort returns the grid index of the border cell of box b that a path
// departs from/arrives at when using direction d as its port side.
func boxPort(ac *astar.Context, b Box, d graph.Direction) int {
	var x, y int
	switch d {
	case graph.Right:
		x, y = b.X1, (b.Y0+b.Y1)/2
	case graph.Left:
		x, y = b.X0, (b.Y0+b.Y1)/2
	case graph.Up:
		x, y = (b.X0+b.X1)/2, b.Y0
	case graph.Down:
		x, y = (b.X0+b.X1)/2, b.Y1
	default:
		x, y = (b.X0+b.X1)/2, (b.Y0+b.Y1)/2
	}
	return ac.Idx(x, y)
}

func centerOf(b Box) (int, int) { return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2 }

// SelfLoopPort returns the box border cell a self-referencing edge departs
// from, using the same canned direction pair BuildSelfLoop consumes.
func SelfLoopPort(ac *astar.Context, b Box, dir graph.GridDirection) int {
	return boxPort(ac, b, selfLoopPair(dir).start)
}

// RouteEdgeBoxes finds a path between two node boxes, deriving the actual
// border port for each candidate (startDir, endDir) pair from the boxes
// themselves and trying progressively wider direction sets and search
// bounds per the six-step schedule of spec.md §4.3. Returns false if every
// step fails.
func (r *Router) RouteEdgeBoxes(fromBox, toBox Box, edgeFromID, edgeToID int) (Candidate, bool) {
	fcx, fcy := centerOf(fromBox)
	tcx, tcy := centerOf(toBox)
	preferred, alternative := determineStartAndEndDir(r.Dir, tcx-fcx, tcy-fcy)

	base := []dirPair{preferred, alternative}
	expandedStart := candidatePairs(expandSet(preferred.start, alternative.start), []graph.Direction{preferred.end, alternative.end})
	expandedAll := candidatePairs(expandSet(preferred.start, alternative.start), expandSet(preferred.end, alternative.end))

	steps := []struct {
		pairs    []dirPair
		schedule []int
	}{
		{base, fastSchedule},
		{expandedStart, fastSchedule},
		{expandedAll, fastSchedule},
		{base, fullSchedule},
		{expandedStart, fullSchedule},
		{expandedAll, fullSchedule},
	}

	var best Candidate
	var bestFull []int // unit-step path behind best, for usage recording
	bestCost := -1
	for _, step := range steps {
		for _, radius := range step.schedule {
			for _, pair := range step.pairs {
				fromPortIdx := boxPort(r.AStar, fromBox, pair.start)
				toPortIdx := boxPort(r.AStar, toBox, pair.end)
				startIdx, ok1 := portPoint(r.AStar, fromPortIdx, pair.start)
				endIdx, ok2 := portPoint(r.AStar, toPortIdx, pair.end)
				if !ok1 || !ok2 || startIdx == endIdx {
					continue
				}
				bounds := boundsAt(r.AStar, fromPortIdx, radius)
				cons := astar.StrictConstraints{
					UsedPoints:   r.UsedPoints,
					Segments:     r.Usage,
					RouteFromIdx: fromPortIdx,
					RouteToIdx:   toPortIdx,
					EdgeFromID:   edgeFromID,
					EdgeToID:     edgeToID,
				}
				raw, ok := r.AStar.GetPathStrict(startIdx, endIdx, bounds, cons)
				if !ok {
					continue
				}
				full := append([]int{fromPortIdx}, raw...)
				full = append(full, toPortIdx)
				merged := astar.MergePathIdx(r.AStar, full)
				if len(merged) < 2 {
					continue
				}
				cost := candidateCost(r.AStar, merged, pair.start, pair.end)
				if bestCost == -1 || cost < bestCost {
					bestCost = cost
					best = Candidate{StartDir: pair.start, EndDir: pair.end, Path: merged}
					bestFull = full
				}
			}
			if bestCost != -1 {
				astar.RecordPath(r.AStar, r.Usage, r.UsedPoints, bestFull, edgeFromID, edgeToID)
				return best, true
			}
		}
	}
	return Candidate{}, false
}
