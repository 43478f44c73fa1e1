package slicer

import (
	"sort"

	"github.com/asim/quadtree"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/geometry"
)

// stitchCandidates is how many quadtree neighbors are pulled per hop
// before re-sorting by exact distance. The tree's KNearest ordering is
// approximate, so the pick is always re-verified.
const stitchCandidates = 16

var zeroPoint = quadtree.NewPoint(0, 0, nil)

// stitch reorders an unordered intersection-point pool into a path via
// greedy nearest-neighbor hopping: starting from the first collected
// point, repeatedly move to the closest not-yet-visited point. The
// heuristic can join disjoint loops on non-convex or non-manifold
// slices; that lenient behavior is deliberately preserved because
// downstream consumers key off the resulting path shape.
func stitch(points []geometry.Vector3) []geometry.Vector3 {
	tree := newPointTree(points)

	ordered := make([]geometry.Vector3, 0, len(points))
	current := points[0]
	tree.remove(current, 0)
	ordered = append(ordered, current)

	for len(ordered) < len(points) {
		idx, ok := tree.nearest(current)
		if !ok {
			break
		}
		next := points[idx]
		tree.remove(next, idx)
		ordered = append(ordered, next)
		current = next
	}
	return ordered
}

// pointTree is a quadtree over the XY coordinates of a single slice's
// point pool. All points share one Z, so 2D distance is the 3D one.
// Coincident points (shared triangle edges emit the same intersection
// twice) collapse into one tree node carrying the set of pool indices.
type pointTree struct {
	tree       *quadtree.QuadTree
	halfWidth  float64
	halfHeight float64
}

func newPointTree(points []geometry.Vector3) *pointTree {
	bounds := geometry.NewBoundingBox()
	for _, p := range points {
		bounds.Extend(p)
	}
	center := bounds.Center()
	size := bounds.Size()

	// Margin keeps boundary points inside the root cell.
	halfWidth := size.X/2 + 1
	halfHeight := size.Y/2 + 1

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(center.X, center.Y, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))

	pt := &pointTree{
		tree:       quadtree.New(aabb, 0, nil),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
	for i, p := range points {
		pt.insert(p, i)
	}
	return pt
}

func (pt *pointTree) insert(p geometry.Vector3, index int) {
	probe := quadtree.NewPoint(p.X, p.Y, nil)
	existing := pt.tree.KNearest(quadtree.NewAABB(probe, zeroPoint), 1, nil)
	if len(existing) > 0 {
		x, y := existing[0].Coordinates()
		if x == p.X && y == p.Y {
			indices := existing[0].Data().(map[int]struct{})
			indices[index] = struct{}{}
			return
		}
	}
	pt.tree.Insert(quadtree.NewPoint(p.X, p.Y, map[int]struct{}{index: {}}))
}

func (pt *pointTree) remove(p geometry.Vector3, index int) {
	probe := quadtree.NewPoint(p.X, p.Y, nil)
	found := pt.tree.KNearest(quadtree.NewAABB(probe, zeroPoint), 1, nil)
	if len(found) == 0 {
		return
	}
	x, y := found[0].Coordinates()
	if x != p.X || y != p.Y {
		return
	}
	indices := found[0].Data().(map[int]struct{})
	delete(indices, index)
	if len(indices) == 0 {
		pt.tree.Remove(found[0])
	}
}

// nearest returns a pool index of the closest remaining point to p.
func (pt *pointTree) nearest(p geometry.Vector3) (int, bool) {
	searchArea := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(pt.halfWidth*2, pt.halfHeight*2, nil))
	candidates := pt.tree.KNearest(searchArea, stitchCandidates, nil)
	if len(candidates) == 0 {
		return 0, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		return squaredDistance(candidates[i], p) < squaredDistance(candidates[j], p)
	})

	indices := candidates[0].Data().(map[int]struct{})
	for idx := range indices {
		return idx, true
	}
	return 0, false
}

func squaredDistance(candidate *quadtree.Point, p geometry.Vector3) float64 {
	x, y := candidate.Coordinates()
	dx, dy := x-p.X, y-p.Y
	return dx*dx + dy*dy
}
