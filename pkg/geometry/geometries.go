package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// node is the state of a Geometries composite: bag before the hierarchy is
// built, leaf or split after
type node interface {
	children() []Intersectable
}

// bag is an unbuilt flat list of primitives and nested composites
type bag struct {
	items []Intersectable
}

// leaf holds one bounded item, or nothing for an empty hierarchy
type leaf struct {
	item Intersectable
}

// split is an internal hierarchy node with exactly two non-empty halves
type split struct {
	low, high *Geometries
}

func (b bag) children() []Intersectable {
	return b.items
}

func (l leaf) children() []Intersectable {
	if l.item == nil {
		return nil
	}
	return []Intersectable{l.item}
}

func (s split) children() []Intersectable {
	return []Intersectable{s.low, s.high}
}

// Geometries is a composite of primitives and other composites. It starts as
// a flat bag; BuildHierarchy turns it into a bounding volume hierarchy over
// its flattened primitives. Adding or removing items drops it back to a bag.
type Geometries struct {
	state node

	// Only set once built
	box       core.AABB
	bounded   bool
	unbounded []Intersectable
}

// NewGeometries creates an unbuilt composite
func NewGeometries(items ...Intersectable) *Geometries {
	g := &Geometries{state: bag{}}
	g.Add(items...)
	return g
}

// Add appends items. A built hierarchy is flattened back into a bag first.
func (g *Geometries) Add(items ...Intersectable) {
	b := g.unbuild()
	for _, item := range items {
		if item != nil {
			b.items = append(b.items, item)
		}
	}
	g.state = b
}

// Remove deletes the first occurrence of item from the top-level items or
// from a nested composite, reporting whether anything was removed. Building
// flattens nested composites, so a composite that is no longer present as an
// item is removed by deleting each of its primitives. Nothing is removed
// unless all of them are present.
func (g *Geometries) Remove(item Intersectable) bool {
	b := g.unbuild()
	if b.remove(item) {
		g.state = b
		return true
	}

	composite, ok := item.(*Geometries)
	if !ok || composite == g {
		return false
	}
	primitives := composite.Primitives()
	if len(primitives) == 0 || !containsAll(g.Primitives(), primitives) {
		return false
	}
	for _, p := range primitives {
		b.remove(p)
	}
	g.state = b
	return true
}

// remove deletes the first occurrence of item, searching nested composites
// after the top-level items
func (b *bag) remove(item Intersectable) bool {
	for i, it := range b.items {
		if it == item {
			b.items = append(b.items[:i:i], b.items[i+1:]...)
			return true
		}
	}
	for _, it := range b.items {
		if nested, ok := it.(*Geometries); ok && nested.Remove(item) {
			return true
		}
	}
	return false
}

// containsAll reports whether every element of want occurs in have, counting
// repeats
func containsAll(have, want []Intersectable) bool {
	counts := make(map[Intersectable]int, len(have))
	for _, it := range have {
		counts[it]++
	}
	for _, it := range want {
		if counts[it] == 0 {
			return false
		}
		counts[it]--
	}
	return true
}

// unbuild returns the contents as a bag, flattening a built hierarchy
func (g *Geometries) unbuild() bag {
	if b, ok := g.state.(bag); ok {
		return b
	}
	b := bag{items: g.Primitives()}
	g.state, g.box, g.bounded, g.unbounded = b, core.AABB{}, false, nil
	return b
}

// IsBuilt reports whether BuildHierarchy has run since the last change
func (g *Geometries) IsBuilt() bool {
	_, isBag := g.state.(bag)
	return !isBag
}

// Primitives returns every non-composite item, recursively, in traversal order
func (g *Geometries) Primitives() []Intersectable {
	var result []Intersectable
	g.collectPrimitives(&result)
	return result
}

func (g *Geometries) collectPrimitives(result *[]Intersectable) {
	*result = append(*result, g.unbounded...)
	for _, child := range g.state.children() {
		if nested, ok := child.(*Geometries); ok {
			nested.collectPrimitives(result)
		} else {
			*result = append(*result, child)
		}
	}
}

// Unbounded returns the primitives that have no bounding box. They are
// tested against every ray.
func (g *Geometries) Unbounded() []Intersectable {
	var result []Intersectable
	for _, p := range g.Primitives() {
		if _, ok := p.BoundingBox(); !ok {
			result = append(result, p)
		}
	}
	return result
}

// BoundingBox merges the boxes of all bounded primitives.
// It returns false when there are none.
func (g *Geometries) BoundingBox() (core.AABB, bool) {
	if g.IsBuilt() {
		return g.box, g.bounded
	}
	var box core.AABB
	bounded := false
	for _, item := range g.state.children() {
		b, ok := item.BoundingBox()
		if !ok {
			continue
		}
		if bounded {
			box = box.Union(b)
		} else {
			box, bounded = b, true
		}
	}
	return box, bounded
}

// FindIntersections collects the intersections of every item. A built
// hierarchy skips subtrees whose box the ray misses; unbounded primitives are
// always tested.
func (g *Geometries) FindIntersections(ray core.Ray) []GeoPoint {
	var points []GeoPoint
	if !g.IsBuilt() {
		for _, item := range g.state.children() {
			points = append(points, item.FindIntersections(ray)...)
		}
		return points
	}

	for _, item := range g.unbounded {
		points = append(points, item.FindIntersections(ray)...)
	}
	return g.findBounded(ray, points)
}

func (g *Geometries) findBounded(ray core.Ray, points []GeoPoint) []GeoPoint {
	if !g.bounded || !g.box.Hit(ray) {
		return points
	}
	switch s := g.state.(type) {
	case leaf:
		points = append(points, s.item.FindIntersections(ray)...)
	case split:
		points = s.low.findBounded(ray, points)
		points = s.high.findBounded(ray, points)
	}
	return points
}

// BuildHierarchy flattens the composite and builds a binary bounding volume
// hierarchy over its bounded primitives. Unbounded primitives are kept aside
// at the root.
func (g *Geometries) BuildHierarchy() {
	var finite, unbounded []Intersectable
	for _, p := range g.Primitives() {
		if _, ok := p.BoundingBox(); ok {
			finite = append(finite, p)
		} else {
			unbounded = append(unbounded, p)
		}
	}

	root := buildNode(finite)
	g.state, g.box, g.bounded = root.state, root.box, root.bounded
	g.unbounded = unbounded
}

// buildNode recursively splits bounded items until every leaf holds one
func buildNode(items []Intersectable) *Geometries {
	switch len(items) {
	case 0:
		return &Geometries{state: leaf{}}
	case 1:
		box, _ := items[0].BoundingBox()
		return &Geometries{state: leaf{item: items[0]}, box: box, bounded: true}
	}

	box, _ := items[0].BoundingBox()
	for _, item := range items[1:] {
		b, _ := item.BoundingBox()
		box = box.Union(b)
	}

	low, high := splitItems(items, box)
	return &Geometries{
		state:   split{low: buildNode(low), high: buildNode(high)},
		box:     box,
		bounded: true,
	}
}

// splitItems partitions at the box midpoint along each axis and keeps the
// most balanced partition. Ties prefer x, then y, then z.
func splitItems(items []Intersectable, box core.AABB) (low, high []Intersectable) {
	bestDiff := -1
	for axis := 0; axis < 3; axis++ {
		l, h := partitionAxis(items, axis, box.Mid(axis))
		diff := len(l) - len(h)
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			low, high, bestDiff = l, h, diff
		}
	}
	return low, high
}

// partitionAxis assigns each item to the half its box overlaps more. If a
// half ends up empty, the item reaching furthest towards it is moved over.
func partitionAxis(items []Intersectable, axis int, mid float64) (low, high []Intersectable) {
	for _, item := range items {
		b, _ := item.BoundingBox()
		lo, hi := b.Min.Axis(axis), b.Max.Axis(axis)
		switch {
		case hi < mid:
			low = append(low, item)
		case lo > mid:
			high = append(high, item)
		case hi-mid > mid-lo:
			high = append(high, item)
		default:
			low = append(low, item)
		}
	}

	switch {
	case len(low) == 0:
		i := extremal(high, func(b core.AABB) float64 { return -b.Min.Axis(axis) })
		low = []Intersectable{high[i]}
		high = append(high[:i:i], high[i+1:]...)
	case len(high) == 0:
		i := extremal(low, func(b core.AABB) float64 { return b.Max.Axis(axis) })
		high = []Intersectable{low[i]}
		low = append(low[:i:i], low[i+1:]...)
	}
	return low, high
}

// extremal returns the index of the first item with the largest key
func extremal(items []Intersectable, key func(core.AABB) float64) int {
	best, bestKey := 0, math.Inf(-1)
	for i, item := range items {
		b, _ := item.BoundingBox()
		if k := key(b); k > bestKey {
			best, bestKey = i, k
		}
	}
	return best
}

// Equal reports whether two composites have the same shape: the same
// children in the same order, nested composites compared recursively.
// A built hierarchy and a hand-nested bag of the same layout are equal.
func (g *Geometries) Equal(other *Geometries) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	a, b := g.state.children(), other.state.children()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ga, okA := a[i].(*Geometries)
		gb, okB := b[i].(*Geometries)
		switch {
		case okA && okB:
			if !ga.Equal(gb) {
				return false
			}
		case a[i] != b[i]:
			return false
		}
	}
	return true
}

// HierarchyStats describes the shape of a built hierarchy
type HierarchyStats struct {
	TotalNodes  int
	LeafNodes   int
	MaxDepth    int
	AvgDepth    float64
	Primitives  int
	Unbounded   int
	InnerNodes  int
	EmptyLeaves int
}

// Stats walks the hierarchy and returns its shape. An unbuilt composite
// reports its flattened primitive count only.
func (g *Geometries) Stats() HierarchyStats {
	stats := HierarchyStats{Unbounded: len(g.unbounded)}
	if !g.IsBuilt() {
		stats.Primitives = len(g.Primitives())
		return stats
	}

	g.collectStats(0, &stats)
	stats.Primitives += stats.Unbounded
	if stats.LeafNodes > 0 {
		stats.AvgDepth /= float64(stats.LeafNodes)
	}
	return stats
}

func (g *Geometries) collectStats(depth int, stats *HierarchyStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	switch s := g.state.(type) {
	case leaf:
		if s.item == nil {
			stats.EmptyLeaves++
			return
		}
		stats.LeafNodes++
		stats.Primitives++
		stats.AvgDepth += float64(depth)
	case split:
		stats.InnerNodes++
		s.low.collectStats(depth+1, stats)
		s.high.collectStats(depth+1, stats)
	}
}
