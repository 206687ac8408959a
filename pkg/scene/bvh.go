package scene

import (
	"sort"

	"github.com/lumenrender/corept/pkg/core"
)

// leafThreshold caps the number of primitives stored in a single BVH leaf
// before the builder splits again.
const leafThreshold = 4

// bvhNode is one node of the acceleration structure: either an interior
// node with two children, or a leaf listing primitive indices directly.
type bvhNode struct {
	bounds      AABB
	left, right *bvhNode
	primIndices []int
}

func (n *bvhNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// BVH is a median-split bounding volume hierarchy over a primitive list's
// bounding boxes. It does not own the primitives; callers resolve a
// reported index back into their own shape list.
type BVH struct {
	root   *bvhNode
	Center core.Vec3
	Radius float64
}

// BuildBVH constructs a BVH over the given bounding boxes. An empty input
// (a scene with no shapes) yields a BVH whose root is nil; Traverse is a
// no-op against it.
func BuildBVH(bounds []AABB) *BVH {
	if len(bounds) == 0 {
		return &BVH{}
	}

	indices := make([]int, len(bounds))
	for i := range indices {
		indices[i] = i
	}
	root := buildNode(bounds, indices)

	var worldBox AABB
	if len(bounds) > 0 {
		worldBox = bounds[0]
		for _, b := range bounds[1:] {
			worldBox = Union(worldBox, b)
		}
	}
	center := worldBox.Centroid()
	radius := worldBox.Max.Subtract(center).Length()
	return &BVH{root: root, Center: center, Radius: radius}
}

func buildNode(bounds []AABB, indices []int) *bvhNode {
	box := bounds[indices[0]]
	for _, i := range indices[1:] {
		box = Union(box, bounds[i])
	}

	if len(indices) <= leafThreshold {
		return &bvhNode{bounds: box, primIndices: indices}
	}

	axis := box.LongestAxis()
	sort.Slice(indices, func(a, b int) bool {
		ca := bounds[indices[a]].Centroid()
		cb := bounds[indices[b]].Centroid()
		switch axis {
		case 0:
			return ca.X < cb.X
		case 1:
			return ca.Y < cb.Y
		default:
			return ca.Z < cb.Z
		}
	})

	mid := len(indices) / 2
	left := buildNode(bounds, indices[:mid])
	right := buildNode(bounds, indices[mid:])
	return &bvhNode{bounds: box, left: left, right: right}
}

// Traverse walks the BVH for a ray, calling testPrim for every candidate
// primitive index whose box the ray could hit, narrowing tMax as testPrim
// reports closer hits. testPrim returns the (possibly shrunk) tMax to use
// for the remainder of the traversal.
func (b *BVH) Traverse(ray core.Ray, tMin, tMax float64, testPrim func(primIndex int, tMax float64) float64) {
	if b.root == nil {
		return
	}
	b.traverseNode(b.root, ray, tMin, tMax, testPrim)
}

func (b *BVH) traverseNode(n *bvhNode, ray core.Ray, tMin, tMax float64, testPrim func(int, float64) float64) float64 {
	if !n.bounds.Hit(ray, tMin, tMax) {
		return tMax
	}
	if n.isLeaf() {
		for _, idx := range n.primIndices {
			tMax = testPrim(idx, tMax)
		}
		return tMax
	}
	tMax = b.traverseNode(n.left, ray, tMin, tMax, testPrim)
	tMax = b.traverseNode(n.right, ray, tMin, tMax, testPrim)
	return tMax
}
