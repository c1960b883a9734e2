package hitbox

import (
	"fmt"
	"math"
	"sort"

	"github.com/akmonengine/hitbox/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Types
// ============================================================================

// CellKey - coordinates of a cell in 2D space
type CellKey struct {
	X, Y int
}

// Cell - indices of the volumes overlapping a cell
type Cell struct {
	volumeIndices []int
}

// Pair - two volumes potentially colliding, A registered before B
type Pair struct {
	A *actor.Volume
	B *actor.Volume
}

// SpatialGrid - uniform hashed grid used to prune broad phase pairs.
// Several cells may share a bucket: buckets only narrow the search and
// every candidate is still checked with its bounds.
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid - creates a grid of numCells buckets (rounded up to a power of two).
// cellSize must be positive and finite.
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		panic(fmt.Sprintf("hitbox: invalid grid cell size %v", cellSize))
	}
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].volumeIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - rounds up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - adds a volume index in every bucket its bounds cover
func (sg *SpatialGrid) Insert(volumeIndex int, bounds actor.AABB) {
	sg.forEachBucket(bounds, func(cellIdx int) {
		indices := sg.cells[cellIdx].volumeIndices
		// Neighbouring cells may hash to the same bucket
		if n := len(indices); n > 0 && indices[n-1] == volumeIndex {
			return
		}
		sg.cells[cellIdx].volumeIndices = append(indices, volumeIndex)
	})
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].volumeIndices = sg.cells[i].volumeIndices[:0]
	}
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].volumeIndices) > 1 {
			sort.Ints(sg.cells[i].volumeIndices)
		}
	}
}

// FindPairs - every pair of indexed volumes whose bounds overlap, each pair
// once, ordered by the index of A then B
func (sg *SpatialGrid) FindPairs(volumes []*actor.Volume) []Pair {
	pairs := make([]Pair, 0, len(volumes)/2)
	seen := make([]bool, len(volumes))

	for volumeIdx := 0; volumeIdx < len(volumes); volumeIdx++ {
		volumeA := volumes[volumeIdx]
		boundsA := volumeA.Bounds()
		clear(seen)

		var candidates []int
		sg.forEachBucket(boundsA, func(cellIdx int) {
			for _, otherIdx := range sg.cells[cellIdx].volumeIndices {
				// Deterministic order, avoids (A,B) and (B,A)
				if otherIdx <= volumeIdx || seen[otherIdx] {
					continue
				}
				seen[otherIdx] = true
				candidates = append(candidates, otherIdx)
			}
		})
		sort.Ints(candidates)

		for _, otherIdx := range candidates {
			volumeB := volumes[otherIdx]
			if boundsA.Overlaps(volumeB.Bounds()) {
				pairs = append(pairs, Pair{A: volumeA, B: volumeB})
			}
		}
	}

	return pairs
}

func (sg *SpatialGrid) forEachBucket(bounds actor.AABB, fn func(cellIdx int)) {
	minCell := sg.worldToCell(bounds.Min)
	maxCell := sg.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			fn(sg.hashCell(CellKey{x, y}))
		}
	}
}

// worldToCell - converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec2) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
	}
}

// hashCell - hashes a cell to a bucket index
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663)
	return h & sg.cellMask
}
