// SPDX-License-Identifier: MIT
package partition

import "github.com/sgualandi/rlfcoloring/graph"

// Membership records which of the three disjoint states a vertex is
// currently in.
type Membership uint8

const (
	// InP marks a vertex as a candidate for the current color class.
	InP Membership = iota
	// InU marks a vertex excluded from the current color class because
	// it is adjacent to a vertex already placed in it.
	InU
	// Colored marks a vertex that has been assigned a final color and
	// removed from further consideration.
	Colored
)

// Mode selects how MoveNeighbors maintains the degree-into-U counters:
// Sparse keeps them eagerly up to date on every move, Dense leaves them
// unmaintained and relies on SelectVertexDense to compute them lazily.
type Mode uint8

const (
	// Sparse eagerly maintains degU on every neighbor move.
	Sparse Mode = iota
	// Dense skips the eager degU maintenance.
	Dense
)

// adjCell is one entry in a vertex's private adjacency list: the id of the
// neighbor it represents, the slot index of the mirror entry in that
// neighbor's own adjacency list, and the prev/next links of this vertex's
// chain. A slot index of -1 terminates a chain.
type adjCell struct {
	other int32
	sib   int32
	prev  int32
	next  int32
}

// vertexAdj is one vertex's private adjacency chain. It starts out holding
// every graph neighbor and shrinks permanently as neighbors get colored
// and cleared.
type vertexAdj struct {
	cells []adjCell
	head  int32
	tail  int32
	alive int32
}

// PartitionedVertexList is the P/U partitioning of a graph's vertices, used
// by the RLF-Plus and RLF-Adaptive color-class construction loops.
type PartitionedVertexList struct {
	n    int
	adj  []vertexAdj
	degU []int32
	mem  []Membership
	col  []int

	// prevM/nextM chain real vertex ids together within whichever of P or
	// U they currently belong to. Index n is the P sentinel, index n+1
	// is the U sentinel; both lists are circular through their sentinel.
	prevM, nextM []int32

	verticesLeft int
	edgesLeft    int
}

const (
	sentinelOffsetP = 0
	sentinelOffsetU = 1
)

func (p *PartitionedVertexList) pSentinel() int32 { return int32(p.n + sentinelOffsetP) }
func (p *PartitionedVertexList) uSentinel() int32 { return int32(p.n + sentinelOffsetU) }

// New builds a PartitionedVertexList over every vertex of g, with every
// vertex initially in P.
//
// Complexity: O(n + m).
func New(g *graph.Graph) (*PartitionedVertexList, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Frozen() {
		return nil, ErrNotFrozen
	}
	n := g.NVertices()

	p := &PartitionedVertexList{
		n:            n,
		adj:          make([]vertexAdj, n),
		degU:         make([]int32, n),
		mem:          make([]Membership, n),
		col:          make([]int, n),
		prevM:        make([]int32, n+2),
		nextM:        make([]int32, n+2),
		verticesLeft: n,
		edgesLeft:    g.NEdges(),
	}

	// Each vertex's cells mirror g.Neighbors(v) position-for-position; the
	// sibling slot is found through a per-vertex map from neighbor id to
	// position, built once per vertex below.
	indexOf := make([]map[int32]int32, n)
	for v := 0; v < n; v++ {
		nb := g.Neighbors(v)
		cells := make([]adjCell, len(nb))
		idx := make(map[int32]int32, len(nb))
		for i, w := range nb {
			idx[w] = int32(i)
		}
		for i := range cells {
			prev := int32(i - 1)
			next := int32(i + 1)
			if i == 0 {
				prev = -1
			}
			if i == len(cells)-1 {
				next = -1
			}
			cells[i] = adjCell{other: nb[i], prev: prev, next: next}
		}
		head := int32(-1)
		tail := int32(-1)
		if len(cells) > 0 {
			head, tail = 0, int32(len(cells)-1)
		}
		p.adj[v] = vertexAdj{cells: cells, head: head, tail: tail, alive: int32(len(cells))}
		indexOf[v] = idx
	}
	for v := 0; v < n; v++ {
		for i := range p.adj[v].cells {
			w := p.adj[v].cells[i].other
			p.adj[v].cells[i].sib = indexOf[w][int32(v)]
		}
	}

	// Chain every vertex into the P list, in id order, anchored through
	// the P sentinel.
	ps := p.pSentinel()
	us := p.uSentinel()
	p.prevM[us], p.nextM[us] = us, us
	if n == 0 {
		p.prevM[ps], p.nextM[ps] = ps, ps
		return p, nil
	}
	p.nextM[ps] = 0
	p.prevM[0] = ps
	for v := 0; v < n-1; v++ {
		p.nextM[v] = int32(v + 1)
		p.prevM[v+1] = int32(v)
	}
	p.nextM[n-1] = ps
	p.prevM[ps] = int32(n - 1)
	return p, nil
}

// N returns the total number of vertices the list was built over.
func (p *PartitionedVertexList) N() int { return p.n }

// Empty reports whether P currently holds no vertices.
func (p *PartitionedVertexList) Empty() bool {
	return p.nextM[p.pSentinel()] == p.pSentinel()
}

// AllColored reports whether every vertex has been colored (P and U both
// empty).
func (p *PartitionedVertexList) AllColored() bool {
	return p.verticesLeft == 0
}

// DegP returns the current live degree of v: the number of neighbors of v
// that have not yet been colored, i.e. still in P or U combined.
func (p *PartitionedVertexList) DegP(v int) int { return int(p.adj[v].alive) }

// DegU returns the eagerly maintained degree-into-U of v. Only meaningful
// in Sparse mode, or right after a SwapUIntoP reset.
func (p *PartitionedVertexList) DegU(v int) int { return int(p.degU[v]) }

// Membership reports whether v is currently in P, U, or colored.
func (p *PartitionedVertexList) Membership(v int) Membership { return p.mem[v] }

// Colors returns the final color assignment, valid once AllColored is
// true. Colors are 1-indexed; 0 means "uncolored".
func (p *PartitionedVertexList) Colors() []int {
	out := make([]int, p.n)
	copy(out, p.col)
	return out
}

// NumVerticesLeft returns the number of not-yet-colored vertices.
func (p *PartitionedVertexList) NumVerticesLeft() int { return p.verticesLeft }

// NumEdgesLeft returns the number of edges with both endpoints not yet
// colored.
func (p *PartitionedVertexList) NumEdgesLeft() int { return p.edgesLeft }

// Density returns the edge density m'/(n'(n'-1)/2) of the subgraph induced
// by the not-yet-colored vertices. It returns -1, which compares below
// every valid density threshold, when fewer than two vertices remain.
func (p *PartitionedVertexList) Density() float64 {
	n := p.verticesLeft
	if n < 2 {
		return -1
	}
	pairs := float64(n) * float64(n-1) / 2.0
	return float64(p.edgesLeft) / pairs
}
