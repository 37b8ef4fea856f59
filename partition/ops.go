// SPDX-License-Identifier: MIT
package partition

import "math/rand"

// listUnlink splices vertex id v out of whichever membership list (P or U)
// it currently sits in.
func (p *PartitionedVertexList) listUnlink(v int32) {
	prev, next := p.prevM[v], p.nextM[v]
	p.nextM[prev] = next
	p.prevM[next] = prev
}

// listAppendTail appends vertex id v to the tail of the list anchored at
// sentinel.
func (p *PartitionedVertexList) listAppendTail(sentinel, v int32) {
	tail := p.prevM[sentinel]
	p.nextM[tail] = v
	p.prevM[v] = tail
	p.nextM[v] = sentinel
	p.prevM[sentinel] = v
}

// adjSkip removes the cell at the given slot out of v's adjacency chain
// and decrements v's alive count. It does not touch the sibling side;
// callers are responsible for skipping the mirror cell too when both
// halves of an edge need to disappear.
func (p *PartitionedVertexList) adjSkip(v int, slot int32) {
	a := &p.adj[v]
	cell := a.cells[slot]
	if cell.prev == -1 {
		a.head = cell.next
	} else {
		a.cells[cell.prev].next = cell.next
	}
	if cell.next == -1 {
		a.tail = cell.prev
	} else {
		a.cells[cell.next].prev = cell.prev
	}
	a.alive--
}

// SetColor assigns color to v. It does not move v between P/U/colored;
// callers must follow it with MoveNeighbors to do that.
func (p *PartitionedVertexList) SetColor(v, color int) {
	p.col[v] = color
}

// MoveNeighbors performs the bookkeeping RLF-Plus and RLF-Adaptive run
// each time a vertex v is added to the current color class: every
// not-yet-colored neighbor of v that is still in P moves to U (since it
// can no longer join this class), then v itself is cleared out of
// everyone's adjacency and removed from P.
//
// In Sparse mode, every vertex's degree-into-U is kept eagerly up to date
// as neighbors move into U; in Dense mode that bookkeeping is skipped and
// SelectVertexDense recomputes it lazily when needed.
//
// Complexity: O(deg(v) + sum of deg(w) for w moved to U).
func (p *PartitionedVertexList) MoveNeighbors(v int, mode Mode) {
	// Walk v's own adjacency chain; it is not mutated by this loop body
	// (only the neighbors' chains and memberships are), so a plain
	// forward walk is safe.
	for slot := p.adj[v].head; slot != -1; slot = p.adj[v].cells[slot].next {
		w := int(p.adj[v].cells[slot].other)
		if p.mem[w] != InP {
			continue
		}
		if mode == Sparse {
			for s2 := p.adj[w].head; s2 != -1; s2 = p.adj[w].cells[s2].next {
				x := int(p.adj[w].cells[s2].other)
				if p.mem[x] == InP {
					p.degU[x]++
				}
			}
		}
		p.listUnlink(int32(w))
		p.listAppendTail(p.uSentinel(), int32(w))
		p.mem[w] = InU
	}

	p.verticesLeft--
	p.edgesLeft -= int(p.adj[v].alive)

	for slot := p.adj[v].head; slot != -1; {
		cell := p.adj[v].cells[slot]
		w := int(cell.other)
		p.adjSkip(w, cell.sib)
		slot = cell.next
	}
	p.adj[v].head, p.adj[v].tail, p.adj[v].alive = -1, -1, 0

	p.listUnlink(int32(v))
	p.mem[v] = Colored
}

// SwapUIntoP transplants every vertex in U into P in O(1) via sentinel
// pointer surgery, then walks the new P list once to flip membership and
// reset degU. Called once per color class, after it closes, to prepare
// the next one.
//
// Complexity: O(|U|).
func (p *PartitionedVertexList) SwapUIntoP() {
	ps, us := p.pSentinel(), p.uSentinel()
	if p.nextM[us] == us {
		return // U is empty, nothing to transplant
	}

	uHead, uTail := p.nextM[us], p.prevM[us]

	pTail := p.prevM[ps]
	p.nextM[pTail] = uHead
	p.prevM[uHead] = pTail
	p.nextM[uTail] = ps
	p.prevM[ps] = uTail

	p.nextM[us], p.prevM[us] = us, us

	for v := uHead; v != ps; v = p.nextM[v] {
		p.mem[v] = InP
		p.degU[v] = 0
	}
}

// MaxDegreePVertex returns the vertex in P with the largest DegP, breaking
// ties with a fair coin flip so repeated equal-degree runs don't always
// favor the lowest id.
//
// Complexity: O(|P|).
func (p *PartitionedVertexList) MaxDegreePVertex(rng *rand.Rand) int {
	ps := p.pSentinel()
	best := p.nextM[ps]
	for v := p.nextM[best]; v != ps; v = p.nextM[v] {
		if p.adj[v].alive > p.adj[best].alive ||
			(p.adj[v].alive == p.adj[best].alive && rng.Intn(2) == 1) {
			best = v
		}
	}
	return int(best)
}

// SelectVertexSparse returns the vertex in P maximizing DegU, with DegP
// ascending as the tiebreak: among candidates with equally many
// already-excluded neighbors, the one with the smallest remaining degree
// leaves the least future work undone.
//
// Complexity: O(|P|). Requires Sparse-mode MoveNeighbors to have kept degU
// current.
func (p *PartitionedVertexList) SelectVertexSparse() int {
	ps := p.pSentinel()
	best := p.nextM[ps]
	for v := p.nextM[best]; v != ps; v = p.nextM[v] {
		if p.degU[v] > p.degU[best] ||
			(p.degU[v] == p.degU[best] && p.adj[v].alive < p.adj[best].alive) {
			best = v
		}
	}
	return int(best)
}

// degreeToUDense computes v's degree into U by subtracting its
// still-in-P neighbor count from its live degree, short-circuiting as
// soon as the running total falls below duMax since it can then no
// longer beat the current best.
func (p *PartitionedVertexList) degreeToUDense(v int, duMax int) int {
	d := int(p.adj[v].alive)
	if d < duMax {
		return 0
	}
	du := d
	for slot := p.adj[v].head; slot != -1; slot = p.adj[v].cells[slot].next {
		if p.mem[p.adj[v].cells[slot].other] == InP {
			du--
			if du < duMax {
				return du
			}
		}
	}
	return du
}

// SelectVertexDense returns the vertex in P maximizing degree into U,
// computed lazily by subtraction rather than maintained eagerly. It seeds
// its search bound from the maximum-DegP vertex, then scans the rest of P
// with the degreeToUDense short-circuit.
//
// Complexity: O(|P|) to seed plus O(sum of deg(w)) to scan, but the
// short-circuit in degreeToUDense makes the common case much cheaper than
// Sparse's eager bookkeeping on dense graphs.
func (p *PartitionedVertexList) SelectVertexDense(rng *rand.Rand) int {
	ps := p.pSentinel()
	seed := p.MaxDegreePVertex(rng)
	duMax := p.degreeToUDense(seed, 0)
	best := seed

	for v := p.nextM[ps]; v != ps; v = p.nextM[v] {
		if int(v) == seed {
			continue
		}
		du := p.degreeToUDense(int(v), duMax)
		if du > duMax || (du == duMax && p.adj[v].alive < p.adj[best].alive) {
			duMax = du
			best = int(v)
		}
	}
	return best
}
