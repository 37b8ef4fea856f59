// SPDX-License-Identifier: MIT

// Package partition implements PartitionedVertexList, the doubly linked
// P/U vertex partitioning shared by RLF-Plus and RLF-Adaptive.
//
// Every still-uncolored vertex lives in exactly one of two sets: P
// (candidates for the current color class) or U (excluded from it because
// they are adjacent to a vertex already placed in the class). Both sets
// are circularly-anchored doubly linked lists over vertex ids, so moving a
// vertex between them, or out to "colored", is O(1). A vertex's adjacency
// is itself a second doubly linked list, private to that vertex, that
// shrinks permanently as its neighbors get colored; each entry stores a
// cross-pointer back to the mirror entry in the neighbor's own list, so
// clearing a colored vertex out of everyone else's adjacency is
// O(deg(v)).
package partition
