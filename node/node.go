// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package node implements the scene's graph.
package node

import (
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/gviegas/haunted/linear"
)

// Interface of a node.
type Interface interface {
	// Local returns the local transform of the node.
	// It must not return nil.
	Local() *linear.M4

	// Changed returns whether the local transform
	// has changed.
	// Graph calls Changed before Local, so an
	// implementation may clear its changed state
	// when Local is called.
	Changed() bool
}

// Node identifies a node in a Graph.
type Node int

// Nil represents an invalid Node.
// When used as the parent in a call to Graph.Insert,
// it denotes the graph's root.
const Nil Node = 0

type node struct {
	parent Node
	next   Node
	prev   Node
	sub    Node
	local  Interface
	world  linear.M4
	// Set on insertion so the next Update
	// computes the world transform even if
	// local.Changed reports false.
	stale bool
}

// Graph is a node graph.
// The zero value for Graph is an empty graph whose
// global world transform is the identity.
type Graph struct {
	sub      Node
	world    linear.M4
	worldSet bool
	changed  bool
	nodes    []node
	nodeMap  bitset.BitSet
	n        int
}

// at returns the node identified by n.
// n must be valid.
func (g *Graph) at(n Node) *node { return &g.nodes[n-1] }

// valid returns whether n identifies a node in g.
func (g *Graph) valid(n Node) bool {
	return n > Nil && int(n) <= len(g.nodes) && g.nodeMap.Test(uint(n-1))
}

// Insert inserts a new node as the last immediate
// descendant of parent.
// If parent is Nil, the node is inserted at the
// root of the graph.
// It panics if parent is neither Nil nor a valid
// node of g, or if local is nil.
func (g *Graph) Insert(local Interface, parent Node) Node {
	if local == nil {
		panic("node: nil Interface in call to Graph.Insert")
	}
	if parent != Nil && !g.valid(parent) {
		panic("node: invalid parent in call to Graph.Insert")
	}
	var i int
	if x, ok := g.nodeMap.NextClear(0); ok && int(x) < len(g.nodes) {
		i = int(x)
	} else {
		i = len(g.nodes)
		g.nodes = append(g.nodes, node{})
	}
	g.nodeMap.Set(uint(i))
	g.n++
	n := Node(i + 1)
	*g.at(n) = node{parent: parent, local: local, stale: true}

	head := &g.sub
	if parent != Nil {
		head = &g.at(parent).sub
	}
	if *head == Nil {
		*head = n
		return n
	}
	last := *head
	for g.at(last).next != Nil {
		last = g.at(last).next
	}
	g.at(last).next = n
	g.at(n).prev = last
	return n
}

// Remove removes n and all of its descendants from
// the graph.
// It returns the Interface of n.
// The removed Node values become invalid and may be
// reused by subsequent insertions.
func (g *Graph) Remove(n Node) Interface {
	if !g.valid(n) {
		return nil
	}
	nd := g.at(n)
	switch {
	case nd.prev != Nil:
		g.at(nd.prev).next = nd.next
	case nd.parent != Nil:
		g.at(nd.parent).sub = nd.next
	default:
		g.sub = nd.next
	}
	if nd.next != Nil {
		g.at(nd.next).prev = nd.prev
	}
	local := nd.local
	que := []Node{n}
	for len(que) > 0 {
		x := que[0]
		que = que[1:]
		for c := g.at(x).sub; c != Nil; c = g.at(c).next {
			que = append(que, c)
		}
		*g.at(x) = node{}
		g.nodeMap.Clear(uint(x - 1))
		g.n--
	}
	return local
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return g.n }

// Get returns the Interface of n.
// It returns nil if n is not a valid node.
func (g *Graph) Get(n Node) Interface {
	if !g.valid(n) {
		return nil
	}
	return g.at(n).local
}

// Parent returns the immediate ancestor of n.
// Nodes inserted at the root have Nil as parent.
func (g *Graph) Parent(n Node) Node {
	if !g.valid(n) {
		return Nil
	}
	return g.at(n).parent
}

// Children returns an iterator over the immediate
// descendants of n, in insertion order.
// If n is Nil, it iterates over the root's nodes.
func (g *Graph) Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		c := g.sub
		if n != Nil {
			if !g.valid(n) {
				return
			}
			c = g.at(n).sub
		}
		for ; c != Nil; c = g.at(c).next {
			if !yield(c) {
				return
			}
		}
	}
}

// All returns an iterator over every descendant of n.
// Ancestors are visited first.
// The graph must not be changed during iteration.
func (g *Graph) All(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		que := []Node{}
		for c := range g.Children(n) {
			que = append(que, c)
		}
		for len(que) > 0 {
			x := que[0]
			que = que[1:]
			if !yield(x) {
				return
			}
			for c := g.at(x).sub; c != Nil; c = g.at(c).next {
				que = append(que, c)
			}
		}
	}
}

// SetWorld sets the global world transform.
func (g *Graph) SetWorld(m *linear.M4) {
	g.world = *m
	g.worldSet = true
	g.changed = true
}

// World returns the world transform of n.
// If n is Nil, it returns the global world transform.
// Node transforms are only valid after a call to
// Update.
func (g *Graph) World(n Node) *linear.M4 {
	if n == Nil {
		if !g.worldSet {
			g.world.I()
			g.worldSet = true
		}
		return &g.world
	}
	if !g.valid(n) {
		return nil
	}
	return &g.at(n).world
}

// Update recomputes the world transforms of the nodes
// whose local transforms (or those of their ancestors)
// have changed since the last call.
func (g *Graph) Update() {
	type entry struct {
		n       Node
		changed bool
	}
	global := g.World(Nil)
	que := []entry{}
	for c := g.sub; c != Nil; c = g.at(c).next {
		que = append(que, entry{c, g.changed})
	}
	g.changed = false
	for len(que) > 0 {
		e := que[0]
		que = que[1:]
		nd := g.at(e.n)
		changed := nd.local.Changed() || e.changed || nd.stale
		if changed {
			wld := global
			if nd.parent != Nil {
				wld = &g.at(nd.parent).world
			}
			nd.world.Mul(wld, nd.local.Local())
			nd.stale = false
		}
		for c := nd.sub; c != Nil; c = g.at(c).next {
			que = append(que, entry{c, changed})
		}
	}
}
