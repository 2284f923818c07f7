package scene

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/go-roster/roster/pkg/errors"
)

// NodeBase provides the Instance identity for concrete view types.
// Embed it in a view struct; the graph stamps the ID on instantiation.
type NodeBase struct {
	id InstanceID
}

// ID returns the instance's identity within the graph.
func (n *NodeBase) ID() InstanceID { return n.id }

// SetID stores the instance identity.
// This method is called by the graph during instantiation.
func (n *NodeBase) SetID(id InstanceID) { n.id = id }

// MemoryGraph is an in-process Graph implementation with no rendering
// backend. It tracks parent/child order, activation state, and
// instantiation counts, which makes it the reference host for tests,
// the showcase, and embedders that run the pooling layer headless.
type MemoryGraph struct {
	nextID    InstanceID
	nodes     map[InstanceID]*node
	created   int
	destroyed int
}

type node struct {
	inst           Instance
	prefab         Prefab
	parent         *node
	children       []*node
	active         bool
	size           *f64.Vec2
	resetTransform bool
}

// NewMemoryGraph creates an empty in-memory scene graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{nodes: make(map[InstanceID]*node)}
}

// rootNode is the instance type behind NewRoot.
type rootNode struct {
	NodeBase
	name string
}

// NewRoot adds a detached root instance to the graph and returns it.
// Roots are always active and have no prefab.
func (g *MemoryGraph) NewRoot(name string) Instance {
	root := &rootNode{name: name}
	g.nextID++
	root.SetID(g.nextID)
	g.nodes[root.ID()] = &node{inst: root, active: true}
	return root
}

// CreateChild instantiates prefab under parent at the end of the
// sibling order. The new instance starts active.
func (g *MemoryGraph) CreateChild(parent Instance, prefab Prefab, resetTransform bool, size *f64.Vec2) (Instance, error) {
	const op = "scene.CreateChild"
	if parent == nil {
		return nil, errors.New(op, errors.KindInvalidArgument, fmt.Errorf("nil parent"))
	}
	parentNode, ok := g.nodes[parent.ID()]
	if !ok {
		return nil, errors.New(op, errors.KindNotFound, fmt.Errorf("parent %d not in graph", parent.ID()))
	}
	if prefab.Factory == nil {
		return nil, errors.New(op, errors.KindInvalidArgument, fmt.Errorf("prefab %q has no factory", prefab.Name))
	}

	inst := prefab.Factory()
	if inst == nil {
		return nil, errors.New(op, errors.KindInvalidArgument, fmt.Errorf("prefab %q factory returned nil", prefab.Name))
	}
	g.nextID++
	if setter, ok := inst.(interface{ SetID(InstanceID) }); ok {
		setter.SetID(g.nextID)
	}

	child := &node{
		inst:           inst,
		prefab:         prefab,
		parent:         parentNode,
		active:         true,
		size:           size,
		resetTransform: resetTransform,
	}
	g.nodes[inst.ID()] = child
	parentNode.children = append(parentNode.children, child)
	g.created++
	return inst, nil
}

// Destroy removes the instance and its subtree from the graph.
func (g *MemoryGraph) Destroy(inst Instance) error {
	const op = "scene.Destroy"
	n, err := g.lookup(op, inst)
	if err != nil {
		return err
	}
	if n.parent != nil {
		n.parent.children = removeChild(n.parent.children, n)
	}
	g.destroySubtree(n)
	return nil
}

func (g *MemoryGraph) destroySubtree(n *node) {
	for _, child := range n.children {
		g.destroySubtree(child)
	}
	delete(g.nodes, n.inst.ID())
	g.destroyed++
}

// SetActive shows or hides the instance. Hidden instances stay in the
// graph and keep their sibling position and state.
func (g *MemoryGraph) SetActive(inst Instance, active bool) error {
	n, err := g.lookup("scene.SetActive", inst)
	if err != nil {
		return err
	}
	n.active = active
	return nil
}

// SetSiblingOrder moves the instance among its siblings. Positions past
// the end (or negative) are clamped.
func (g *MemoryGraph) SetSiblingOrder(inst Instance, position int) error {
	n, err := g.lookup("scene.SetSiblingOrder", inst)
	if err != nil {
		return err
	}
	if n.parent == nil {
		return nil
	}
	siblings := removeChild(n.parent.children, n)
	if position < 0 {
		position = 0
	}
	if position > len(siblings) {
		position = len(siblings)
	}
	siblings = append(siblings, nil)
	copy(siblings[position+1:], siblings[position:])
	siblings[position] = n
	n.parent.children = siblings
	return nil
}

func (g *MemoryGraph) lookup(op string, inst Instance) (*node, error) {
	if inst == nil {
		return nil, errors.New(op, errors.KindInvalidArgument, fmt.Errorf("nil instance"))
	}
	n, ok := g.nodes[inst.ID()]
	if !ok {
		return nil, errors.New(op, errors.KindNotFound, fmt.Errorf("instance %d not in graph", inst.ID()))
	}
	return n, nil
}

func removeChild(children []*node, target *node) []*node {
	for i, child := range children {
		if child == target {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

// Created returns the number of instances ever instantiated.
func (g *MemoryGraph) Created() int { return g.created }

// Destroyed returns the number of instances destroyed.
func (g *MemoryGraph) Destroyed() int { return g.destroyed }

// Contains reports whether the instance is present in the graph.
func (g *MemoryGraph) Contains(inst Instance) bool {
	if inst == nil {
		return false
	}
	_, ok := g.nodes[inst.ID()]
	return ok
}

// IsActive reports the instance's activation state.
// Unknown instances report false.
func (g *MemoryGraph) IsActive(inst Instance) bool {
	if inst == nil {
		return false
	}
	n, ok := g.nodes[inst.ID()]
	return ok && n.active
}

// ChildrenOf returns the instances under parent in sibling order.
func (g *MemoryGraph) ChildrenOf(parent Instance) []Instance {
	if parent == nil {
		return nil
	}
	n, ok := g.nodes[parent.ID()]
	if !ok {
		return nil
	}
	out := make([]Instance, len(n.children))
	for i, child := range n.children {
		out[i] = child.inst
	}
	return out
}

// SizeOf returns the size override the instance was created with,
// or nil when the prefab default applies.
func (g *MemoryGraph) SizeOf(inst Instance) *f64.Vec2 {
	if inst == nil {
		return nil
	}
	n, ok := g.nodes[inst.ID()]
	if !ok {
		return nil
	}
	return n.size
}
