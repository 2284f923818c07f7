// Package pool implements the slot pool behind Roster list views.
//
// A Pool owns an ordered sequence of view-instance slots under one
// parent node of the host scene graph. Slots at positions [0, Len())
// are active and correspond 1:1, in order, to the caller's current
// data sequence; slots at [Len(), Cap()) are recycled: hidden and
// parked at the tail of the sibling order, never destroyed. Capacity
// only ever grows; ordinary repopulation reuses instances instead of
// reinstantiating them.
package pool

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/go-roster/roster/pkg/errors"
	"github.com/go-roster/roster/pkg/scene"
)

// Slot is a pooled, reusable view-instance holder at a pool position.
type Slot struct {
	inst   scene.Instance
	prefab scene.Prefab
	active bool
	index  int
}

// Instance returns the view instance this slot owns.
func (s *Slot) Instance() scene.Instance { return s.inst }

// Prefab returns the prefab the slot's instance was created from.
// Adopted instances have a zero prefab.
func (s *Slot) Prefab() scene.Prefab { return s.prefab }

// Active reports whether the slot currently represents a live record.
func (s *Slot) Active() bool { return s.active }

// Index returns the slot's current position in the pool sequence.
func (s *Slot) Index() int { return s.index }

// Bindable returns the slot instance's bind capability, if it has one.
func (s *Slot) Bindable() (scene.Bindable, bool) {
	b, ok := s.inst.(scene.Bindable)
	return b, ok
}

// Options configures instantiation of pooled children.
type Options struct {
	// ResetTransform requests an identity local transform on new children.
	ResetTransform bool
	// Size optionally overrides the prefab's natural size.
	Size *f64.Vec2
}

// Pool owns the slots under one parent node. A pool belongs to exactly
// one list controller; two controllers must never share a pool.
type Pool struct {
	graph  scene.Graph
	root   scene.Instance
	prefab scene.Prefab
	opts   Options

	slots  []*Slot
	active int
}

// New creates a pool that instantiates prefab under root.
// Transforms are reset on new children by default.
func New(graph scene.Graph, root scene.Instance, prefab scene.Prefab) *Pool {
	return NewWithOptions(graph, root, prefab, Options{ResetTransform: true})
}

// NewWithOptions creates a pool with explicit instantiation options.
func NewWithOptions(graph scene.Graph, root scene.Instance, prefab scene.Prefab, opts Options) *Pool {
	return &Pool{graph: graph, root: root, prefab: prefab, opts: opts}
}

// Len returns the number of active slots.
func (p *Pool) Len() int { return p.active }

// Cap returns the number of slots ever instantiated.
func (p *Pool) Cap() int { return len(p.slots) }

// At returns the slot at index, or nil when index is out of range.
// Both active and recycled slots are addressable.
func (p *Pool) At(index int) *Slot {
	if index < 0 || index >= len(p.slots) {
		return nil
	}
	return p.slots[index]
}

// GetOrCreate returns the slot at index, activating it if needed, or
// instantiates a new one when index equals the current capacity.
// Indices must be requested in ascending contiguous order during a
// populate pass: an index past the capacity is an invalid-state error,
// never a silent multi-create.
//
// The returned flag reports whether a new instance was created.
func (p *Pool) GetOrCreate(index int) (*Slot, bool, error) {
	const op = "pool.GetOrCreate"
	if index < 0 {
		return nil, false, errors.NewAt(op, errors.KindIndexOutOfRange, index, nil)
	}
	if index > len(p.slots) {
		return nil, false, errors.NewAt(op, errors.KindInvalidState, index,
			fmt.Errorf("index is %d past capacity %d; slots grow one at a time", index-len(p.slots), len(p.slots)))
	}

	if index == len(p.slots) {
		inst, err := p.graph.CreateChild(p.root, p.prefab, p.opts.ResetTransform, p.opts.Size)
		if err != nil {
			return nil, false, err
		}
		slot := &Slot{inst: inst, prefab: p.prefab, active: true, index: index}
		p.slots = append(p.slots, slot)
		if err := p.graph.SetSiblingOrder(inst, index); err != nil {
			return nil, false, err
		}
		p.active = index + 1
		return slot, true, nil
	}

	slot := p.slots[index]
	if !slot.active {
		if err := p.graph.SetActive(slot.inst, true); err != nil {
			return nil, false, err
		}
		// Back to its logical position, ahead of anything still parked.
		if err := p.graph.SetSiblingOrder(slot.inst, index); err != nil {
			return nil, false, err
		}
		slot.active = true
	}
	if index >= p.active {
		p.active = index + 1
	}
	return slot, false, nil
}

// DeactivateFrom hides every slot at or past start and parks its
// instance at the end of the sibling order, so recycled instances
// never render ahead of active ones. Slots keep their pool positions;
// the front of the recycled range is reused first on later growth.
func (p *Pool) DeactivateFrom(start int) error {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(p.slots); i++ {
		slot := p.slots[i]
		if !slot.active {
			continue
		}
		if err := p.graph.SetActive(slot.inst, false); err != nil {
			return err
		}
		if err := p.graph.SetSiblingOrder(slot.inst, len(p.slots)-1); err != nil {
			return err
		}
		slot.active = false
	}
	if p.active > start {
		p.active = start
	}
	return nil
}

// Insert adopts an existing instance as an active slot at index,
// shifting later slots back. index == Len() appends. The instance must
// already live in the graph; the pool takes ownership of it.
func (p *Pool) Insert(index int, inst scene.Instance) error {
	const op = "pool.Insert"
	if p.root == nil {
		err := errors.New(op, errors.KindInvalidState, fmt.Errorf("pool has no root reference"))
		errors.Report(err)
		return err
	}
	if index < 0 || index > p.active {
		return errors.NewAt(op, errors.KindIndexOutOfRange, index, nil)
	}
	if inst == nil {
		return errors.New(op, errors.KindInvalidArgument, fmt.Errorf("nil instance"))
	}

	slot := &Slot{inst: inst, active: true}
	p.slots = append(p.slots, nil)
	copy(p.slots[index+1:], p.slots[index:])
	p.slots[index] = slot
	p.active++

	if err := p.graph.SetActive(inst, true); err != nil {
		return err
	}
	return p.resyncOrder(index)
}

// RemoveAt recycles the slot at index to the pool tail: the instance
// is hidden and parked, not destroyed, and capacity is unchanged.
// Returns false when index addresses no active slot.
func (p *Pool) RemoveAt(index int) bool {
	const op = "pool.RemoveAt"
	if index < 0 || index >= p.active {
		errors.Report(errors.NewAt(op, errors.KindNotFound, index, nil))
		return false
	}

	slot := p.slots[index]
	copy(p.slots[index:], p.slots[index+1:])
	p.slots[len(p.slots)-1] = slot
	p.active--
	slot.active = false

	if err := p.graph.SetActive(slot.inst, false); err != nil {
		errors.Report(errors.NewAt(op, errors.KindUnknown, index, err))
	}
	if err := p.graph.SetSiblingOrder(slot.inst, len(p.slots)-1); err != nil {
		errors.Report(errors.NewAt(op, errors.KindUnknown, index, err))
	}
	if err := p.resyncOrder(index); err != nil {
		errors.Report(errors.NewAt(op, errors.KindUnknown, index, err))
	}
	return true
}

// AppendChild instantiates prefab as a fresh active slot at the end of
// the active range. This is the generic creation primitive used by the
// dynamic dispatcher; unlike GetOrCreate it never reuses a slot.
func (p *Pool) AppendChild(prefab scene.Prefab) (*Slot, error) {
	inst, err := p.graph.CreateChild(p.root, prefab, p.opts.ResetTransform, p.opts.Size)
	if err != nil {
		return nil, err
	}
	index := p.active
	slot := &Slot{inst: inst, prefab: prefab, active: true}
	p.slots = append(p.slots, nil)
	copy(p.slots[index+1:], p.slots[index:])
	p.slots[index] = slot
	p.active++
	if err := p.resyncOrder(index); err != nil {
		return nil, err
	}
	return slot, nil
}

// Clear destroys every instance and empties the pool. This is full
// teardown; ordinary repopulation must go through GetOrCreate and
// DeactivateFrom so instances get reused.
func (p *Pool) Clear() error {
	var first error
	for _, slot := range p.slots {
		if err := p.graph.Destroy(slot.inst); err != nil && first == nil {
			first = err
		}
	}
	p.slots = nil
	p.active = 0
	return first
}

// resyncOrder realigns slot indices and sibling positions from start
// through the end of the active range.
func (p *Pool) resyncOrder(start int) error {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(p.slots); i++ {
		p.slots[i].index = i
	}
	for i := start; i < p.active; i++ {
		if err := p.graph.SetSiblingOrder(p.slots[i].inst, i); err != nil {
			return err
		}
	}
	return nil
}
