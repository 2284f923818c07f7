package list

import (
	"fmt"

	"github.com/go-roster/roster/pkg/errors"
	"github.com/go-roster/roster/pkg/pool"
	"github.com/go-roster/roster/pkg/registry"
	"github.com/go-roster/roster/pkg/scene"
)

// List binds a homogeneous data sequence to pooled view instances:
// one data type, one view prefab. It is a typed front on [Controller].
type List[T any] struct {
	ctrl *Controller
	data []T
}

// New creates a typed list over the given pool.
func New[T any](p *pool.Pool) *List[T] {
	return &List[T]{ctrl: NewController(p)}
}

// NewFor creates a typed list using the prefab registered for T,
// instantiating under root. Fails when no prefab is registered.
func NewFor[T any](graph scene.Graph, root scene.Instance) (*List[T], error) {
	prefab, ok := registry.PrefabFor[T]()
	if !ok {
		var zero T
		return nil, errors.New("list.NewFor", errors.KindNotFound,
			fmt.Errorf("no prefab registered for %T", zero))
	}
	return New[T](pool.New(graph, root, prefab)), nil
}

// Populate replaces the list's data sequence with records, reusing
// pooled instances per the controller's reconcile protocol. A nil
// slice is rejected and leaves prior state unchanged.
func (l *List[T]) Populate(records []T) error {
	if records == nil {
		return errors.New("list.Populate", errors.KindInvalidArgument,
			fmt.Errorf("nil data sequence; use an empty slice to clear"))
	}
	boxed := make([]any, len(records))
	for i, record := range records {
		boxed[i] = record
	}
	if err := l.ctrl.Populate(boxed); err != nil {
		return err
	}
	l.data = records
	return nil
}

// Data returns the current typed data sequence.
func (l *List[T]) Data() []T { return l.data }

// Count returns the number of active slots.
func (l *List[T]) Count() int { return l.ctrl.Count() }

// Capacity returns the number of slots ever instantiated.
func (l *List[T]) Capacity() int { return l.ctrl.Capacity() }

// At returns the view instance at index, or nil when out of range.
func (l *List[T]) At(index int) scene.Instance { return l.ctrl.At(index) }

// SlotAt returns the slot at index, or nil when out of range.
func (l *List[T]) SlotAt(index int) *pool.Slot { return l.ctrl.SlotAt(index) }

// Insert adopts an existing instance at index. See [Controller.Insert].
func (l *List[T]) Insert(index int, inst scene.Instance) error {
	return l.ctrl.Insert(index, inst)
}

// RemoveAt recycles the slot at index. See [Controller.RemoveAt].
func (l *List[T]) RemoveAt(index int) bool { return l.ctrl.RemoveAt(index) }

// Clear destroys every pooled instance and forgets the data.
func (l *List[T]) Clear() error {
	l.data = nil
	return l.ctrl.Clear()
}

// OnInstantiated registers a created-slot listener. See [Controller.OnInstantiated].
func (l *List[T]) OnInstantiated(fn Listener) func() { return l.ctrl.OnInstantiated(fn) }

// OnAdded registers a bound-slot listener. See [Controller.OnAdded].
func (l *List[T]) OnAdded(fn Listener) func() { return l.ctrl.OnAdded(fn) }

// OnRemoved registers a dropped-slot listener. See [Controller.OnRemoved].
func (l *List[T]) OnRemoved(fn Listener) func() { return l.ctrl.OnRemoved(fn) }

// Controller exposes the untyped controller underneath.
func (l *List[T]) Controller() *Controller { return l.ctrl }
