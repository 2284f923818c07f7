package list

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-roster/roster/pkg/errors"
	"github.com/go-roster/roster/pkg/pool"
	"github.com/go-roster/roster/pkg/scene"
)

// Listener observes one slot lifecycle event.
type Listener func(index int, slot *pool.Slot)

// Controller reconciles a data sequence against a slot pool and binds
// each record into its slot's view instance.
//
// A controller exclusively owns its pool. All operations run
// synchronously on the calling frame; a Populate over expensive bind
// logic blocks the host until it returns. Calling Populate from inside
// a bind callback of an in-progress Populate is disallowed.
type Controller struct {
	pool       *pool.Pool
	data       []any
	populating bool

	instantiated []Listener
	added        []Listener
	removed      []Listener
}

// NewController creates a controller over the given pool.
func NewController(p *pool.Pool) *Controller {
	return &Controller{pool: p}
}

// Count returns the number of active slots, which equals the length of
// the current data sequence.
func (c *Controller) Count() int { return c.pool.Len() }

// Capacity returns the number of slots ever instantiated.
func (c *Controller) Capacity() int { return c.pool.Cap() }

// At returns the view instance at index, or nil when index addresses
// no slot.
func (c *Controller) At(index int) scene.Instance {
	slot := c.pool.At(index)
	if slot == nil {
		return nil
	}
	return slot.Instance()
}

// SlotAt returns the slot at index, or nil when index is out of range.
func (c *Controller) SlotAt(index int) *pool.Slot { return c.pool.At(index) }

// Data returns the current data sequence. Nil until the first
// successful Populate; an empty, non-nil slice means "populated with
// no records".
func (c *Controller) Data() []any { return c.data }

// Populate reconciles records against the pool:
//
//  1. A nil sequence is rejected; prior state is untouched. An empty
//     sequence is valid and distinct from "no data yet".
//  2. Each record obtains its slot in ascending order, reusing first
//     and creating only past the current capacity, then binds.
//  3. Slots past the new length are hidden and parked, not destroyed.
//  4. The sequence is swapped in only after every bind succeeded.
//
// Bind failures propagate immediately; the pool is left partially
// updated with no rollback.
func (c *Controller) Populate(records []any) error {
	const op = "list.Populate"
	if c.populating {
		err := errors.New(op, errors.KindInvalidState, fmt.Errorf("reentrant populate from bind callback"))
		errors.Report(err)
		return err
	}
	if records == nil {
		return errors.New(op, errors.KindInvalidArgument, fmt.Errorf("nil data sequence; use an empty slice to clear"))
	}
	c.populating = true
	defer func() { c.populating = false }()

	// Every removal notification fires before any added notification
	// of the same pass.
	for i := len(records); i < c.pool.Len(); i++ {
		fire(c.removed, i, c.pool.At(i))
	}

	for i, record := range records {
		slot, created, err := c.pool.GetOrCreate(i)
		if err != nil {
			return err
		}
		if created {
			fire(c.instantiated, i, slot)
		}
		if err := bindSlot(slot, i, record); err != nil {
			return err
		}
		fire(c.added, i, slot)
	}

	if err := c.pool.DeactivateFrom(len(records)); err != nil {
		return err
	}
	c.data = records
	return nil
}

// Insert adopts an existing instance as an active slot at index,
// outside the populate protocol. The current data sequence is not
// modified; the next Populate re-establishes the 1:1 mapping.
func (c *Controller) Insert(index int, inst scene.Instance) error {
	return c.pool.Insert(index, inst)
}

// RemoveAt recycles the slot at index to the pool tail. Returns false
// when index addresses no active slot; the failure is logged, not
// raised.
func (c *Controller) RemoveAt(index int) bool {
	return c.pool.RemoveAt(index)
}

// Clear destroys every pooled instance and forgets the data sequence.
// Teardown only; Populate never destroys.
func (c *Controller) Clear() error {
	c.data = nil
	return c.pool.Clear()
}

// OnInstantiated registers a listener fired once per newly created
// slot, before that slot's first bind. Returns an unregister function.
func (c *Controller) OnInstantiated(fn Listener) func() {
	return addListener(&c.instantiated, fn)
}

// OnAdded registers a listener fired for every slot bound in a
// populate pass, after its bind call. Returns an unregister function.
func (c *Controller) OnAdded(fn Listener) func() {
	return addListener(&c.added, fn)
}

// OnRemoved registers a listener fired once per slot active in the
// previous pass but not rebound in the current one, before rebinding
// begins. Returns an unregister function.
func (c *Controller) OnRemoved(fn Listener) func() {
	return addListener(&c.removed, fn)
}

// appendChild creates a fresh slot via the pool's generic creation
// primitive and fires the instantiated hook. Used by DynamicList.
func (c *Controller) appendChild(prefab scene.Prefab) (*pool.Slot, error) {
	slot, err := c.pool.AppendChild(prefab)
	if err != nil {
		return nil, err
	}
	fire(c.instantiated, slot.Index(), slot)
	return slot, nil
}

func addListener(listeners *[]Listener, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	index := len(*listeners)
	*listeners = append(*listeners, fn)
	return func() {
		if index < len(*listeners) {
			(*listeners)[index] = nil
		}
	}
}

func fire(listeners []Listener, index int, slot *pool.Slot) {
	for _, fn := range listeners {
		if fn != nil {
			fn(index, slot)
		}
	}
}

// bindSlot hands one record to the slot's view. Panics inside the
// view's Populate are recovered into a BindError so a bad record
// cannot take down the host frame loop.
func bindSlot(slot *pool.Slot, index int, record any) error {
	bindable, ok := slot.Bindable()
	if !ok {
		err := &errors.BindError{
			View:      typeName(slot.Instance()),
			Record:    typeName(record),
			Index:     index,
			Err:       fmt.Errorf("view does not implement scene.Bindable"),
			Timestamp: time.Now(),
		}
		errors.ReportBindError(err)
		return err
	}

	var bindErr *errors.BindError
	func() {
		defer func() {
			if r := recover(); r != nil {
				bindErr = &errors.BindError{
					View:       typeName(slot.Instance()),
					Record:     typeName(record),
					Index:      index,
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		if err := bindable.Populate(record); err != nil {
			bindErr = &errors.BindError{
				View:      typeName(slot.Instance()),
				Record:    typeName(record),
				Index:     index,
				Err:       err,
				Timestamp: time.Now(),
			}
		}
	}()

	if bindErr != nil {
		errors.ReportBindError(bindErr)
		return bindErr
	}
	return nil
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
