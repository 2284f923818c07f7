package list

import (
	"fmt"

	"github.com/go-roster/roster/pkg/errors"
	"github.com/go-roster/roster/pkg/pool"
	"github.com/go-roster/roster/pkg/scene"
)

// Selector picks the view prefab for one heterogeneous data record.
// Returning an error (or a zero prefab) marks the record as an
// unrecognized variant.
type Selector func(record any) (scene.Prefab, error)

// DynamicList populates heterogeneous data: the caller's Selector
// chooses a view type per record, and every record appends a fresh
// child through the pool's generic creation primitive. There is no
// slot reuse across heterogeneous types; callers must Clear before
// re-populating, since there is no typed sequence to diff against.
type DynamicList struct {
	ctrl     *Controller
	selector Selector
}

// NewDynamic creates a dynamic list over the given pool.
func NewDynamic(p *pool.Pool, selector Selector) *DynamicList {
	return &DynamicList{ctrl: NewController(p), selector: selector}
}

// Populate appends one freshly created child per record, in sequence
// order. Records the selector cannot classify fail the pass with an
// unrecognized-variant error; records already appended stay.
func (d *DynamicList) Populate(records []any) error {
	const op = "list.DynamicList.Populate"
	if records == nil {
		return errors.New(op, errors.KindInvalidArgument,
			fmt.Errorf("nil data sequence; use an empty slice for no records"))
	}
	if d.selector == nil {
		return errors.New(op, errors.KindInvalidState, fmt.Errorf("no selector configured"))
	}

	for i, record := range records {
		prefab, err := d.selector(record)
		if err != nil {
			return errors.NewAt(op, errors.KindUnrecognizedVariant, i, err)
		}
		if prefab.IsZero() {
			return errors.NewAt(op, errors.KindUnrecognizedVariant, i,
				fmt.Errorf("selector returned no prefab for %s", typeName(record)))
		}
		slot, err := d.ctrl.appendChild(prefab)
		if err != nil {
			return err
		}
		if err := bindSlot(slot, i, record); err != nil {
			return err
		}
		fire(d.ctrl.added, slot.Index(), slot)
	}
	return nil
}

// Count returns the number of active slots.
func (d *DynamicList) Count() int { return d.ctrl.Count() }

// Capacity returns the number of slots ever instantiated.
func (d *DynamicList) Capacity() int { return d.ctrl.Capacity() }

// At returns the view instance at index, or nil when out of range.
func (d *DynamicList) At(index int) scene.Instance { return d.ctrl.At(index) }

// RemoveAt recycles the slot at index. See [Controller.RemoveAt].
func (d *DynamicList) RemoveAt(index int) bool { return d.ctrl.RemoveAt(index) }

// Clear destroys every child. Callers must clear before re-populating.
func (d *DynamicList) Clear() error { return d.ctrl.Clear() }

// OnInstantiated registers a created-slot listener.
func (d *DynamicList) OnInstantiated(fn Listener) func() { return d.ctrl.OnInstantiated(fn) }

// OnAdded registers a bound-slot listener.
func (d *DynamicList) OnAdded(fn Listener) func() { return d.ctrl.OnAdded(fn) }
