package scene

import (
	"golang.org/x/image/math/f64"
)

// InstanceID uniquely identifies a view instance within its graph.
type InstanceID uint64

// Instance is an opaque handle to a view instance owned by the host
// scene graph. Concrete view types implement Instance and usually
// [Bindable] as well.
type Instance interface {
	// ID returns the instance's identity within the graph.
	ID() InstanceID
}

// Bindable is the capability a view instance must expose to receive data.
// Populate pushes one data record's content into the view; it may fail
// when the record is malformed.
type Bindable interface {
	Populate(record any) error
}

// Graph is the narrow slice of a host scene graph the pooling layer
// depends on. The four primitives cover instantiation, teardown,
// visibility, and sibling ordering; nothing here touches rendering,
// layout, or input.
//
// Implementations are driven from the host's single frame loop and are
// not required to be safe for concurrent use.
type Graph interface {
	// CreateChild instantiates prefab under parent and returns the new
	// instance. resetTransform requests an identity local transform on
	// the new child. size optionally overrides the prefab's natural
	// size; pass nil to keep the prefab default.
	CreateChild(parent Instance, prefab Prefab, resetTransform bool, size *f64.Vec2) (Instance, error)

	// Destroy removes the instance from the graph permanently.
	Destroy(inst Instance) error

	// SetActive shows or hides the instance. Hidden instances stay in
	// the graph and keep their state.
	SetActive(inst Instance, active bool) error

	// SetSiblingOrder moves the instance to the given position among
	// its siblings. Positions past the end are clamped to the end.
	SetSiblingOrder(inst Instance, position int) error
}
