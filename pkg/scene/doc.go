// Package scene defines the boundary between the pooling layer and a
// host scene graph.
//
// The pooling layer never manipulates rendering state. It consumes
// exactly four host primitives, captured by the [Graph] interface:
// child instantiation, destruction, activation, and sibling ordering.
// Any engine that can express those four calls can host a pool.
//
// View instances are opaque [Instance] handles. A concrete view type
// embeds [NodeBase] for identity and implements [Bindable] to receive
// data records:
//
//	type scoreRow struct {
//	    scene.NodeBase
//	    label string
//	}
//
//	func (r *scoreRow) Populate(record any) error {
//	    s, ok := record.(score)
//	    if !ok {
//	        return fmt.Errorf("want score, got %T", record)
//	    }
//	    r.label = s.Name
//	    return nil
//	}
//
// [MemoryGraph] is a headless reference host used by tests and the
// showcase; production embedders implement [Graph] over their engine's
// scene API instead.
package scene
