// Package list reconciles ordered data sequences against pooled view
// instances.
//
// [Controller] implements the untyped reconcile protocol: reuse slots
// first, create only on growth, hide surplus slots on shrink, and fire
// lifecycle notifications in a fixed order. [List] wraps it for
// homogeneous data (one data type, one view prefab); [DynamicList]
// handles heterogeneous data by delegating view-type selection to a
// caller-supplied [Selector].
//
// # Frame model
//
// Everything here is single-threaded and synchronous, driven from the
// host's per-frame loop. A Populate call runs to completion before the
// host proceeds; with expensive bind logic that can be a long call.
// There is no cancellation, and populating from inside a bind callback
// of an in-progress populate is disallowed.
//
// # Notification order
//
// Per populate pass: every removed notification fires before any added
// notification, and a slot's instantiated notification fires before
// its added notification.
package list
