// Package registry maps data types to view prefabs.
//
// Implementers register a (data type, view prefab) pair at process
// start, typically from an init function in the package that defines
// the view. Lookups are explicit; nothing scans loaded types at
// runtime. The roster CLI's generated binders register themselves this
// way.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-roster/roster/pkg/scene"
)

var (
	mu      sync.RWMutex
	prefabs = make(map[reflect.Type]scene.Prefab)
)

// Register associates prefab with the data type T.
// Registering the same type twice panics; it is a wiring mistake.
func Register[T any](prefab scene.Prefab) {
	RegisterType(typeOf[T](), prefab)
}

// RegisterType is the non-generic form of Register.
func RegisterType(t reflect.Type, prefab scene.Prefab) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := prefabs[t]; dup {
		panic(fmt.Sprintf("registry: prefab already registered for %s", t))
	}
	prefabs[t] = prefab
}

// PrefabFor returns the prefab registered for the data type T.
func PrefabFor[T any]() (scene.Prefab, bool) {
	return PrefabForType(typeOf[T]())
}

// PrefabForType is the non-generic form of PrefabFor.
func PrefabForType(t reflect.Type) (scene.Prefab, bool) {
	mu.RLock()
	defer mu.RUnlock()
	prefab, ok := prefabs[t]
	return prefab, ok
}

// ForEach visits every registration until fn returns false.
// Visit order is unspecified.
func ForEach(fn func(t reflect.Type, prefab scene.Prefab) bool) {
	mu.RLock()
	defer mu.RUnlock()
	for t, prefab := range prefabs {
		if !fn(t, prefab) {
			return
		}
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
