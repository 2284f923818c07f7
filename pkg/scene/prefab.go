package scene

import (
	"github.com/google/uuid"
)

// Prefab is a reference to an instantiable view asset. The GUID
// identifies the asset across sessions; Factory produces a fresh,
// unattached view instance when the graph instantiates the prefab.
type Prefab struct {
	// Name is a human-readable asset name, used in diagnostics.
	Name string
	// GUID is the stable asset identity.
	GUID uuid.UUID
	// Factory constructs a new view instance for this prefab.
	Factory func() Instance
}

// NewPrefab creates a prefab with a freshly generated GUID.
func NewPrefab(name string, factory func() Instance) Prefab {
	return Prefab{Name: name, GUID: uuid.New(), Factory: factory}
}

// IsZero reports whether the prefab is the zero value.
func (p Prefab) IsZero() bool {
	return p.GUID == uuid.Nil && p.Factory == nil
}
