package registry

import (
	"reflect"
	"testing"

	"github.com/go-roster/roster/pkg/scene"
)

type cardRecord struct{ Title string }

type cardView struct{ scene.NodeBase }

func (v *cardView) Populate(record any) error { return nil }

func TestRegisterAndLookup(t *testing.T) {
	prefab := scene.NewPrefab("card", func() scene.Instance { return &cardView{} })
	Register[cardRecord](prefab)

	got, ok := PrefabFor[cardRecord]()
	if !ok {
		t.Fatal("expected a registered prefab for cardRecord")
	}
	if got.GUID != prefab.GUID {
		t.Errorf("PrefabFor returned GUID %s, want %s", got.GUID, prefab.GUID)
	}

	if _, ok := PrefabFor[int](); ok {
		t.Error("no prefab should be registered for int")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	type dupRecord struct{}
	prefab := scene.NewPrefab("dup", func() scene.Instance { return &cardView{} })
	Register[dupRecord](prefab)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register[dupRecord](prefab)
}

func TestForEachVisitsRegistrations(t *testing.T) {
	type walkRecord struct{}
	Register[walkRecord](scene.NewPrefab("walk", func() scene.Instance { return &cardView{} }))

	found := false
	ForEach(func(rt reflect.Type, _ scene.Prefab) bool {
		if rt == reflect.TypeOf(walkRecord{}) {
			found = true
			return false
		}
		return true
	})
	if !found {
		t.Error("ForEach should visit the walkRecord registration")
	}
}
