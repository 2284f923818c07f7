package list

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-roster/roster/pkg/errors"
	"github.com/go-roster/roster/pkg/pool"
	"github.com/go-roster/roster/pkg/registry"
	"github.com/go-roster/roster/pkg/scene"
)

func newTestList(t *testing.T) (*List[item], *scene.MemoryGraph) {
	t.Helper()
	g := scene.NewMemoryGraph()
	root := g.NewRoot("list")
	prefab := scene.NewPrefab("item", func() scene.Instance { return &itemView{} })
	return New[item](pool.New(g, root, prefab)), g
}

func TestTypedPopulateBindsEachRecord(t *testing.T) {
	l, g := newTestList(t)

	data := []item{{Name: "A"}, {Name: "B"}}
	if err := l.Populate(data); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if l.Count() != 2 || l.Capacity() != 2 || g.Created() != 2 {
		t.Fatalf("count=%d cap=%d created=%d", l.Count(), l.Capacity(), g.Created())
	}
	for i, want := range data {
		view := l.At(i).(*itemView)
		if len(view.bound) != 1 || view.bound[0] != want {
			t.Errorf("slot %d bound %v, want %v", i, view.bound, want)
		}
	}
	if diff := cmp.Diff(data, l.Data()); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}
}

func TestTypedPopulateNilRejected(t *testing.T) {
	l, _ := newTestList(t)
	if err := l.Populate([]item{{Name: "A"}}); err != nil {
		t.Fatalf("Populate: %v", err)
	}

	err := l.Populate(nil)
	if !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Fatalf("Populate(nil) = %v, want invalid-argument", err)
	}
	if len(l.Data()) != 1 {
		t.Error("Populate(nil) must keep the prior sequence")
	}
}

func TestTypedShrinkReusesOnRegrow(t *testing.T) {
	l, g := newTestList(t)

	if err := l.Populate([]item{{Name: "A"}, {Name: "B"}, {Name: "C"}}); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	third := l.At(2)

	if err := l.Populate([]item{{Name: "D"}}); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if err := l.Populate([]item{{Name: "E"}, {Name: "F"}, {Name: "G"}}); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if g.Created() != 3 {
		t.Errorf("Created() = %d, want 3 (regrow must reuse)", g.Created())
	}
	if l.At(2) != third {
		t.Error("slot 2 should reuse the recycled instance")
	}
}

func TestTypedClearDestroys(t *testing.T) {
	l, g := newTestList(t)
	if err := l.Populate([]item{{Name: "A"}, {Name: "B"}}); err != nil {
		t.Fatalf("Populate: %v", err)
	}

	if err := l.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if l.Count() != 0 || l.Capacity() != 0 {
		t.Error("Clear should empty the list")
	}
	if g.Destroyed() != 2 {
		t.Errorf("Destroyed() = %d, want 2", g.Destroyed())
	}
	if l.Data() != nil {
		t.Error("Clear should forget the data sequence")
	}
}

type registeredRecord struct{ N int }

func TestNewFor(t *testing.T) {
	registry.Register[registeredRecord](scene.NewPrefab("registered", func() scene.Instance { return &itemView{} }))

	g := scene.NewMemoryGraph()
	root := g.NewRoot("list")
	l, err := NewFor[registeredRecord](g, root)
	if err != nil {
		t.Fatalf("NewFor: %v", err)
	}
	if l == nil {
		t.Fatal("NewFor returned nil list")
	}

	type unregistered struct{}
	if _, err := NewFor[unregistered](g, root); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("NewFor[unregistered] = %v, want not-found", err)
	}
}
