package sim

import (
	"errors"
	"testing"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
)

// fakeDevice records update calls; it stands in for a real peripheral.
type fakeDevice struct {
	*device.Base
	updates  int
	lastTime float64
	lastDT   float64
	resets   int
}

func newFakeDevice(name string) *fakeDevice {
	return &fakeDevice{Base: device.NewBase(name, device.CategoryActuator)}
}

func (f *fakeDevice) Update(simTime, dt float64) {
	f.updates++
	f.lastTime = simTime
	f.lastDT = dt
}

func (f *fakeDevice) Reset() {
	f.resets++
	f.ResetParams()
}

func TestRegistryAddRemove(t *testing.T) {
	r := NewRegistry()

	if r.ID() == "" {
		t.Error("expected non-empty registry ID")
	}

	a := newFakeDevice("a")
	if err := r.Add(a); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.Add(newFakeDevice("a")); !errors.Is(err, ErrDuplicateDevice) {
		t.Errorf("expected ErrDuplicateDevice, got %v", err)
	}

	got, ok := r.Get("a")
	if !ok || got.Name() != "a" {
		t.Error("expected to find device a")
	}

	if err := r.Remove("a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := r.Remove("a"); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("expected ErrDeviceNotFound, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"z", "a", "m"} {
		if err := r.Add(newFakeDevice(name)); err != nil {
			t.Fatal(err)
		}
	}

	list := r.List()
	if len(list) != 3 || list[0].Name() != "z" || list[1].Name() != "a" || list[2].Name() != "m" {
		t.Errorf("expected registration order z, a, m; got %v", list)
	}
}

func TestRegistryUpdateAll(t *testing.T) {
	r := NewRegistry()
	a := newFakeDevice("a")
	b := newFakeDevice("b")
	disabled := newFakeDevice("off")
	disabled.SetEnabled(false)

	for _, d := range []*fakeDevice{a, b, disabled} {
		if err := r.Add(d); err != nil {
			t.Fatal(err)
		}
	}

	r.UpdateAll(0.5, 0.01)

	if a.updates != 1 || b.updates != 1 {
		t.Error("expected each enabled device updated exactly once per tick")
	}
	if a.lastTime != 0.5 || a.lastDT != 0.01 {
		t.Errorf("unexpected tick arguments: t=%v dt=%v", a.lastTime, a.lastDT)
	}
	if disabled.updates != 0 {
		t.Error("expected disabled device to be skipped")
	}
}

func TestRegistryResetAll(t *testing.T) {
	r := NewRegistry()
	a := newFakeDevice("a")
	if err := r.Add(a); err != nil {
		t.Fatal(err)
	}

	r.ResetAll()
	if a.resets != 1 {
		t.Errorf("expected one reset, got %d", a.resets)
	}
}
