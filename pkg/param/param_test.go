package param

import "testing"

func TestParamClamping(t *testing.T) {
	p := Bounded("brightness", 0, 0, 255, "", "LED brightness")

	t.Run("Default", func(t *testing.T) {
		if p.Get() != 0 {
			t.Errorf("expected default 0, got %v", p.Get())
		}
	})

	t.Run("InRange", func(t *testing.T) {
		p.Set(128)
		if p.Get() != 128 {
			t.Errorf("expected 128, got %v", p.Get())
		}
	})

	t.Run("ClampHigh", func(t *testing.T) {
		p.Set(1000)
		if p.Get() != 255 {
			t.Errorf("expected clamp to 255, got %v", p.Get())
		}
	})

	t.Run("ClampLow", func(t *testing.T) {
		p.Set(-5)
		if p.Get() != 0 {
			t.Errorf("expected clamp to 0, got %v", p.Get())
		}
	})

	t.Run("BoundaryValues", func(t *testing.T) {
		p.Set(0)
		if p.Get() != 0 {
			t.Errorf("expected 0, got %v", p.Get())
		}
		p.Set(255)
		if p.Get() != 255 {
			t.Errorf("expected 255, got %v", p.Get())
		}
	})
}

func TestParamUnbounded(t *testing.T) {
	p := Unbounded("offset", 1.5, "m", "free-running offset")

	p.Set(-1e9)
	if p.Get() != -1e9 {
		t.Errorf("expected -1e9 stored as-is, got %v", p.Get())
	}

	if _, _, ok := p.Bounds(); ok {
		t.Error("expected Bounds ok=false for unbounded param")
	}
}

func TestParamReset(t *testing.T) {
	p := Bounded("angle", 90, 0, 180, "deg", "servo angle")
	p.Set(45)
	p.Reset()
	if p.Get() != 90 {
		t.Errorf("expected default 90 after Reset, got %v", p.Get())
	}
}

func TestParamMetadata(t *testing.T) {
	p := Bounded("temperature", 25, -40, 80, "degC", "ambient temperature")

	if p.Name() != "temperature" {
		t.Errorf("expected name temperature, got %s", p.Name())
	}
	if p.Metadata().Unit != "degC" {
		t.Errorf("expected unit degC, got %s", p.Metadata().Unit)
	}

	min, max, ok := p.Bounds()
	if !ok || min != -40 || max != 80 {
		t.Errorf("expected bounds [-40, 80], got [%v, %v] ok=%v", min, max, ok)
	}
}
