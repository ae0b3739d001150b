package actuator

import (
	"math"
	"testing"
)

func TestDCMotorConvergence(t *testing.T) {
	m := NewDCMotor("motor-1")
	m.Set(ParamInertia, 0.1)
	m.Set(ParamFriction, 0.05)
	m.SetSpeed(100)

	simTime := 0.0
	prev := 0.0
	for i := 0; i < 1000; i++ {
		simTime += 0.01
		m.Update(simTime, 0.01)
		if m.RPM() < prev-1e-9 {
			t.Fatalf("rpm not monotonic at t=%v: %v after %v", simTime, m.RPM(), prev)
		}
		prev = m.RPM()
	}

	// Friction holds the steady state slightly below the no-load speed.
	if m.RPM() < 2900 || m.RPM() > 3000 {
		t.Errorf("expected rpm to approach 3000, got %v", m.RPM())
	}
	if m.Direction() != 1 {
		t.Errorf("expected direction 1, got %d", m.Direction())
	}
}

func TestDCMotorReverse(t *testing.T) {
	m := NewDCMotor("motor-1")
	m.SetSpeed(-50)

	simTime := 0.0
	for i := 0; i < 1000; i++ {
		simTime += 0.01
		m.Update(simTime, 0.01)
	}

	if m.RPM() > -1000 {
		t.Errorf("expected strongly negative rpm, got %v", m.RPM())
	}
	if m.Direction() != -1 {
		t.Errorf("expected direction -1, got %d", m.Direction())
	}
}

func TestDCMotorBrake(t *testing.T) {
	m := NewDCMotor("motor-1")
	m.SetSpeed(100)

	simTime := 0.0
	for i := 0; i < 500; i++ {
		simTime += 0.01
		m.Update(simTime, 0.01)
	}
	spinning := m.RPM()

	m.Brake(true)
	for i := 0; i < 500; i++ {
		simTime += 0.01
		m.Update(simTime, 0.01)
	}

	if math.Abs(m.RPM()) >= math.Abs(spinning)/100 {
		t.Errorf("expected brake to collapse rpm from %v, still at %v", spinning, m.RPM())
	}
	if m.Direction() != 0 {
		t.Errorf("expected direction 0 when nearly stopped, got %d", m.Direction())
	}

	// Commanding a speed releases the brake.
	m.SetSpeed(20)
	if m.Braking() {
		t.Error("expected brake released by SetSpeed")
	}
}

func TestDCMotorStoppedDirection(t *testing.T) {
	m := NewDCMotor("motor-1")
	if m.Direction() != 0 {
		t.Errorf("expected direction 0 at rest, got %d", m.Direction())
	}
}

func TestDCMotorReset(t *testing.T) {
	m := NewDCMotor("motor-1")
	m.SetSpeed(100)
	m.Update(0.01, 0.01)
	m.Brake(true)

	m.Reset()
	if m.RPM() != 0 || m.Braking() || m.Get(ParamMotorSpeed) != 0 {
		t.Error("expected power-on state after Reset")
	}
}
