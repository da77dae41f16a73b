package app

import (
	"image"
	"math"
	"math/rand"
	"testing"
)

func TestState_ScrollStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewState(100, 100, DefaultDecay)
	for i := 0; i < 20000; i++ {
		s.Scroll(rng.Intn(41) - 20)
		if s.Decay < decayFloor || s.Decay > decayCeil {
			t.Fatalf("step %d: decay %v out of [%v,%v]", i, s.Decay, decayFloor, decayCeil)
		}
	}
}

func TestState_Scroll(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		notches int
		want    float64
	}{
		{"up", 0.5, 1, 0.501},
		{"down", 0.5, -3, 0.497},
		{"none", 0.5, 0, 0.5},
		{"ceiling", 0.9995, 1, 1},
		{"ceiling holds", 1, 5, 1},
		{"floor resets", 0.1005, -1, 0.2},
		{"floor mid-sequence", 0.1015, -3, 0.199},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{Decay: tt.start}
			s.Scroll(tt.notches)
			if math.Abs(s.Decay-tt.want) > 1e-9 {
				t.Fatalf("Scroll(%d) from %v = %v; want %v", tt.notches, tt.start, s.Decay, tt.want)
			}
		})
	}
}

func TestState_AdvancePhase(t *testing.T) {
	s := &State{Phase: 0.99995}
	s.AdvancePhase(DefaultPhaseStep)
	if s.Phase < 0 || s.Phase >= 1 || math.Abs(s.Phase-0.00005) > 1e-9 {
		t.Fatalf("wrapped phase = %v; want 0.00005", s.Phase)
	}

	s = &State{}
	for i := 0; i < 25000; i++ {
		s.AdvancePhase(DefaultPhaseStep)
	}
	if math.Abs(s.Phase-0.5) > 1e-6 {
		t.Fatalf("phase after 25000 steps = %v; want 0.5", s.Phase)
	}
}

func TestState_Drag(t *testing.T) {
	s := NewState(400, 200, DefaultDecay)
	if s.Anchor != image.Pt(200, 50) {
		t.Fatalf("initial anchor = %v", s.Anchor)
	}

	s.DragTo(image.Pt(10, 10))
	if s.Anchor != image.Pt(200, 50) {
		t.Fatal("anchor moved without a drag")
	}

	s.BeginDrag(image.Pt(10, 10))
	s.DragTo(image.Pt(15, 7))
	s.DragTo(image.Pt(25, 7))
	if s.Anchor != image.Pt(215, 47) {
		t.Fatalf("anchor = %v; want (215,47)", s.Anchor)
	}

	s.EndDrag()
	s.DragTo(image.Pt(0, 0))
	if s.Anchor != image.Pt(215, 47) || s.Dragging {
		t.Fatalf("anchor after release = %v dragging=%v", s.Anchor, s.Dragging)
	}
}
