package app

import (
	"image"

	"spiro/internal/fan"
)

const (
	// Defaults shared with the offline renderer.
	DefaultDecay     = fan.DefaultDecay
	DefaultPhaseStep = fan.DefaultPhaseStep

	decayStep  = 0.001
	decayFloor = 0.1
	// Dropping below decayFloor jumps back up to decayReset rather than
	// clamping at the floor.
	decayReset = 0.2
	decayCeil  = 1.0
)

// State is everything that carries over from one frame to the next.
type State struct {
	Anchor image.Point
	// Phase is the hue phase in [0,1).
	Phase float64
	Decay float64

	DrawToScreen bool
	Trace        bool
	AutoSave     bool

	Dragging bool
	dragLast image.Point
}

// NewState returns the startup state for a map of the given size.
func NewState(mapW, mapH int, decay float64) *State {
	return &State{
		Anchor:       image.Pt(mapW/2, mapH/4),
		Decay:        decay,
		DrawToScreen: true,
	}
}

// AdvancePhase moves the hue phase forward by step, wrapping at 1.
func (s *State) AdvancePhase(step float64) {
	s.Phase = fan.AdvancePhase(s.Phase, step)
}

// Scroll adjusts the decay ratio by one step per wheel notch.
func (s *State) Scroll(notches int) {
	dir := 1.0
	if notches < 0 {
		dir = -1
		notches = -notches
	}
	for ; notches > 0; notches-- {
		s.Decay += dir * decayStep
		if s.Decay < decayFloor {
			s.Decay = decayReset
		}
		if s.Decay > decayCeil {
			s.Decay = decayCeil
		}
	}
}

// BeginDrag starts moving the anchor with the pointer at p.
func (s *State) BeginDrag(p image.Point) {
	s.Dragging = true
	s.dragLast = p
}

// EndDrag stops moving the anchor.
func (s *State) EndDrag() {
	s.Dragging = false
}

// DragTo translates the anchor by the pointer movement since the last call.
func (s *State) DragTo(p image.Point) {
	if !s.Dragging {
		return
	}
	s.Anchor = s.Anchor.Add(p.Sub(s.dragLast))
	s.dragLast = p
}
