package kspdv

import "fmt"

// TransferRule identifies which formula prices a flight path.
type TransferRule uint8

const (
	// SameBody is a landing or a take off, or no maneuver at all.
	SameBody TransferRule = iota + 1
	// SiblingSatellites is a transfer between two satellites of the same planet.
	SiblingSatellites
	// SatelliteParent is a transfer between a satellite and its own planet.
	SatelliteParent
	// Interplanetary requires escaping both planetary systems.
	Interplanetary
)

func (r TransferRule) String() string {
	switch r {
	case SameBody:
		return "same body"
	case SiblingSatellites:
		return "sibling satellites"
	case SatelliteParent:
		return "satellite to parent"
	case Interplanetary:
		return "interplanetary"
	default:
		return "unknown"
	}
}

// FlightPath is a flight between two bodies, where each end is either landed or orbiting.
type FlightPath struct {
	start, end                 *Body
	startOrbiting, endOrbiting bool
}

// NewFlightPath returns a new flight path. Both bodies must have been built by NewPlanet or NewSatellite.
func NewFlightPath(start, end *Body, startOrbiting, endOrbiting bool) (*FlightPath, error) {
	if !start.valid() {
		return nil, fmt.Errorf("%w: start is not a planet or a satellite", ErrInvalidConfiguration)
	}
	if !end.valid() {
		return nil, fmt.Errorf("%w: end is not a planet or a satellite", ErrInvalidConfiguration)
	}
	return &FlightPath{start, end, startOrbiting, endOrbiting}, nil
}

// Evaluate returns the delta-V of the flight path between the provided ends.
func Evaluate(start *Body, startOrbiting bool, end *Body, endOrbiting bool) (int, error) {
	fp, err := NewFlightPath(start, end, startOrbiting, endOrbiting)
	if err != nil {
		return 0, err
	}
	return fp.DeltaV(), nil
}

// Start returns the departure body.
func (f *FlightPath) Start() *Body {
	return f.start
}

// End returns the arrival body.
func (f *FlightPath) End() *Body {
	return f.end
}

// StartOrbiting returns whether the flight starts from orbit.
func (f *FlightPath) StartOrbiting() bool {
	return f.startOrbiting
}

// EndOrbiting returns whether the flight ends in orbit.
func (f *FlightPath) EndOrbiting() bool {
	return f.endOrbiting
}

// EllipticDistance returns the cost of bringing both ends to the elliptical orbit of their planet.
func (f *FlightPath) EllipticDistance() int {
	return f.start.DistanceToEllipse(f.startOrbiting) + f.end.DistanceToEllipse(f.endOrbiting)
}

// EscapeDistance returns the cost of bringing both ends out of their planetary system.
func (f *FlightPath) EscapeDistance() int {
	return f.start.DistanceToEscape(f.startOrbiting) + f.end.DistanceToEscape(f.endOrbiting)
}

// Rule returns the rule which applies to this flight path. The first match wins.
func (f *FlightPath) Rule() TransferRule {
	switch {
	case f.start == f.end:
		return SameBody
	case f.start.IsSatellite() && f.end.IsSatellite() && f.start.parent == f.end.parent:
		return SiblingSatellites
	case f.start.parent == f.end, f.end.parent == f.start:
		// parent is nil for planets, and neither end is nil.
		return SatelliteParent
	default:
		return Interplanetary
	}
}

// DeltaV returns the approximate delta-V of this flight path.
func (f *FlightPath) DeltaV() int {
	switch f.Rule() {
	case SameBody:
		if f.startOrbiting != f.endOrbiting {
			return f.start.landToOrbit
		}
		return 0
	case SiblingSatellites, SatelliteParent:
		return f.EllipticDistance()
	default:
		return f.EscapeDistance()
	}
}

// String implements the Stringer interface.
func (f *FlightPath) String() string {
	return fmt.Sprintf("%s (%s) -> %s (%s)", f.start.name, state(f.startOrbiting), f.end.name, state(f.endOrbiting))
}

func state(orbiting bool) string {
	if orbiting {
		return "orbiting"
	}
	return "landed"
}
