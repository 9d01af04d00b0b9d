package kspdv

import (
	"fmt"
)

// BodyKind tags the variant of a Body.
type BodyKind uint8

const (
	// unknownBody is the zero value, i.e. a Body which was not built by a constructor.
	unknownBody BodyKind = iota
	// PlanetKind orbits Kerbol directly.
	PlanetKind
	// SatelliteKind orbits a planet.
	SatelliteKind
)

func (k BodyKind) String() string {
	switch k {
	case PlanetKind:
		return "planet"
	case SatelliteKind:
		return "satellite"
	default:
		return "unknown"
	}
}

// Body is a celestial body of the catalog, either a planet or a satellite.
// All costs are in m/s of delta-V. A Body is immutable once built.
type Body struct {
	name            string
	atmosphere      bool // Stored only, no computation uses it.
	landToOrbit     int
	orbitToElliptic int
	kind            BodyKind
	// Planet payload
	ellipticToEscape int
	// Satellite payload
	ellipticToParent int
	parent           *Body
}

// NewPlanet returns a new planet.
func NewPlanet(name string, atmosphere bool, landToOrbit, orbitToElliptic, ellipticToEscape int) (*Body, error) {
	if err := checkCosts(name, landToOrbit, orbitToElliptic, ellipticToEscape); err != nil {
		return nil, err
	}
	return &Body{name: name, atmosphere: atmosphere, landToOrbit: landToOrbit, orbitToElliptic: orbitToElliptic, kind: PlanetKind, ellipticToEscape: ellipticToEscape}, nil
}

// NewSatellite returns a new satellite of the provided parent, which must be a planet.
func NewSatellite(name string, atmosphere bool, landToOrbit, orbitToElliptic, ellipticToParent int, parent *Body) (*Body, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: satellite %s has no parent", ErrInvalidConfiguration, name)
	}
	if parent.kind != PlanetKind {
		return nil, fmt.Errorf("%w: parent of %s (%s) is not a planet", ErrInvalidConfiguration, name, parent)
	}
	if err := checkCosts(name, landToOrbit, orbitToElliptic, ellipticToParent); err != nil {
		return nil, err
	}
	return &Body{name: name, atmosphere: atmosphere, landToOrbit: landToOrbit, orbitToElliptic: orbitToElliptic, kind: SatelliteKind, ellipticToParent: ellipticToParent, parent: parent}, nil
}

func checkCosts(name string, costs ...int) error {
	for _, dv := range costs {
		if dv < 0 {
			return fmt.Errorf("%w: negative delta-V %d for %s", ErrInvalidConfiguration, dv, name)
		}
	}
	return nil
}

// Name returns the name of this body.
func (b *Body) Name() string {
	return b.name
}

// HasAtmosphere returns whether this body has an atmosphere.
func (b *Body) HasAtmosphere() bool {
	return b.atmosphere
}

// LandToOrbit returns the cost from the surface to a low orbit.
func (b *Body) LandToOrbit() int {
	return b.landToOrbit
}

// OrbitToElliptic returns the cost from a low orbit to an elliptical orbit.
func (b *Body) OrbitToElliptic() int {
	return b.orbitToElliptic
}

// Kind returns whether this is a planet or a satellite.
func (b *Body) Kind() BodyKind {
	return b.kind
}

// IsPlanet is a shorthand for b.Kind() == PlanetKind.
func (b *Body) IsPlanet() bool {
	return b.kind == PlanetKind
}

// IsSatellite is a shorthand for b.Kind() == SatelliteKind.
func (b *Body) IsSatellite() bool {
	return b.kind == SatelliteKind
}

// EllipticToEscape returns the cost from an elliptical orbit to the edge of
// Kerbol's influence. Only defined for planets.
func (b *Body) EllipticToEscape() (int, bool) {
	if b.kind != PlanetKind {
		return 0, false
	}
	return b.ellipticToEscape, true
}

// EllipticToParent returns the cost from this satellite's elliptical orbit to
// the elliptical orbit of its parent. Only defined for satellites.
func (b *Body) EllipticToParent() (int, bool) {
	if b.kind != SatelliteKind {
		return 0, false
	}
	return b.ellipticToParent, true
}

// Parent returns the planet this satellite orbits, or nil for a planet.
func (b *Body) Parent() *Body {
	return b.parent
}

// DistanceToEllipse returns the cost to reach the elliptical orbit regime of the
// planetary system this body belongs to.
func (b *Body) DistanceToEllipse(orbiting bool) int {
	dv := b.orbitToElliptic
	if !orbiting {
		dv += b.landToOrbit
	}
	if b.kind == SatelliteKind {
		dv += b.ellipticToParent
	}
	return dv
}

// EscapeComponent returns the cost to leave the planetary system from its
// elliptical orbit: the planet's own escape cost, or the parent's for a satellite.
func (b *Body) EscapeComponent() int {
	switch b.kind {
	case PlanetKind:
		return b.ellipticToEscape
	case SatelliteKind:
		return b.parent.ellipticToEscape
	default:
		return 0
	}
}

// DistanceToEscape returns the cost to escape the planetary system this body belongs to.
func (b *Body) DistanceToEscape(orbiting bool) int {
	return b.DistanceToEllipse(orbiting) + b.EscapeComponent()
}

// String implements the Stringer interface.
func (b *Body) String() string {
	return b.name + " body"
}

// valid returns whether this body was built by one of the constructors.
func (b *Body) valid() bool {
	return b != nil && (b.kind == PlanetKind || (b.kind == SatelliteKind && b.parent != nil))
}
