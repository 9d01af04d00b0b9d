package kspdv

import (
	"fmt"
	"strings"
)

// Catalog is an ordered, read-only set of bodies. The position of a body in
// the catalog is its index.
type Catalog struct {
	bodies []*Body
	byName map[string]int
}

// NewCatalog returns a catalog of the provided bodies, in order.
// Names must be unique (case insensitive) and every satellite's parent must
// be part of the catalog.
func NewCatalog(bodies ...*Body) (*Catalog, error) {
	c := &Catalog{make([]*Body, len(bodies)), make(map[string]int, len(bodies))}
	for i, b := range bodies {
		if !b.valid() {
			return nil, fmt.Errorf("%w: body #%d is not a planet or a satellite", ErrInvalidConfiguration, i)
		}
		key := strings.ToLower(b.name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate body name %s", ErrInvalidConfiguration, b.name)
		}
		c.byName[key] = i
		c.bodies[i] = b
	}
	for _, b := range c.bodies {
		if b.IsSatellite() && c.Index(b.parent) < 0 {
			return nil, fmt.Errorf("%w: parent %s of %s is not in the catalog", ErrInvalidConfiguration, b.parent.name, b.name)
		}
	}
	return c, nil
}

// Len returns the number of bodies.
func (c *Catalog) Len() int {
	return len(c.bodies)
}

// At returns the body at index i, or nil if i is out of range.
func (c *Catalog) At(i int) *Body {
	if i < 0 || i >= len(c.bodies) {
		return nil
	}
	return c.bodies[i]
}

// Bodies returns a copy of the ordered bodies.
func (c *Catalog) Bodies() []*Body {
	rtn := make([]*Body, len(c.bodies))
	copy(rtn, c.bodies)
	return rtn
}

// ByName returns the body from its name, ignoring case.
func (c *Catalog) ByName(name string) (*Body, error) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: undefined body '%s'", ErrInvalidConfiguration, name)
	}
	return c.bodies[i], nil
}

// Index returns the index of the provided body, or -1 if it is not in this catalog.
// Bodies are compared by identity.
func (c *Catalog) Index(b *Body) int {
	if b == nil {
		return -1
	}
	i, ok := c.byName[strings.ToLower(b.name)]
	if !ok || c.bodies[i] != b {
		return -1
	}
	return i
}

// Planets returns the planets, in catalog order.
func (c *Catalog) Planets() []*Body {
	var rtn []*Body
	for _, b := range c.bodies {
		if b.IsPlanet() {
			rtn = append(rtn, b)
		}
	}
	return rtn
}

// Satellites returns the satellites of the provided planet, in catalog order.
func (c *Catalog) Satellites(planet *Body) []*Body {
	var rtn []*Body
	for _, b := range c.bodies {
		if b.IsSatellite() && b.parent == planet {
			rtn = append(rtn, b)
		}
	}
	return rtn
}

/* Definitions */
// Values from the Kerbal Space Program delta-V map 1.3.0. Legs which are always
// flown together are aggregated.

// Kerbin is home.
var Kerbin = mustPlanet("Kerbin", true, 3400, 0, 950)

// Mun is the first stop.
var Mun = mustSatellite("Mun", false, 580, 310, 860, Kerbin)

// Minmus is flat and cheap to land on.
var Minmus = mustSatellite("Minmus", false, 180, 160, 930, Kerbin)

// Kerbol is the star. Landing is not recommended.
var Kerbol = mustPlanet("Kerbol", false, 67000, 13700, 6000)

// Eeloo is far.
var Eeloo = mustPlanet("Eeloo", false, 620, 1370, 1140)

// Moho is close to Kerbol.
var Moho = mustPlanet("Moho", false, 870, 2410, 760)

// Eve is easy to get to and hard to leave.
var Eve = mustPlanet("Eve", false, 8000, 1330, 170)

// Gilly orbits Eve.
var Gilly = mustSatellite("Gilly", false, 30, 410, 60, Eve)

// Duna is red.
var Duna = mustPlanet("Duna", false, 1450, 360, 380)

// Ike orbits Duna.
var Ike = mustSatellite("Ike", false, 390, 180, 30, Duna)

// Dres is often forgotten.
var Dres = mustPlanet("Dres", false, 430, 1290, 610)

// Jool is a gas giant: there is no surface to land on.
var Jool = mustPlanet("Jool", false, 14000, 2810, 1140)

// Pol orbits Jool.
var Pol = mustSatellite("Pol", false, 130, 820, 160, Jool)

// Bop orbits Jool.
var Bop = mustSatellite("Bop", false, 230, 900, 220, Jool)

// Tylo orbits Jool and has no atmosphere to brake with.
var Tylo = mustSatellite("Tylo", false, 2270, 1100, 400, Jool)

// Vall orbits Jool.
var Vall = mustSatellite("Vall", false, 860, 910, 620, Jool)

// Laythe orbits Jool.
var Laythe = mustSatellite("Laythe", true, 2900, 1070, 930, Jool)

var kerbolSystem = mustCatalog(Kerbin, Mun, Minmus,
	Kerbol,
	Eeloo,
	Moho,
	Eve, Gilly,
	Duna, Ike,
	Dres,
	Jool, Pol, Bop, Tylo, Vall, Laythe)

// KerbolSystem returns the catalog of the Kerbol system.
func KerbolSystem() *Catalog {
	return kerbolSystem
}

// BodyFromString returns the body of the Kerbol system from its name.
func BodyFromString(name string) (*Body, error) {
	return kerbolSystem.ByName(name)
}

func mustPlanet(name string, atmosphere bool, landToOrbit, orbitToElliptic, ellipticToEscape int) *Body {
	b, err := NewPlanet(name, atmosphere, landToOrbit, orbitToElliptic, ellipticToEscape)
	if err != nil {
		panic(err)
	}
	return b
}

func mustSatellite(name string, atmosphere bool, landToOrbit, orbitToElliptic, ellipticToParent int, parent *Body) *Body {
	b, err := NewSatellite(name, atmosphere, landToOrbit, orbitToElliptic, ellipticToParent, parent)
	if err != nil {
		panic(err)
	}
	return b
}

func mustCatalog(bodies ...*Body) *Catalog {
	c, err := NewCatalog(bodies...)
	if err != nil {
		panic(err)
	}
	return c
}
