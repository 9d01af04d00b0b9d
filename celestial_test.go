package kspdv

import (
	"errors"
	"testing"
)

func TestBodyAccessors(t *testing.T) {
	if Kerbin.Name() != "Kerbin" || !Kerbin.HasAtmosphere() || Kerbin.LandToOrbit() != 3400 || Kerbin.OrbitToElliptic() != 0 {
		t.Fatalf("invalid Kerbin: %+v", *Kerbin)
	}
	if esc, ok := Kerbin.EllipticToEscape(); !ok || esc != 950 {
		t.Fatalf("Kerbin escape = %d (%v)", esc, ok)
	}
	if _, ok := Kerbin.EllipticToParent(); ok {
		t.Fatal("a planet has no elliptic to parent cost")
	}
	if Kerbin.Parent() != nil {
		t.Fatal("a planet has no parent")
	}
	if Mun.Kind() != SatelliteKind || !Mun.IsSatellite() || Mun.IsPlanet() {
		t.Fatalf("Mun is a %s", Mun.Kind())
	}
	if toParent, ok := Mun.EllipticToParent(); !ok || toParent != 860 {
		t.Fatalf("Mun to parent = %d (%v)", toParent, ok)
	}
	if _, ok := Mun.EllipticToEscape(); ok {
		t.Fatal("a satellite has no escape cost of its own")
	}
	if Mun.Parent() != Kerbin {
		t.Fatalf("Mun parent is %s", Mun.Parent())
	}
	if !Laythe.HasAtmosphere() || Tylo.HasAtmosphere() {
		t.Fatal("invalid atmosphere flags")
	}
	if Kerbin.String() != "Kerbin body" {
		t.Fatalf("invalid String(): %s", Kerbin)
	}
}

func TestDistances(t *testing.T) {
	for _, exp := range []struct {
		body            *Body
		orbiting        bool
		ellipse, escape int
	}{
		{Kerbin, false, 3400, 4350},
		{Kerbin, true, 0, 950},
		{Mun, true, 310 + 860, 310 + 860 + 950},
		{Mun, false, 580 + 310 + 860, 580 + 310 + 860 + 950},
		{Minmus, true, 160 + 930, 160 + 930 + 950},
		{Duna, false, 1450 + 360, 1450 + 360 + 380},
		{Ike, false, 390 + 180 + 30, 390 + 180 + 30 + 380},
		{Gilly, true, 410 + 60, 410 + 60 + 170},
		{Laythe, false, 2900 + 1070 + 930, 2900 + 1070 + 930 + 1140},
	} {
		if dv := exp.body.DistanceToEllipse(exp.orbiting); dv != exp.ellipse {
			t.Fatalf("%s (orbiting=%v) ellipse: got %d exp %d", exp.body, exp.orbiting, dv, exp.ellipse)
		}
		if dv := exp.body.DistanceToEscape(exp.orbiting); dv != exp.escape {
			t.Fatalf("%s (orbiting=%v) escape: got %d exp %d", exp.body, exp.orbiting, dv, exp.escape)
		}
	}
}

func TestEscapeIsEllipsePlusComponent(t *testing.T) {
	for _, b := range KerbolSystem().Bodies() {
		var component int
		if b.IsPlanet() {
			component, _ = b.EllipticToEscape()
		} else {
			component, _ = b.Parent().EllipticToEscape()
		}
		if b.EscapeComponent() != component {
			t.Fatalf("%s escape component = %d != %d", b, b.EscapeComponent(), component)
		}
		for _, orbiting := range []bool{true, false} {
			if b.DistanceToEscape(orbiting) != b.DistanceToEllipse(orbiting)+component {
				t.Fatalf("%s (orbiting=%v): escape != ellipse + %d", b, orbiting, component)
			}
		}
	}
}

func TestNewSatelliteInvalidParent(t *testing.T) {
	sat, err := NewSatellite("Moonlet", false, 10, 20, 30, Mun)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
	if sat != nil {
		t.Fatal("no satellite should be returned on error")
	}
	if sat, err = NewSatellite("Orphan", false, 10, 20, 30, nil); !errors.Is(err, ErrInvalidConfiguration) || sat != nil {
		t.Fatalf("nil parent accepted: %v", err)
	}
	if sat, err = NewSatellite("Ghost", false, 10, 20, 30, &Body{name: "Nowhere"}); !errors.Is(err, ErrInvalidConfiguration) || sat != nil {
		t.Fatalf("zero body parent accepted: %v", err)
	}
}

func TestNegativeCosts(t *testing.T) {
	if _, err := NewPlanet("Bad", false, -1, 0, 0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("negative land to orbit accepted: %v", err)
	}
	if _, err := NewSatellite("Bad", false, 0, 0, -5, Kerbin); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("negative elliptic to parent accepted: %v", err)
	}
}

func TestPanics(t *testing.T) {
	assertPanic(t, func() {
		mustPlanet("Fake", false, -1, -1, -1)
	})
	assertPanic(t, func() {
		mustSatellite("Fake", false, 1, 1, 1, Ike)
	})
	assertPanic(t, func() {
		mustCatalog(Kerbin, Kerbin)
	})
}

func TestBodyKindString(t *testing.T) {
	for kind, exp := range map[BodyKind]string{PlanetKind: "planet", SatelliteKind: "satellite", unknownBody: "unknown"} {
		if kind.String() != exp {
			t.Fatalf("%s != %s", kind, exp)
		}
	}
}
