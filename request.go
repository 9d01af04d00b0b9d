package kspdv

import (
	"fmt"
	"strconv"
	"strings"
)

// Request is a flight path request where bodies are referred to by name or by index.
type Request struct {
	Start, End                 string
	StartOrbiting, EndOrbiting bool
}

// Resolve returns the body from its name (case insensitive) or its zero-based index.
// Indices are plain decimal digits, without a sign.
func (c *Catalog) Resolve(id string) (*Body, error) {
	id = strings.TrimSpace(id)
	if b, err := c.ByName(id); err == nil {
		return b, nil
	}
	if id == "" || id[0] < '0' || id[0] > '9' {
		return nil, fmt.Errorf("%w: undefined body '%s'", ErrInvalidConfiguration, id)
	}
	if i, err := strconv.Atoi(id); err == nil {
		if b := c.At(i); b != nil {
			return b, nil
		}
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidConfiguration, i, c.Len())
	}
	return nil, fmt.Errorf("%w: undefined body '%s'", ErrInvalidConfiguration, id)
}

// FlightPath returns the flight path of the request.
func (c *Catalog) FlightPath(r Request) (*FlightPath, error) {
	start, err := c.Resolve(r.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := c.Resolve(r.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return NewFlightPath(start, end, r.StartOrbiting, r.EndOrbiting)
}

// Evaluate returns the delta-V of the request.
func (c *Catalog) Evaluate(r Request) (int, error) {
	fp, err := c.FlightPath(r)
	if err != nil {
		return 0, err
	}
	return fp.DeltaV(), nil
}
