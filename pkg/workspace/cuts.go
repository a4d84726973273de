package workspace

import (
	"errors"
	"strings"
)

// DefaultMaxCuts is the allowance used when a class is added without one.
const DefaultMaxCuts = 3

// NewClassCut mints a class tracker starting at zero cuts.
func NewClassCut(className string, maxCuts int) (ClassCut, error) {
	if strings.TrimSpace(className) == "" {
		return ClassCut{}, errors.New("workspace: class name required")
	}
	if maxCuts <= 0 {
		maxCuts = DefaultMaxCuts
	}
	return ClassCut{
		ID:        NewID(),
		ClassName: className,
		CutCount:  0,
		MaxCuts:   maxCuts,
	}, nil
}

// ClassCuts is the attendance tracker collection.
type ClassCuts []ClassCut

// Add appends the tracker to a copy of the collection.
func (cs ClassCuts) Add(c ClassCut) ClassCuts {
	out := make(ClassCuts, 0, len(cs)+1)
	out = append(out, cs...)
	return append(out, c)
}

// Delete removes the tracker with the given id.
func (cs ClassCuts) Delete(id string) ClassCuts {
	out := make(ClassCuts, 0, len(cs))
	for _, c := range cs {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Adjust applies delta to a tracker's cut count, clamped at zero. There is no
// upper clamp; counts past the allowance are surfaced as over-limit.
func (cs ClassCuts) Adjust(id string, delta int) ClassCuts {
	out := append(ClassCuts(nil), cs...)
	for i := range out {
		if out[i].ID == id {
			next := out[i].CutCount + delta
			if next < 0 {
				next = 0
			}
			out[i].CutCount = next
			break
		}
	}
	return out
}

// Find returns the tracker with the given id.
func (cs ClassCuts) Find(id string) (ClassCut, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return ClassCut{}, false
}
