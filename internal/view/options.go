package view

import (
	"fmt"
	"image/color"
	"strings"
)

// Correction selects how wall endpoints outside the field of view are
// re-projected onto the view edge.
type Correction int

const (
	// CorrectionOff keeps the out-of-view endpoint's own angle.
	CorrectionOff Correction = iota
	// CorrectionSingle intersects the wall with the edge on the overflow side.
	CorrectionSingle
	// CorrectionVerified checks the intersection lands on that edge and
	// retries with the opposite edge when it does not.
	CorrectionVerified
)

func (c Correction) String() string {
	switch c {
	case CorrectionOff:
		return "off"
	case CorrectionSingle:
		return "single"
	case CorrectionVerified:
		return "verified"
	default:
		return fmt.Sprintf("Correction(%d)", int(c))
	}
}

// Next cycles through the correction modes.
func (c Correction) Next() Correction {
	return (c + 1) % 3
}

// ParseCorrection accepts the configuration spellings of a correction mode.
func ParseCorrection(s string) (Correction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return CorrectionOff, nil
	case "single", "single-sided":
		return CorrectionSingle, nil
	case "", "verified", "double-sided-verified":
		return CorrectionVerified, nil
	}
	return CorrectionOff, fmt.Errorf("unknown wall endpoint correction %q", s)
}

// ForwardModel selects how depth along the view axis is measured for the
// behind-camera cull and for the non-simple elevation distance.
type ForwardModel int

const (
	// ForwardWeighted scales the camera-to-point offset component-wise by
	// (cos dir, sin dir). This is not a projection onto the view axis, and it
	// shapes walls differently from ForwardDot.
	ForwardWeighted ForwardModel = iota
	// ForwardDot uses the dot product with the facing vector.
	ForwardDot
)

func (m ForwardModel) String() string {
	switch m {
	case ForwardWeighted:
		return "weighted"
	case ForwardDot:
		return "dot"
	default:
		return fmt.Sprintf("ForwardModel(%d)", int(m))
	}
}

// ParseForwardModel accepts the configuration spellings of a forward model.
func ParseForwardModel(s string) (ForwardModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weighted":
		return ForwardWeighted, nil
	case "dot":
		return ForwardDot, nil
	}
	return ForwardWeighted, fmt.Errorf("unknown forward model %q", s)
}

// Options configure a render pass. The zero Orderer means InsertionOrder.
type Options struct {
	ScreenWidth    int
	ScreenHeight   int
	SimpleDistance bool // Euclidean elevation distance instead of the forward model's
	Correction     Correction
	Forward        ForwardModel
	WallColor      color.RGBA // Used for walls without a color
	SkyColor       color.RGBA
	GroundColor    color.RGBA
	Orderer        Orderer
}

// DefaultOptions mirrors the reference engine: 800x600, weighted distance,
// verified endpoint correction.
func DefaultOptions() Options {
	return Options{
		ScreenWidth:  800,
		ScreenHeight: 600,
		Correction:   CorrectionVerified,
		Forward:      ForwardWeighted,
		WallColor:    color.RGBA{0, 0, 0, 255},
		SkyColor:     color.RGBA{0, 191, 255, 255},
		GroundColor:  color.RGBA{0, 128, 0, 255},
	}
}
