package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a one-shot command bound to a key.
type Action int

const (
	ToggleSimpleDistance Action = iota
	CycleCorrection
	ToggleForwardModel
	ToggleHUD
	ToggleOverhead
	ResetCamera
)

func (a Action) String() string {
	switch a {
	case ToggleSimpleDistance:
		return "toggle simple distance"
	case CycleCorrection:
		return "cycle endpoint correction"
	case ToggleForwardModel:
		return "toggle forward model"
	case ToggleHUD:
		return "toggle HUD"
	case ToggleOverhead:
		return "toggle overhead map"
	case ResetCamera:
		return "reset camera"
	}
	return "unknown"
}

// Binding ties a key to an action.
type Binding struct {
	Key    ebiten.Key
	Action Action
}

// Bindings lists the one-shot keys in the order they are polled.
var Bindings = []Binding{
	{ebiten.Key1, ToggleSimpleDistance},
	{ebiten.Key2, CycleCorrection},
	{ebiten.Key3, ToggleForwardModel},
	{ebiten.KeyH, ToggleHUD},
	{ebiten.KeyTab, ToggleOverhead},
	{ebiten.KeyR, ResetCamera},
}

// JustPressed returns the actions whose keys went down this tick.
func JustPressed() []Action {
	return Actions(inpututil.IsKeyJustPressed)
}

// Actions returns the actions whose keys justPressed reports.
func Actions(justPressed KeyState) []Action {
	var actions []Action
	for _, b := range Bindings {
		if justPressed(b.Key) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}
