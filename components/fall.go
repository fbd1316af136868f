package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FallKind selects the failure animation
type FallKind int

const (
	FallStraight FallKind = iota
	FallTilt
)

func (k FallKind) String() string {
	if k == FallTilt {
		return "Tilt"
	}
	return "Straight"
}

// FallPlan is the outcome of a failed landing, decided when the jump resolves
type FallPlan struct {
	Kind      FallKind
	Direction mgl64.Vec3 // tilt axis, only for FallTilt
}

// FallData is the post-failure motion state (singleton). Completed is the idle state.
type FallData struct {
	Origin        mgl64.Vec3
	Kind          FallKind
	Direction     mgl64.Vec3
	TiltCompleted bool
	Completed     bool
	SoundPlayed   bool
}

var Fall = donburi.NewComponentType[FallData]()

// NewFallData returns an idle fall state
func NewFallData() FallData {
	return FallData{
		TiltCompleted: true,
		Completed:     true,
		SoundPlayed:   true,
	}
}

// Begin starts the planned fall at origin. Starting while a fall is running is fatal.
func (f *FallData) Begin(origin mgl64.Vec3, plan FallPlan) {
	if !f.Completed {
		panic("fall started while another fall is in progress")
	}
	f.Origin = origin
	f.Kind = plan.Kind
	f.Direction = plan.Direction
	f.TiltCompleted = plan.Kind != FallTilt
	f.Completed = false
	f.SoundPlayed = false
}
