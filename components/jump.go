package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Axis is the horizontal axis the next platform is laid out along
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	if a == AxisZ {
		return "Z"
	}
	return "X"
}

// Direction is the unit travel direction along the axis (+X or -Z)
func (a Axis) Direction() mgl64.Vec3 {
	if a == AxisZ {
		return mgl64.Vec3{0, 0, -1}
	}
	return mgl64.Vec3{1, 0, 0}
}

// RotationAxis is the horizontal axis perpendicular to travel
func (a Axis) RotationAxis() mgl64.Vec3 {
	if a == AxisZ {
		return mgl64.Vec3{1, 0, 0}
	}
	return mgl64.Vec3{0, 0, 1}
}

// JumpData is the arc-flight state (singleton). Completed is the idle state.
type JumpData struct {
	StartPos  mgl64.Vec3
	EndPos    mgl64.Vec3
	Duration  float64 // seconds
	Elapsed   float64
	Axis      Axis
	Failed    bool
	Completed bool

	// Fall to start once the arc lands, meaningful when Failed
	Fall FallPlan
}

var Jump = donburi.NewComponentType[JumpData]()

// NewJumpData returns an idle jump state
func NewJumpData() JumpData {
	return JumpData{Completed: true}
}

// Begin starts an arc from start to end. Starting while a jump is in flight
// means two systems are driving the player and is treated as fatal.
func (j *JumpData) Begin(start, end mgl64.Vec3, duration float64, axis Axis, failed bool, fall FallPlan) {
	if !j.Completed {
		panic("jump started while another jump is in progress")
	}
	j.StartPos = start
	j.EndPos = end
	j.Duration = duration
	j.Elapsed = 0
	j.Axis = axis
	j.Failed = failed
	j.Fall = fall
	j.Completed = false
}
