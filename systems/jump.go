package systems

import (
	"log"
	"math"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Outcome classifies where a jump ends
type Outcome int

const (
	OutcomeLandedNext Outcome = iota
	OutcomeLandedCurrent
	OutcomeTouchedCurrent
	OutcomeTouchedNext
	OutcomeMissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLandedNext:
		return "LandedNext"
	case OutcomeLandedCurrent:
		return "LandedCurrent"
	case OutcomeTouchedCurrent:
		return "TouchedCurrent"
	case OutcomeTouchedNext:
		return "TouchedNext"
	}
	return "Missed"
}

// Success reports whether the player stays on a platform
func (o Outcome) Success() bool {
	return o == OutcomeLandedNext || o == OutcomeLandedCurrent
}

// JumpResolution is everything decided at the moment the charge is released
type JumpResolution struct {
	Axis     components.Axis
	Landing  mgl64.Vec3
	Duration float64
	Outcome  Outcome
	Fall     components.FallPlan // meaningful when the outcome is not a success
}

// LayoutAxis infers the axis the Next platform was laid out along
func LayoutAxis(current, next mgl64.Vec3) components.Axis {
	if math.Abs(next.X()-current.X()) < cfg.Jump.AxisEpsilon {
		return components.AxisZ
	}
	return components.AxisX
}

// LandingPosition converts a charge into a landing point at rest height
func LandingPosition(from mgl64.Vec3, axis components.Axis, elapsed float64) mgl64.Vec3 {
	landing := from.Add(axis.Direction().Mul(cfg.Jump.DistancePerSecond * elapsed))
	landing[1] = cfg.Player.InitialPosition.Y()
	return landing
}

// JumpDuration is the arc flight time for a charge
func JumpDuration(elapsed float64) float64 {
	return math.Max(cfg.Jump.MinDuration, elapsed/2)
}

// ResolveJump classifies a release of a charge held for elapsed seconds
func ResolveJump(playerPos mgl64.Vec3, elapsed float64, current, next PlatformSnapshot) JumpResolution {
	axis := LayoutAxis(current.Position, next.Position)
	landing := LandingPosition(playerPos, axis, elapsed)

	res := JumpResolution{
		Axis:     axis,
		Landing:  landing,
		Duration: JumpDuration(elapsed),
		Outcome:  OutcomeMissed,
		Fall:     components.FallPlan{Kind: components.FallStraight},
	}

	radius := cfg.Player.CollisionRadius
	switch {
	case next.Shape.IsLandedOn(next.Position, landing):
		res.Outcome = OutcomeLandedNext
	case current.Shape.IsLandedOn(current.Position, landing):
		res.Outcome = OutcomeLandedCurrent
	case current.Shape.IsTouched(current.Position, landing, radius):
		res.Outcome = OutcomeTouchedCurrent
		res.Fall = components.FallPlan{Kind: components.FallTilt, Direction: currentTiltDirection(axis)}
	case next.Shape.IsTouched(next.Position, landing, radius):
		res.Outcome = OutcomeTouchedNext
		res.Fall = components.FallPlan{Kind: components.FallTilt, Direction: nextTiltDirection(axis, landing, next.Position)}
	}
	return res
}

// currentTiltDirection is the axis the player tilts about after grazing the
// platform it just left. Rotating about -X (or -Z) swings the player sideways
// to -Z (or +X), not back along the jump.
func currentTiltDirection(axis components.Axis) mgl64.Vec3 {
	if axis == components.AxisX {
		return mgl64.Vec3{-1, 0, 0}
	}
	return mgl64.Vec3{0, 0, -1}
}

// nextTiltDirection tilts the player away from the edge of Next it grazed
func nextTiltDirection(axis components.Axis, landing, next mgl64.Vec3) mgl64.Vec3 {
	if axis == components.AxisX {
		if landing.X() < next.X() {
			return mgl64.Vec3{0, 0, 1}
		}
		return mgl64.Vec3{0, 0, -1}
	}
	if landing.Z() < next.Z() {
		return mgl64.Vec3{-1, 0, 0}
	}
	return mgl64.Vec3{1, 0, 0}
}

// UpdateJump turns jump input into charges and launches
func UpdateJump(e *ecs.ECS) {
	action := GetAction(getOrCreateInput(e), cfg.ActionJump)
	if action.JustPressed {
		PressJump(e)
	}
	if action.JustReleased {
		ReleaseJump(e)
	}
}

// PressJump starts a charge. Ignored while the player is in the air or
// right after the run started.
func PressJump(e *ecs.ECS) bool {
	if !GetPrepareJump(e).Ready() || !GetJump(e).Completed || !GetFall(e).Completed {
		return false
	}
	GetCharge(e).Start(GetClock(e).Now)
	PlaySFX(e, cfg.SoundChargeStart)
	return true
}

// ReleaseJump resolves the held charge and launches the arc. With no Next
// platform the charge is kept so the next release can use it.
func ReleaseJump(e *ecs.ECS) (JumpResolution, bool) {
	charge := GetCharge(e)
	if !GetPrepareJump(e).Ready() || !charge.Charging {
		return JumpResolution{}, false
	}

	next := MustNextPlatform(e.World)
	if next == nil {
		log.Printf("Warning: jump released with no next platform, keeping charge")
		return JumpResolution{}, false
	}
	current := MustCurrentPlatform(e.World)
	player := components.Transform.Get(MustPlayer(e.World))

	elapsed := charge.Elapsed(GetClock(e).Now)
	res := ResolveJump(player.Position, elapsed, snapshot(current), snapshot(next))

	switch res.Outcome {
	case OutcomeLandedNext:
		score := GetScore(e)
		score.Value++
		GetScoreUpQueue(e).Push(components.ScoreUpEvent{
			Position: res.Landing.Add(mgl64.Vec3{0, cfg.ScoreUp.HeightOffset, 0}),
		})
		PromoteNextPlatform(e, next)
	case OutcomeTouchedCurrent, OutcomeTouchedNext:
		log.Printf("Player touched platform edge (%s), tilting %v", res.Outcome, res.Fall.Direction)
	}

	charge.Clear()
	PlaySFX(e, cfg.SoundChargeStop)
	GetJump(e).Begin(player.Position, res.Landing, res.Duration, res.Axis, !res.Outcome.Success(), res.Fall)
	return res, true
}

// UpdateJumpAnimation flies the player along the arc toward the landing point
func UpdateJumpAnimation(e *ecs.ECS) {
	jump := GetJump(e)
	if jump.Completed {
		return
	}

	dt := GetClock(e).Delta
	transform := components.Transform.Get(MustPlayer(e.World))

	pivot := jump.StartPos.Add(jump.EndPos).Mul(0.5)
	arc := mgl64.QuatRotate(-math.Pi*dt/jump.Duration, jump.Axis.RotationAxis())
	spin := -2 * math.Pi * dt / jump.Duration

	// Look one step ahead so the player never dips below rest height.
	// Elapsed bounds the arc when the charge was too short to lift it.
	predicted := *transform
	predicted.TranslateAround(pivot, arc)
	jump.Elapsed += dt

	if predicted.Position.Y() < cfg.Player.InitialPosition.Y() || jump.Elapsed > jump.Duration+dt {
		transform.Position = jump.EndPos
		transform.Rotation = mgl64.QuatIdent()
		jump.Completed = true

		if jump.Failed {
			GetFall(e).Begin(jump.EndPos, jump.Fall)
			log.Printf("Starting %s fall at %v", jump.Fall.Kind, jump.EndPos)
		} else {
			PlaySFX(e, cfg.SoundSuccess)
		}
		return
	}

	transform.TranslateAround(pivot, arc)
	transform.RotateLocalAxis(jump.Axis.RotationAxis(), spin)
}
