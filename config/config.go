package config

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	InitialPosition mgl64.Vec3 // Y is the rest height the player stands at
	CollisionRadius float64    // used for edge-touch probing

	// Charge squash (per second)
	SquashGrowRate   float64 // x/z growth while charging
	SquashShrinkRate float64 // y shrink while charging
	MaxSquashXZ      float64
	MinSquashY       float64
	SquashRecovery   float32 // seconds to spring back to scale 1 after release

	// Dimensions for drawing
	BodyRadius float64
	BodyHeight float64
	Color      color.RGBA
}

// PlatformConfig contains platform layout and geometry values
type PlatformConfig struct {
	FirstPosition  mgl64.Vec3
	Height         float64 // Y of every platform centre
	MinDistance    float64 // inclusive
	MaxDistance    float64 // exclusive
	BoxSize        float64 // side of the square Box footprint
	CylinderRadius float64
	Thickness      float64

	// Squash of the current platform while charging (per second)
	SquashShrinkRate float64
	MinSquashY       float64
}

// JumpConfig contains charge-to-distance values
type JumpConfig struct {
	DistancePerSecond float64 // landing displacement per second of charge
	MinDuration       float64 // floor of the arc animation, seconds
	AxisEpsilon       float64 // X difference below which the layout is along Z
	PrepareDelay      float64 // seconds of ignored input after entering play
}

// FallConfig contains fall state machine values
type FallConfig struct {
	DescentRate    float64 // units per second
	StraightFloor  float64 // straight fall ends below this height
	TiltFloor      float64 // tilt fall ends below this height
	TiltPivotDrop  float64 // pivot sits this far below the rest height
	TiltAngularRad float64 // radians per second
}

// CameraConfig contains camera behaviour and projection values
type CameraConfig struct {
	InitialOffset      mgl64.Vec3 // camera position relative to the player
	StepFraction       float64    // share of the remaining delta moved per frame
	RecomputeThreshold float64    // player movement that triggers a new step
	FieldOfView        float64    // degrees
	Near               float64
	Far                float64
}

// ScoreUpConfig contains "+1" popup values
type ScoreUpConfig struct {
	HeightOffset float64 // added to the landing Y when the event is queued
	RiseSpeed    float64 // units per second
	RiseLimit    float64 // popup removed above rest height + RiseLimit
	FadeDuration float32 // seconds
	Color        color.RGBA
}

// ChargeEffectConfig contains the spark effect shown while charging
type ChargeEffectConfig struct {
	SpawnInterval float64 // seconds between bursts
	SparksPerTick int
	Radius        float64
	Lifetime      float32 // seconds
	Size          float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	TextColor       color.RGBA
	Title           string
	StartLabel      string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	OverlayColor  color.RGBA
	TitleColor    color.RGBA
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	TextColor     color.RGBA
	Title         string
	RestartLabel  string
	MenuLabel     string
}

// RenderConfig contains world drawing values
type RenderConfig struct {
	GroundColor   color.RGBA
	SideShade     float64 // multiplier for platform side faces
	CylinderSides int
	ScoreboardX   int
	ScoreboardY   int
	ScoreColor    color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Skip menu and go directly to game
	Seed     int64 // 0 = seed from time
	Mute     bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Platform PlatformConfig
var Jump JumpConfig
var Fall FallConfig
var Camera CameraConfig
var ScoreUp ScoreUpConfig
var ChargeEffect ChargeEffectConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Pink      = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	ScoreBlue = color.RGBA{R: 128, G: 128, B: 255, A: 255}
	Blush     = color.RGBA{R: 242, G: 222, B: 224, A: 255}
	DarkGray  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		TPS:    60,
		Title:  "Hopper",
	}

	Player = PlayerConfig{
		InitialPosition: mgl64.Vec3{0, 1.5, 0},
		CollisionRadius: 0.2,

		SquashGrowRate:   0.12,
		SquashShrinkRate: 0.15,
		MaxSquashXZ:      1.3,
		MinSquashY:       0.6,
		SquashRecovery:   0.15,

		BodyRadius: 0.2,
		BodyHeight: 0.9,
		Color:      Pink,
	}

	Platform = PlatformConfig{
		FirstPosition:  mgl64.Vec3{0, 0.5, 0},
		Height:         0.5,
		MinDistance:    2.5,
		MaxDistance:    4.0,
		BoxSize:        1.5,
		CylinderRadius: 0.75,
		Thickness:      1.0,

		SquashShrinkRate: 0.15,
		MinSquashY:       0.6,
	}

	Jump = JumpConfig{
		DistancePerSecond: 3.0,
		MinDuration:       0.5,
		AxisEpsilon:       0.1,
		PrepareDelay:      0.2,
	}

	Fall = FallConfig{
		DescentRate:    0.7,
		StraightFloor:  0.5,
		TiltFloor:      0.2,
		TiltPivotDrop:  0.5,
		TiltAngularRad: math.Pi / 2,
	}

	Camera = CameraConfig{
		InitialOffset:      mgl64.Vec3{-5, 8, 5},
		StepFraction:       0.05,
		RecomputeThreshold: 0.1,
		FieldOfView:        45,
		Near:               0.1,
		Far:                100,
	}

	ScoreUp = ScoreUpConfig{
		HeightOffset: 0.5,
		RiseSpeed:    1.0,
		RiseLimit:    1.2,
		FadeDuration: 1.2,
		Color:        ScoreBlue,
	}

	ChargeEffect = ChargeEffectConfig{
		SpawnInterval: 0.2,
		SparksPerTick: 3,
		Radius:        1.0,
		Lifetime:      2.0,
		Size:          0.05,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      White,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 110, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		TextColor:       White,
		Title:           "HOPPER",
		StartLabel:      "Start",
	}

	GameOver = GameOverConfig{
		OverlayColor:  color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TitleColor:    color.RGBA{R: 255, G: 100, B: 100, A: 255},
		ButtonIdle:    color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:   color.RGBA{R: 80, G: 80, B: 110, A: 255},
		ButtonPressed: color.RGBA{R: 40, G: 40, B: 60, A: 255},
		TextColor:     White,
		Title:         "GAME OVER",
		RestartLabel:  "Restart",
		MenuLabel:     "Main Menu",
	}

	Render = RenderConfig{
		GroundColor:   Blush,
		SideShade:     0.7,
		CylinderSides: 24,
		ScoreboardX:   16,
		ScoreboardY:   32,
		ScoreColor:    DarkGray,
	}
}
