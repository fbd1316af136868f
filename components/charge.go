package components

import "github.com/yohamta/donburi"

// ChargeData tracks the held jump input (singleton)
type ChargeData struct {
	Charging  bool
	StartedAt float64 // clock seconds, valid while Charging
	SparkIn   float64 // seconds until the next spark burst
}

var Charge = donburi.NewComponentType[ChargeData]()

// Start records the charge start time
func (c *ChargeData) Start(now float64) {
	c.Charging = true
	c.StartedAt = now
	c.SparkIn = 0
}

// Elapsed returns how long the input has been held, or 0 when not charging
func (c *ChargeData) Elapsed(now float64) float64 {
	if !c.Charging {
		return 0
	}
	return now - c.StartedAt
}

// Clear drops the charge
func (c *ChargeData) Clear() {
	c.Charging = false
	c.StartedAt = 0
	c.SparkIn = 0
}

// PrepareJumpData guards against the click that started the session
// being read as a jump (singleton)
type PrepareJumpData struct {
	Remaining float64 // seconds
}

var PrepareJump = donburi.NewComponentType[PrepareJumpData]()

// Ready reports whether jump input is accepted
func (p *PrepareJumpData) Ready() bool {
	return p.Remaining <= 0
}
