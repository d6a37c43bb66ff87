package components

import (
	"math"

	"github.com/automoto/xdash/assets/animations"
	"github.com/yohamta/donburi"
)

// PhysicsData is the player's body: velocity, airtime and the counters that
// drive jumping, the hit window and animation pacing. Position lives in the
// entity's Object.
type PhysicsData struct {
	VX, VY     float64
	FallFrames int // Ticks since the last ground contact
	JumpCount  int // 0 grounded, 1 single jump, 2 double jump
	Hit        bool
	HitFrames  int
	Facing     animations.Facing
	AnimFrame  int
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Integrate applies one tick of ramped gravity and returns the displacement
// for the tick. Gravity grows with airtime and is capped at gravity per tick.
// hitFrames is the length of the hit window in ticks.
func (p *PhysicsData) Integrate(tickRate int, gravity float64, hitFrames int) (dx, dy float64) {
	p.VY += math.Min(gravity, float64(p.FallFrames)/float64(tickRate)*gravity)
	dx, dy = p.VX, p.VY

	if p.Hit {
		p.HitFrames++
	}
	if p.HitFrames > hitFrames {
		p.Hit = false
		p.HitFrames = 0
	}

	p.FallFrames++
	return dx, dy
}

func (p *PhysicsData) MoveLeft(vel float64) {
	p.VX = -vel
	p.face(animations.Left)
}

func (p *PhysicsData) MoveRight(vel float64) {
	p.VX = vel
	p.face(animations.Right)
}

// face restarts the animation only when the direction actually changes.
func (p *PhysicsData) face(f animations.Facing) {
	if p.Facing != f {
		p.Facing = f
		p.AnimFrame = 0
	}
}

func (p *PhysicsData) CanJump(maxJumps int) bool {
	return p.JumpCount < maxJumps
}

// Jump launches the body with vy = -gravity*impulse. It reports false and
// leaves the body untouched once maxJumps is used up.
func (p *PhysicsData) Jump(gravity, impulse float64, maxJumps int) bool {
	if !p.CanJump(maxJumps) {
		return false
	}
	p.VY = -gravity * impulse
	p.AnimFrame = 0
	p.JumpCount++
	if p.JumpCount == 1 {
		// Drop the fall ramp built up before leaving the ground.
		p.FallFrames = 0
	}
	return true
}

// Landed is called on a downward contact.
func (p *PhysicsData) Landed() {
	p.FallFrames = 0
	p.VY = 0
	p.JumpCount = 0
}

// HitHead is called on an upward contact and bounces the body back down,
// keeping bounce of its speed.
func (p *PhysicsData) HitHead(bounce float64) {
	p.FallFrames = 0
	p.VY *= -bounce
}

// MakeHit starts the hit window. A hit during an open window neither extends
// nor restarts it.
func (p *PhysicsData) MakeHit() {
	p.Hit = true
}

func (p *PhysicsData) Pose() animations.Pose {
	return animations.Pose{
		Hit:       p.Hit,
		VX:        p.VX,
		VY:        p.VY,
		JumpCount: p.JumpCount,
		Facing:    p.Facing,
	}
}
