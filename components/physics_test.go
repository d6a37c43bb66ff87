package components

import (
	"testing"

	"github.com/automoto/xdash/assets/animations"
	"github.com/stretchr/testify/assert"
)

const (
	tickRate  = 60
	gravity   = 1.0
	impulse   = 8.0
	maxJumps  = 2
	hitFrames = 2 * tickRate
)

func TestIntegrateRampsGravity(t *testing.T) {
	p := PhysicsData{}

	_, dy := p.Integrate(tickRate, gravity, hitFrames)
	assert.Zero(t, dy, "no gravity on the first airborne tick")
	assert.Equal(t, 1, p.FallFrames)

	_, dy = p.Integrate(tickRate, gravity, hitFrames)
	assert.InDelta(t, 1.0/60, dy, 1e-9)

	p.FallFrames = 120
	p.VY = 5
	_, dy = p.Integrate(tickRate, gravity, hitFrames)
	assert.Equal(t, 6.0, dy, "gravity is capped at one unit per tick")
}

func TestIntegrateReturnsVelocity(t *testing.T) {
	p := PhysicsData{VX: -10}
	dx, _ := p.Integrate(tickRate, gravity, hitFrames)
	assert.Equal(t, -10.0, dx)
}

func TestHitWindowClearsAfterTwoSeconds(t *testing.T) {
	p := PhysicsData{}
	p.MakeHit()

	for i := 0; i < hitFrames; i++ {
		p.Integrate(tickRate, gravity, hitFrames)
		assert.True(t, p.Hit, "tick %d", i)
	}
	p.Integrate(tickRate, gravity, hitFrames)
	assert.False(t, p.Hit)
	assert.Zero(t, p.HitFrames)
}

func TestMakeHitDoesNotExtendWindow(t *testing.T) {
	p := PhysicsData{}
	p.MakeHit()
	for i := 0; i < 100; i++ {
		p.Integrate(tickRate, gravity, hitFrames)
	}
	p.MakeHit()
	assert.Equal(t, 100, p.HitFrames)

	for i := 0; i < 21; i++ {
		p.Integrate(tickRate, gravity, hitFrames)
	}
	assert.False(t, p.Hit)
}

func TestMoveResetsAnimationOnlyOnTurn(t *testing.T) {
	p := PhysicsData{Facing: animations.Left, AnimFrame: 7}

	p.MoveLeft(10)
	assert.Equal(t, -10.0, p.VX)
	assert.Equal(t, 7, p.AnimFrame)

	p.MoveRight(10)
	assert.Equal(t, 10.0, p.VX)
	assert.Equal(t, animations.Right, p.Facing)
	assert.Zero(t, p.AnimFrame)

	p.AnimFrame = 4
	p.MoveRight(10)
	assert.Equal(t, 4, p.AnimFrame)
}

func TestMoveRightFromRest(t *testing.T) {
	p := PhysicsData{AnimFrame: 12}
	p.MoveRight(10)

	assert.Equal(t, animations.Right, p.Facing)
	assert.Zero(t, p.AnimFrame)
	assert.Equal(t, "run_right", animations.SelectKey(p.Pose(), gravity))
}

func TestDoubleJumpLimit(t *testing.T) {
	p := PhysicsData{FallFrames: 30, AnimFrame: 9}

	assert.True(t, p.Jump(gravity, impulse, maxJumps))
	assert.Equal(t, 1, p.JumpCount)
	assert.Equal(t, -8.0, p.VY)
	assert.Zero(t, p.FallFrames)
	assert.Zero(t, p.AnimFrame)

	p.FallFrames = 10
	p.VY = -2
	assert.True(t, p.Jump(gravity, impulse, maxJumps))
	assert.Equal(t, 2, p.JumpCount)
	assert.Equal(t, -8.0, p.VY)
	assert.Equal(t, 10, p.FallFrames, "second jump keeps the fall ramp")

	before := p
	assert.False(t, p.CanJump(maxJumps))
	assert.False(t, p.Jump(gravity, impulse, maxJumps))
	assert.Equal(t, before, p)
}

func TestLandedAndHitHead(t *testing.T) {
	p := PhysicsData{VY: 3, FallFrames: 40, JumpCount: 2}
	p.Landed()
	assert.Equal(t, PhysicsData{}, p)

	p = PhysicsData{VY: -5, FallFrames: 4, JumpCount: 1}
	p.HitHead(0.8)
	assert.InDelta(t, 4.0, p.VY, 1e-9)
	assert.Zero(t, p.FallFrames)
	assert.Equal(t, 1, p.JumpCount)
}
