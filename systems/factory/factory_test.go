package factory

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/xdash/assets"
	"github.com/automoto/xdash/assets/animations"
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/automoto/xdash/tags"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func solid(w, h int) image.Image {
	return imaging.New(w, h, color.NRGBA{G: 255, A: 255})
}

func testPack() *assets.Pack {
	character := animations.Table{}
	for _, k := range animations.RequiredKeys() {
		character[k] = animations.Sequence{solid(64, 64)}
	}
	return &assets.Pack{
		Character: character,
		Block:     solid(96, 96),
		Fire: animations.Table{
			"on":  animations.Sequence{solid(32, 64)},
			"off": animations.Sequence{solid(32, 16)},
		},
		Background: solid(64, 64),
	}
}

func TestObstaclesGetInsertionOrder(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, 1000, 1000, 96, 96)

	a := CreateBlock(w, 0, 0, solid(96, 96))
	f := CreateFire(w, 200, 0, testPack().Fire, false, 0)
	b := CreateBlock(w, 400, 0, solid(96, 96))

	assert.Equal(t, 0, components.Obstacle.Get(a).Order)
	assert.Equal(t, 1, components.Obstacle.Get(f).Order)
	assert.Equal(t, 2, components.Obstacle.Get(b).Order)

	entry, _ := components.Space.First(w)
	assert.Len(t, components.Space.Get(entry).Objects(), 3)
}

func TestBlockTakesImageSize(t *testing.T) {
	w := donburi.NewWorld()
	block := CreateBlock(w, 10, 20, solid(96, 48))

	obj := components.Object.Get(block)
	assert.Equal(t, 96.0, obj.W)
	assert.Equal(t, 48.0, obj.H)
	assert.True(t, obj.HasTags(tags.ResolvSolid))
	assert.Same(t, block, obj.Data)
	assert.Equal(t, 96*48, components.Sprite.Get(block).Mask.Count())
}

func TestFireStartsInRequestedState(t *testing.T) {
	w := donburi.NewWorld()
	lit := CreateFire(w, 0, 0, testPack().Fire, true, 0)
	unlit := CreateFire(w, 100, 0, testPack().Fire, false, 0)

	assert.Equal(t, components.FireOn, components.Fire.Get(lit).State)
	assert.Equal(t, 64.0, components.Object.Get(lit).H)
	assert.Equal(t, components.FireOff, components.Fire.Get(unlit).State)
	assert.Equal(t, 16.0, components.Object.Get(unlit).H)
	assert.True(t, lit.HasComponent(tags.Hazard))
	assert.False(t, lit.HasComponent(components.FireScript))
}

func TestFireScriptAttachedWithPeriod(t *testing.T) {
	w := donburi.NewWorld()
	fire := CreateFire(w, 0, 0, testPack().Fire, true, 2)

	require.True(t, fire.HasComponent(components.FireScript))
	assert.NotNil(t, components.FireScript.Get(fire).Timer)
}

func TestCreatePlayerRejectsIncompleteTable(t *testing.T) {
	w := donburi.NewWorld()
	table := testPack().Character
	delete(table, "double_jump_left")

	_, err := CreatePlayer(w, 0, 0, "Broken", table)
	require.ErrorIs(t, err, animations.ErrMissingAnimation)
	assert.Contains(t, err.Error(), "double_jump_left")
}

func TestCreatePlayerStartsIdleFacingLeft(t *testing.T) {
	cfg.Reset()
	w := donburi.NewWorld()
	player, err := CreatePlayer(w, 100, 100, "MaskDude", testPack().Character)
	require.NoError(t, err)

	physics := components.Physics.Get(player)
	assert.Equal(t, animations.Left, physics.Facing)
	assert.Equal(t, 0, physics.JumpCount)
	assert.Equal(t, "idle_left", components.Animation.Get(player).Current)

	obj := components.Object.Get(player)
	assert.Equal(t, 64.0, obj.W)
	assert.Equal(t, 64.0, obj.H)
	assert.Equal(t, "MaskDude", components.Player.Get(player).Character)
}

func TestBuildWorldUsesConfigSpawnWithoutLevelSpawn(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	level := &assets.Level{
		Blocks:  []assets.BlockSpawn{{X: 50, Y: 500}, {X: 146, Y: 500}},
		Fires:   []assets.FireSpawn{{X: 300, Y: 436, Lit: true}},
		Width:   1000,
		Height:  700,
		OriginX: 50,
	}
	w := donburi.NewWorld()
	player, err := BuildWorld(w, level, testPack())
	require.NoError(t, err)

	obj := components.Object.Get(player)
	assert.Equal(t, cfg.Player.SpawnX+50, obj.X)
	assert.Equal(t, cfg.Player.SpawnY, obj.Y)

	blocks := 0
	tags.Block.Each(w, func(*donburi.Entry) { blocks++ })
	assert.Equal(t, 2, blocks)

	fires := 0
	tags.Fire.Each(w, func(*donburi.Entry) { fires++ })
	assert.Equal(t, 1, fires)

	vp, ok := components.Viewport.First(w)
	require.True(t, ok)
	assert.Equal(t, 50.0, components.Viewport.Get(vp).OffsetX)
	assert.Equal(t, float64(cfg.C.Width), components.Viewport.Get(vp).ScreenWidth)

	_, ok = components.Settings.First(w)
	assert.True(t, ok)
	_, ok = components.Input.First(w)
	assert.True(t, ok)
	_, ok = components.Space.First(w)
	assert.True(t, ok)
	levelEntry, ok := components.Level.First(w)
	require.True(t, ok)
	assert.Same(t, level, components.Level.Get(levelEntry).CurrentLevel)
}
