package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevelLayout(t *testing.T) {
	level := MustLoadDefaultLevel(96)

	// 63 floor blocks, 15 ledge blocks, the step and the pillar.
	require.Len(t, level.Blocks, 80)
	require.Len(t, level.Fires, 1)
	assert.True(t, level.HasSpawn)

	assert.Equal(t, 1056.0, level.OriginX)
	assert.Equal(t, BlockSpawn{X: 0, Y: 704}, level.Blocks[0])
	assert.Equal(t, BlockSpawn{X: 1056 + 51*96, Y: 704}, level.Blocks[62])
	assert.Equal(t, BlockSpawn{X: 1056 + 480, Y: 416}, level.Blocks[63])
	assert.Equal(t, BlockSpawn{X: 1056, Y: 608}, level.Blocks[78])
	assert.Equal(t, BlockSpawn{X: 1056 + 288, Y: 416}, level.Blocks[79])

	assert.Equal(t, FireSpawn{X: 1156, Y: 640, Lit: true}, level.Fires[0])
	assert.Equal(t, PlayerSpawn{X: 1156, Y: 100}, level.PlayerSpawn)
	assert.GreaterOrEqual(t, level.Width, 1056+52*96)
	assert.GreaterOrEqual(t, level.Height, 800)
	assert.Nil(t, level.Backdrop)
}

const customLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Blocks">
  <object id="1" x="64" y="96" width="64" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="Hazards">
  <object id="2" x="200" y="100" width="32" height="64">
   <properties>
    <property name="lit" type="bool" value="false"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadLevelFromFS(t *testing.T) {
	fsys := fstest.MapFS{"custom.tmx": {Data: []byte(customLevel)}}

	level, err := LoadLevel(fsys, "custom.tmx", 32)
	require.NoError(t, err)

	assert.Equal(t, []BlockSpawn{
		{X: 64, Y: 96}, {X: 96, Y: 96},
		{X: 64, Y: 128}, {X: 96, Y: 128},
	}, level.Blocks)
	require.Len(t, level.Fires, 1)
	assert.False(t, level.Fires[0].Lit)
	assert.False(t, level.HasSpawn)
	assert.Zero(t, level.OriginX)
	assert.Equal(t, 320, level.Width)
	assert.Equal(t, 160, level.Height)
}

func TestLoadLevelErrors(t *testing.T) {
	_, err := LoadLevel(fstest.MapFS{}, "missing.tmx", 96)
	assert.ErrorContains(t, err, "missing.tmx")

	_, err = LoadLevel(fstest.MapFS{"custom.tmx": {Data: []byte(customLevel)}}, "custom.tmx", 0)
	assert.ErrorContains(t, err, "block size")
}
