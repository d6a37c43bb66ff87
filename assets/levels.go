package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// DefaultLevel is the embedded level loaded when no level file is given.
const DefaultLevel = "levels/xdash.tmx"

type BlockSpawn struct {
	X, Y float64
}

type FireSpawn struct {
	X, Y float64
	Lit  bool
}

type PlayerSpawn struct {
	X, Y float64
}

// Level is the world layout read from a Tiled map. Coordinates are shifted
// right by OriginX so nothing sits left of zero; the viewport starts at
// OriginX, which keeps the screen layout identical to the map.
type Level struct {
	Name        string
	Blocks      []BlockSpawn
	Fires       []FireSpawn
	PlayerSpawn PlayerSpawn
	HasSpawn    bool
	Width       int
	Height      int
	OriginX     float64

	// Tile layers marked with the "render" property, drawn behind the world
	// at x = OriginX. Nil when the map has none.
	Backdrop image.Image
}

// MustLoadDefaultLevel loads the embedded level and panics on failure.
func MustLoadDefaultLevel(blockSize int) Level {
	level, err := LoadLevel(levelFS, DefaultLevel, blockSize)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevelFile loads a .tmx file from disk.
func LoadLevelFile(path string, blockSize int) (Level, error) {
	return LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path), blockSize)
}

// LoadLevel reads the map at name from fsys. Object groups:
//   - Blocks: rectangles tiled into blockSize squares, row by row
//   - Hazards: fires, with an optional bool "lit" property (default true)
//   - PlayerSpawn: the first object is the player start
func LoadLevel(fsys fs.FS, name string, blockSize int) (Level, error) {
	if blockSize <= 0 {
		return Level{}, fmt.Errorf("load level %s: block size must be positive", name)
	}
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", name, err)
	}

	level := Level{Name: name}
	bs := float64(blockSize)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Blocks":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					log.Printf("Warning: block object %d in %s has no size, skipping", o.ID, name)
					continue
				}
				rows := int(math.Ceil(o.Height / bs))
				cols := int(math.Ceil(o.Width / bs))
				for r := 0; r < rows; r++ {
					for c := 0; c < cols; c++ {
						level.Blocks = append(level.Blocks, BlockSpawn{
							X: o.X + float64(c)*bs,
							Y: o.Y + float64(r)*bs,
						})
					}
				}
			}
		case "Hazards":
			for _, o := range og.Objects {
				level.Fires = append(level.Fires, FireSpawn{
					X:   o.X,
					Y:   o.Y,
					Lit: o.Properties.GetString("lit") != "false",
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 && !level.HasSpawn {
				level.PlayerSpawn = PlayerSpawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
				level.HasSpawn = true
			}
		}
	}

	level.normalize(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight, bs)

	backdrop, err := renderBackdrop(levelMap, fsys)
	if err != nil {
		log.Printf("Warning: failed to render tile layers of %s: %v", name, err)
	}
	level.Backdrop = backdrop

	return level, nil
}

// normalize shifts the level right so the leftmost object sits at x >= 0
// and sizes the level to cover every object.
func (l *Level) normalize(mapW, mapH int, bs float64) {
	minX := 0.0
	for _, b := range l.Blocks {
		minX = math.Min(minX, b.X)
	}
	for _, f := range l.Fires {
		minX = math.Min(minX, f.X)
	}
	if l.HasSpawn {
		minX = math.Min(minX, l.PlayerSpawn.X)
	}

	l.OriginX = -minX
	maxX, maxY := float64(mapW)+l.OriginX, float64(mapH)
	for i := range l.Blocks {
		l.Blocks[i].X += l.OriginX
		maxX = math.Max(maxX, l.Blocks[i].X+bs)
		maxY = math.Max(maxY, l.Blocks[i].Y+bs)
		if l.Blocks[i].Y < 0 {
			log.Printf("Warning: block at y=%.0f in %s is above the level", l.Blocks[i].Y, l.Name)
		}
	}
	for i := range l.Fires {
		l.Fires[i].X += l.OriginX
	}
	if l.HasSpawn {
		l.PlayerSpawn.X += l.OriginX
	}
	l.Width = int(math.Ceil(maxX))
	l.Height = int(math.Ceil(maxY))
}

func renderBackdrop(levelMap *tiled.Map, fsys fs.FS) (image.Image, error) {
	var visible []int
	for i, layer := range levelMap.Layers {
		if layer.Properties.GetBool("render") {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return nil, nil
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, err
	}
	for _, i := range visible {
		if err := renderer.RenderLayer(i); err != nil {
			return nil, err
		}
	}
	return renderer.Result, nil
}
