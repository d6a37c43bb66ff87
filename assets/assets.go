package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/automoto/xdash/assets/animations"
	"github.com/disintegration/imaging"
)

// Loader reads sprite sheets laid out as <dir1>/<dir2>/<animation>.png from
// an fs.FS. Frames are sliced from horizontal strips and scaled up with
// nearest-neighbour sampling.
type Loader struct {
	fsys  fs.FS
	scale int

	// Procedural art is used in place of missing files when set.
	Fallback bool
}

func NewLoader(fsys fs.FS, scale int) *Loader {
	if scale <= 0 {
		scale = 1
	}
	return &Loader{fsys: fsys, scale: scale, Fallback: true}
}

// Pack is everything the world needs to draw and collide.
type Pack struct {
	Character  animations.Table
	Block      image.Image
	Fire       animations.Table
	Background image.Image
}

// PackOptions selects what LoadPack reads.
type PackOptions struct {
	Character  string
	FrameSize  int
	BlockSize  int
	FireWidth  int
	FireHeight int
	Background string
}

// LoadPack loads the character, terrain, fire and background images and
// checks that the character covers every animation the game can select.
func (l *Loader) LoadPack(opts PackOptions) (*Pack, error) {
	character, err := l.Character(opts.Character, opts.FrameSize)
	if err != nil {
		return nil, err
	}
	if err := character.Validate(animations.RequiredKeys()); err != nil {
		return nil, fmt.Errorf("character %s: %w", opts.Character, err)
	}

	block, err := l.Block(opts.BlockSize)
	if err != nil {
		return nil, err
	}

	fire, err := l.Fire(opts.FireWidth, opts.FireHeight)
	if err != nil {
		return nil, err
	}
	if err := fire.Validate([]string{"on", "off"}); err != nil {
		return nil, fmt.Errorf("fire: %w", err)
	}

	bg, err := l.Background(opts.Background)
	if err != nil {
		return nil, err
	}

	return &Pack{Character: character, Block: block, Fire: fire, Background: bg}, nil
}

// SpriteSheets loads every PNG in dir1/dir2. With direction set each sheet
// yields a "<name>_right" sequence and a mirrored "<name>_left" one.
func (l *Loader) SpriteSheets(dir1, dir2 string, width, height int, direction bool) (animations.Table, error) {
	dir := path.Join(dir1, dir2)
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read sprite sheets %s: %w", dir, err)
	}

	table := animations.Table{}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".png" {
			continue
		}
		sheet, err := l.decode(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		name := strings.TrimSuffix(entry.Name(), ".png")
		sprites := l.slice(sheet, width, height)
		if direction {
			table[name+"_right"] = sprites
			table[name+"_left"] = flip(sprites)
		} else {
			table[name] = sprites
		}
	}
	return table, nil
}

// Character loads the sheets under MainCharacters/<name>.
func (l *Loader) Character(name string, frameSize int) (animations.Table, error) {
	table, err := l.SpriteSheets("MainCharacters", name, frameSize, frameSize, true)
	if errors.Is(err, fs.ErrNotExist) && l.Fallback {
		log.Printf("Warning: character %s not found, using placeholder art", name)
		return l.fromSheets(characterSheets(name, frameSize), frameSize, frameSize, true), nil
	}
	return table, err
}

// Fire loads the on/off trap sheets under Traps/Fire.
func (l *Loader) Fire(width, height int) (animations.Table, error) {
	table, err := l.SpriteSheets("Traps", "Fire", width, height, false)
	if errors.Is(err, fs.ErrNotExist) && l.Fallback {
		log.Printf("Warning: fire sheets not found, using placeholder art")
		return l.fromSheets(fireSheets(width, height), width, height, false), nil
	}
	return table, err
}

// Block returns a size x size terrain tile. The source region at (96, 0) is
// scaled up and its top-left size x size corner kept.
func (l *Loader) Block(size int) (image.Image, error) {
	terrain, err := l.decode(path.Join("Terrain", "Terrain.png"))
	if errors.Is(err, fs.ErrNotExist) && l.Fallback {
		log.Printf("Warning: terrain not found, using placeholder art")
		terrain = terrainSheet(size)
	} else if err != nil {
		return nil, err
	}

	tile := crop(terrain, image.Rect(96, 0, 96+size, size))
	scaled := imaging.Resize(tile, size*l.scale, size*l.scale, imaging.NearestNeighbor)
	return imaging.Crop(scaled, image.Rect(0, 0, size, size)), nil
}

// Background returns the image tiled behind the world.
func (l *Loader) Background(name string) (image.Image, error) {
	img, err := l.decode(path.Join("Background", name))
	if errors.Is(err, fs.ErrNotExist) && l.Fallback {
		log.Printf("Warning: background %s not found, using placeholder art", name)
		return backgroundTile(), nil
	}
	return img, err
}

func (l *Loader) decode(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

func (l *Loader) fromSheets(sheets map[string]image.Image, width, height int, direction bool) animations.Table {
	table := animations.Table{}
	for name, sheet := range sheets {
		sprites := l.slice(sheet, width, height)
		if direction {
			table[name+"_right"] = sprites
			table[name+"_left"] = flip(sprites)
		} else {
			table[name] = sprites
		}
	}
	return table
}

// slice cuts a horizontal strip into width x height frames, scaled by l.scale.
func (l *Loader) slice(sheet image.Image, width, height int) animations.Sequence {
	n := sheet.Bounds().Dx() / width
	sprites := make(animations.Sequence, 0, n)
	for i := 0; i < n; i++ {
		frame := crop(sheet, image.Rect(i*width, 0, i*width+width, height))
		sprites = append(sprites, imaging.Resize(frame, width*l.scale, height*l.scale, imaging.NearestNeighbor))
	}
	return sprites
}

// crop copies r out of img onto a transparent canvas of r's size, so regions
// that run past the image edge stay transparent.
func crop(img image.Image, r image.Rectangle) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(r.Dx(), r.Dy(), color.NRGBA{})
	part := imaging.Crop(img, r.Add(b.Min))
	return imaging.Paste(canvas, part, image.Pt(0, 0))
}

func flip(sprites animations.Sequence) animations.Sequence {
	flipped := make(animations.Sequence, len(sprites))
	for i, s := range sprites {
		flipped[i] = imaging.FlipH(s)
	}
	return flipped
}
