package main

import (
	"flag"
	"image"
	"log"
	"os"
	"strings"

	"github.com/automoto/xdash/assets"
	"github.com/automoto/xdash/config"
	"github.com/automoto/xdash/fonts"
	"github.com/automoto/xdash/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the built-in settings")
	character := flag.String("character", "", "playable character: "+strings.Join(config.Characters, ", "))
	assetDir := flag.String("assets", "", "asset directory (default from config)")
	levelPath := flag.String("level", "", "Tiled .tmx level (default: the built-in level)")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *character != "" {
		config.Player.Character = *character
	}
	if *assetDir != "" {
		config.C.AssetDir = *assetDir
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	loader := assets.NewLoader(os.DirFS(config.C.AssetDir), config.Player.Scale)
	pack, err := loader.LoadPack(assets.PackOptions{
		Character:  config.Player.Character,
		FrameSize:  config.Player.FrameSize,
		BlockSize:  config.World.BlockSize,
		FireWidth:  config.Fire.Width,
		FireHeight: config.Fire.Height,
		Background: config.C.Background,
	})
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	var level assets.Level
	if *levelPath != "" {
		level, err = assets.LoadLevelFile(*levelPath, config.World.BlockSize)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	} else {
		level = assets.MustLoadDefaultLevel(config.World.BlockSize)
	}

	bindings, err := scenes.ResolveBindings(config.Input)
	if err != nil {
		log.Fatalf("Invalid input bindings: %v", err)
	}

	ebiten.SetTPS(config.Physics.TickRate)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	scene := scenes.NewPlatformerScene(&level, pack, bindings)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
