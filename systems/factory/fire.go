package factory

import (
	"github.com/automoto/xdash/archetypes"
	"github.com/automoto/xdash/assets/animations"
	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/automoto/xdash/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateFire creates a fire hazard with its top-left corner at (x, y).
// togglePeriod > 0 attaches a script that flips it between lit and unlit
// every togglePeriod seconds.
func CreateFire(w donburi.World, x, y float64, table animations.Table, lit bool, togglePeriod float64) *donburi.Entry {
	var extra []donburi.IComponentType
	if togglePeriod > 0 {
		extra = append(extra, components.FireScript)
	}
	fire := archetypes.Fire.Spawn(w, extra...)

	fireData := components.Fire.Get(fire)
	fireData.Table = table
	if lit {
		fireData.On()
	}

	sprite := components.Sprite.Get(fire)
	sprite.SetImage(table.Get(fireData.State.String())[0])
	fw, fh := sprite.Size()

	obj := resolv.NewObject(x, y, fw, fh, tags.ResolvFire, tags.ResolvObstacle)
	obj.Data = fire
	components.Object.SetValue(fire, components.ObjectData{Object: obj})

	addObstacle(w, fire, obj)

	if togglePeriod > 0 {
		// The tween runs in ticks so the script stays in step with the simulation.
		ticks := float32(togglePeriod * float64(cfg.Physics.TickRate))
		components.FireScript.SetValue(fire, components.FireScriptData{
			Timer: gween.New(0, ticks, ticks, ease.Linear),
		})
	}

	return fire
}
