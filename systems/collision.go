package systems

import (
	"math"
	"sort"

	"github.com/automoto/xdash/components"
	cfg "github.com/automoto/xdash/config"
	"github.com/automoto/xdash/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves the player's vertical overlaps after the body
// moved and applies hazard damage for every obstacle touched this tick.
func UpdateCollisions(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		player := components.Player.Get(e)

		player.Contacts.Vertical = resolveVertical(e, physics.VY)

		for _, c := range player.Contacts.All() {
			if c.Valid() && c.HasComponent(tags.Hazard) {
				physics.MakeHit()
			}
		}
	})
}

// resolveVertical snaps the player out of every obstacle its mask overlaps.
// Falling lands on the obstacle's top, rising bumps its bottom. dy is the
// vertical speed the body moved with this tick.
func resolveVertical(e *donburi.Entry, dy float64) []*donburi.Entry {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	var touched []*donburi.Entry
	for _, c := range candidates(e, 0, 0) {
		if !overlaps(e, c, 0, 0) {
			continue
		}
		other := components.Object.Get(c)
		switch {
		case dy > 0:
			obj.MoveTo(obj.X, other.Top()-obj.H)
			physics.Landed()
		case dy < 0:
			obj.MoveTo(obj.X, other.Bottom())
			physics.HitHead(cfg.Physics.HeadBounce)
		}
		touched = append(touched, c)
	}
	return touched
}

// Probe reports the first obstacle the player's mask would overlap after a
// horizontal shift of dx. Nothing moves.
func Probe(e *donburi.Entry, dx float64) *donburi.Entry {
	for _, c := range candidates(e, dx, 0) {
		if overlaps(e, c, dx, 0) {
			return c
		}
	}
	return nil
}

// candidates returns the obstacles whose cells the entity would share after
// moving by (dx, dy), in insertion order.
func candidates(e *donburi.Entry, dx, dy float64) []*donburi.Entry {
	obj := components.Object.Get(e)

	var found []*donburi.Entry
	if obj.Space == nil {
		// Not in a space: test against every obstacle.
		components.Obstacle.Each(e.World, func(o *donburi.Entry) {
			if o != e {
				found = append(found, o)
			}
		})
	} else if check := obj.Check(dx, dy, tags.ResolvObstacle); check != nil {
		for _, o := range check.Objects {
			entry, ok := o.Data.(*donburi.Entry)
			if !ok || !entry.Valid() || !entry.HasComponent(components.Obstacle) {
				continue
			}
			found = append(found, entry)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return components.Obstacle.Get(found[i]).Order < components.Obstacle.Get(found[j]).Order
	})
	return found
}

// overlaps is the pixel-exact test between two sprite masks with a shifted
// by (dx, dy). Positions are floored to whole pixels.
func overlaps(a, b *donburi.Entry, dx, dy float64) bool {
	sa, sb := components.Sprite.Get(a), components.Sprite.Get(b)
	if sa.Mask == nil || sb.Mask == nil {
		return false
	}
	oa, ob := components.Object.Get(a), components.Object.Get(b)
	ax, ay := int(math.Floor(oa.X+dx)), int(math.Floor(oa.Y+dy))
	bx, by := ob.Pixel()
	return sa.Mask.Overlaps(sb.Mask, bx-ax, by-ay)
}
