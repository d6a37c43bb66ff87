package components

import (
	"github.com/yohamta/donburi"
)

// Contacts holds the obstacles the player touched during the last tick.
type Contacts struct {
	Left     *donburi.Entry   // First obstacle found by the left probe
	Right    *donburi.Entry   // First obstacle found by the right probe
	Vertical []*donburi.Entry // Every obstacle resolved vertically
}

// All returns every contact, probes first.
func (c Contacts) All() []*donburi.Entry {
	all := make([]*donburi.Entry, 0, 2+len(c.Vertical))
	if c.Left != nil {
		all = append(all, c.Left)
	}
	if c.Right != nil {
		all = append(all, c.Right)
	}
	return append(all, c.Vertical...)
}

type PlayerData struct {
	Character string
	Contacts  Contacts
}

var Player = donburi.NewComponentType[PlayerData]()
