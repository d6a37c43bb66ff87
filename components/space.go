package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broad-phase collision space. Obstacles counts the
// obstacles added so far and hands out their insertion order.
type SpaceData struct {
	*resolv.Space
	Obstacles int
}

var Space = donburi.NewComponentType[SpaceData]()

// NextOrder returns the insertion index for a new obstacle.
func (s *SpaceData) NextOrder() int {
	n := s.Obstacles
	s.Obstacles++
	return n
}
