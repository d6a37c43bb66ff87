package config

// Characters lists the playable character identities. Each maps to a
// directory of sprite sheets under MainCharacters/.
var Characters = []string{"MaskDude", "NinjaFrog", "PinkMan", "VirtualGuy"}

// Animation sheet names shared by every character.
var AnimationSheets = []string{"idle", "run", "jump", "double_jump", "fall", "hit"}

// IsCharacter reports whether name is a known character.
func IsCharacter(name string) bool {
	for _, c := range Characters {
		if c == name {
			return true
		}
	}
	return false
}
