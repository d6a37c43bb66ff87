package animations

// Facing is the horizontal direction a character looks at.
type Facing int

const (
	Left Facing = iota
	Right
)

func (f Facing) String() string {
	if f == Right {
		return "right"
	}
	return "left"
}

// Suffix returns the table key suffix for the facing.
func (f Facing) Suffix() string {
	return "_" + f.String()
}

// Base animation names.
const (
	Idle       = "idle"
	Run        = "run"
	Jump       = "jump"
	DoubleJump = "double_jump"
	Fall       = "fall"
	Hit        = "hit"
)

// States lists every base name SelectKey can return.
var States = []string{Idle, Run, Jump, DoubleJump, Fall, Hit}

// Pose is the slice of body state the selector looks at.
type Pose struct {
	Hit       bool
	VX, VY    float64
	JumpCount int
	Facing    Facing
}

// SelectState picks the base animation name for p. First match wins:
// hit, rising, running, falling fast, idle.
func SelectState(p Pose, gravity float64) string {
	switch {
	case p.Hit:
		return Hit
	case p.VY < 0:
		switch p.JumpCount {
		case 1:
			return Jump
		case 2:
			return DoubleJump
		}
		// Knocked upward by a ceiling bounce without a jump in progress.
		return Idle
	case p.VX != 0:
		return Run
	case p.VY > gravity*2:
		return Fall
	default:
		return Idle
	}
}

// SelectKey returns the full table key for p, e.g. "run_left".
func SelectKey(p Pose, gravity float64) string {
	return SelectState(p, gravity) + p.Facing.Suffix()
}

// RequiredKeys lists every key SelectKey can produce. A character table must
// provide all of them before the game loop starts.
func RequiredKeys() []string {
	keys := make([]string, 0, len(States)*2)
	for _, s := range States {
		keys = append(keys, s+Left.Suffix(), s+Right.Suffix())
	}
	return keys
}
