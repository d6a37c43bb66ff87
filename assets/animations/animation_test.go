package animations

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectKey(t *testing.T) {
	const g = 1.0
	tests := []struct {
		name string
		pose Pose
		want string
	}{
		{"at rest", Pose{Facing: Left}, "idle_left"},
		{"at rest facing right", Pose{Facing: Right}, "idle_right"},
		{"hit wins over everything", Pose{Hit: true, VX: 10, VY: -8, JumpCount: 1, Facing: Right}, "hit_right"},
		{"first jump", Pose{VY: -8, JumpCount: 1}, "jump_left"},
		{"double jump", Pose{VY: -8, JumpCount: 2, Facing: Right}, "double_jump_right"},
		{"rising without a jump", Pose{VY: -3, JumpCount: 0}, "idle_left"},
		{"rising beats running", Pose{VX: 10, VY: -1, JumpCount: 1}, "jump_left"},
		{"running", Pose{VX: 10, Facing: Right}, "run_right"},
		{"running while falling", Pose{VX: -10, VY: 5}, "run_left"},
		{"falling fast", Pose{VY: 2.5}, "fall_left"},
		{"falling slowly is idle", Pose{VY: 2}, "idle_left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectKey(tt.pose, g))
		})
	}
}

func TestSelectKeyIsDeterministic(t *testing.T) {
	p := Pose{VX: 10, VY: 3, JumpCount: 2, Facing: Right}
	first := SelectKey(p, 1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectKey(p, 1))
	}
}

func TestRequiredKeysCoverSelector(t *testing.T) {
	keys := RequiredKeys()
	assert.Len(t, keys, 12)
	for _, hit := range []bool{false, true} {
		for _, vy := range []float64{-5, 0, 1, 5} {
			for _, vx := range []float64{-10, 0, 10} {
				for jc := 0; jc <= 2; jc++ {
					for _, f := range []Facing{Left, Right} {
						key := SelectKey(Pose{Hit: hit, VX: vx, VY: vy, JumpCount: jc, Facing: f}, 1)
						assert.Contains(t, keys, key)
					}
				}
			}
		}
	}
}

func TestFrameIndex(t *testing.T) {
	tests := []struct {
		counter, delay, n, want int
	}{
		{0, 3, 4, 0},
		{2, 3, 4, 0},
		{3, 3, 4, 1},
		{11, 3, 4, 3},
		{12, 3, 4, 0},
		{100, 3, 1, 0},
		{5, 0, 4, 1},
		{5, 3, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FrameIndex(tt.counter, tt.delay, tt.n), "counter=%d delay=%d n=%d", tt.counter, tt.delay, tt.n)
	}
}

func TestSequenceFrameCycles(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	seq := Sequence{a, b}

	assert.Same(t, a, seq.Frame(0, 3))
	assert.Same(t, a, seq.Frame(2, 3))
	assert.Same(t, b, seq.Frame(3, 3))
	assert.Same(t, a, seq.Frame(6, 3))
}

func TestTableValidate(t *testing.T) {
	frame := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	table := Table{
		"idle_left":  {frame},
		"idle_right": {frame},
		"run_left":   {},
	}

	require.NoError(t, table.Validate([]string{"idle_left", "idle_right"}))

	err := table.Validate([]string{"idle_left", "run_left", "run_right"})
	require.ErrorIs(t, err, ErrMissingAnimation)
	assert.Contains(t, err.Error(), "run_left, run_right")

	assert.Equal(t, []string{"idle_left", "idle_right", "run_left"}, table.Keys())
}

func TestTableGetPanicsOnMissingKey(t *testing.T) {
	table := Table{}
	assert.PanicsWithValue(t, `missing animation: "fall_right"`, func() {
		table.Get("fall_right")
	})
}

func TestFacing(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "_right", Right.Suffix())
}
