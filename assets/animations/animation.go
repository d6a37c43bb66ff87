package animations

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
)

var ErrMissingAnimation = errors.New("missing animation")

// Sequence is an ordered, looping run of equally sized frames.
type Sequence []image.Image

// Frame returns the frame shown after counter ticks when every frame is held
// for delay ticks.
func (s Sequence) Frame(counter, delay int) image.Image {
	return s[FrameIndex(counter, delay, len(s))]
}

// FrameIndex is the fixed-rate divider: one displayed frame per delay ticks,
// wrapping around n frames.
func FrameIndex(counter, delay, n int) int {
	if n <= 0 {
		return 0
	}
	if delay <= 0 {
		delay = 1
	}
	i := (counter / delay) % n
	if i < 0 {
		i += n
	}
	return i
}

// Table maps an animation key such as "run_left" to its frames.
type Table map[string]Sequence

// Get returns the sequence for key. A missing key is a startup bug that
// Validate should have caught, so it panics.
func (t Table) Get(key string) Sequence {
	seq, ok := t[key]
	if !ok || len(seq) == 0 {
		panic(fmt.Sprintf("%v: %q", ErrMissingAnimation, key))
	}
	return seq
}

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that every key in required has at least one frame.
func (t Table) Validate(required []string) error {
	var missing []string
	for _, k := range required {
		if len(t[k]) == 0 {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAnimation, strings.Join(missing, ", "))
	}
	return nil
}
