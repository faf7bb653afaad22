package console

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	fireworkMinHeight = 3
	fireworkMaxHeight = 5
	fireworksWidth    = 21
	fireworksFrames   = 40
	fireworksRefresh  = 100 * time.Millisecond
	// a new firework is launched when a roll in [0, 100) exceeds this
	fireworkSpawnChance = 65
)

var fireworkSprites = []byte{'.', '.', '.', '.', '.', '*', '%', '*', '%', '.'}

type firework struct {
	x, y   int
	height int
	frame  int
}

func newFirework(x int, rnd *rand.Rand) *firework {
	height := fireworkMinHeight + rnd.IntN(fireworkMaxHeight-fireworkMinHeight+1)
	return &firework{
		x:      x,
		y:      fireworkMaxHeight - 1,
		height: height,
		frame:  fireworkMaxHeight - height,
	}
}

func (f *firework) sprite() byte {
	return fireworkSprites[f.frame]
}

func (f *firework) active() bool {
	return f.frame < len(fireworkSprites)
}

// update climbs until the firework reaches its height, then plays the
// remaining burst frames in place.
func (f *firework) update() {
	if f.y > fireworkMaxHeight-f.height {
		f.y--
	}
	f.frame++
}

type fireworks struct {
	rnd   *rand.Rand
	sleep func(time.Duration)
	live  []*firework
}

func newFireworks(rnd *rand.Rand, sleep func(time.Duration)) *fireworks {
	return &fireworks{rnd: rnd, sleep: sleep}
}

// next launches at most one firework and returns the frame image.
func (fw *fireworks) next() []string {
	if fw.rnd.IntN(100) > fireworkSpawnChance {
		fw.live = append(fw.live, newFirework(fw.rnd.IntN(fireworksWidth), fw.rnd))
	}
	image := make([][]byte, fireworkMaxHeight)
	for i := range image {
		image[i] = []byte(strings.Repeat(" ", fireworksWidth))
	}
	live := fw.live[:0]
	for _, f := range fw.live {
		if !f.active() {
			continue
		}
		image[f.y][f.x] = f.sprite()
		f.update()
		live = append(live, f)
	}
	fw.live = live
	lines := make([]string, len(image))
	for i, row := range image {
		lines[i] = string(row)
	}
	return lines
}
