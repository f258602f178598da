// Package keypad types door codes through a chain of robots, each pressing
// buttons on the keypad the next robot reads its moves from.
package keypad

import (
	"github.com/hupe1980/puzzlekit/grid"
)

// Activate is the button that makes the robot behind a keypad press the key
// under its arm.
const Activate = 'A'

const gap = '.'

// Pad is a keypad layout. Gap cells can never be under an arm.
type Pad struct {
	keys   *grid.Grid[byte]
	labels []byte
	pos    map[byte]grid.Point
}

// Layouts of the door keypad and of the directional keypads.
var (
	Numeric     = mustPad("789\n456\n123\n.0A")
	Directional = mustPad(".^A\n<v>")
)

func mustPad(layout string) *Pad {
	keys, err := grid.Parse([]byte(layout), func(_ grid.Point, b byte) (byte, error) { return b, nil })
	if err != nil {
		panic(err)
	}
	p := &Pad{keys: keys, pos: make(map[byte]grid.Point, keys.Area())}
	for at, b := range keys.All() {
		if b != gap {
			p.labels = append(p.labels, b)
			p.pos[b] = at
		}
	}
	return p
}

// Key returns the key at p, or false on a gap or outside the pad.
func (p *Pad) Key(at grid.Point) (byte, bool) {
	b, ok := p.keys.Get(at)
	return b, ok && b != gap
}

// Pos returns where key sits on the pad.
func (p *Pad) Pos(key byte) (grid.Point, bool) {
	at, ok := p.pos[key]
	return at, ok
}

// Labels lists the keys in row-major order.
func (p *Pad) Labels() []byte { return p.labels }

// arrows maps the directional buttons to the move they make.
var arrows = [...]struct {
	key byte
	dir grid.Direction
}{
	{'^', grid.North},
	{'>', grid.East},
	{'v', grid.South},
	{'<', grid.West},
}

func arrow(key byte) (grid.Direction, bool) {
	for _, a := range arrows {
		if a.key == key {
			return a.dir, true
		}
	}
	return 0, false
}
