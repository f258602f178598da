package keypad

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/puzzlekit/search"
)

// MaxRobots bounds the length of a robot chain, door robot included.
const MaxRobots = 26

var (
	// ErrRobots is returned for a chain length outside 1..MaxRobots.
	ErrRobots = errors.New("keypad: robot count out of range")
	// ErrUntypable is returned when a code cannot be typed at all.
	ErrUntypable = errors.New("keypad: code cannot be typed")
)

// arms holds the key index under every robot's arm. Arm 0 is the robot at
// the door; the last arm in use is driven directly by the human.
type arms [MaxRobots]uint8

// chain is the seen key: where every arm is and how much of the code is on
// the door.
type chain struct {
	arms  arms
	typed uint8
}

type state struct {
	chain
	presses int
}

func (s state) Key() chain { return s.chain }
func (s state) Cost() int  { return s.presses }

func newState() state {
	var s state
	s.arms[0] = uint8(Numeric.keys.Index(Numeric.pos[Activate]))
	up := uint8(Directional.keys.Index(Directional.pos[Activate]))
	for i := 1; i < MaxRobots; i++ {
		s.arms[i] = up
	}
	return s
}

func padOf(arm int) *Pad {
	if arm == 0 {
		return Numeric
	}
	return Directional
}

// press applies one human button press to a chain of robots. It reports
// false when an arm would leave its pad or hover over a gap.
func (s state) press(robots int, button byte) (state, bool) {
	next := s
	next.presses++
	for i := robots - 1; ; i-- {
		p := padOf(i)
		at := p.keys.PointOf(int(next.arms[i]))
		if button != Activate {
			dir, _ := arrow(button)
			to := dir.Step(at)
			if _, ok := p.Key(to); !ok {
				return state{}, false
			}
			next.arms[i] = uint8(p.keys.Index(to))
			return next, true
		}
		if i == 0 {
			next.typed++
			return next, true
		}
		button = p.keys.At(at)
	}
}

// door returns the key under the door robot's arm.
func (s state) door() byte {
	return Numeric.keys.At(Numeric.keys.PointOf(int(s.arms[0])))
}

// Presses returns the fewest human button presses that type code through a
// chain of robots robots long. Every arm starts on its Activate key.
//
// The search walks the joint position of every arm, so it grows
// exponentially with robots; Planner answers long chains.
func Presses(code Code, robots int) (int, search.Stats, error) {
	if robots < 1 || robots > MaxRobots {
		return 0, search.Stats{}, fmt.Errorf("%w: %d", ErrRobots, robots)
	}
	if len(code) == 0 || len(code) > math.MaxUint8 {
		return 0, search.Stats{}, fmt.Errorf("%w: %q", ErrUntypable, code)
	}

	s := search.New[state](search.NewBFS[state](), search.NewSeenSet[state, chain](1024))
	s.Push(newState())

	n, ok := search.Find(s, func(s *search.Search[state], st state) (int, bool) {
		for _, b := range buttons {
			next, ok := st.press(robots, b)
			if !ok {
				continue
			}
			if next.typed != st.typed {
				// A wrong digit on the door can never be taken back.
				if code[next.typed-1] != next.door() {
					continue
				}
				if int(next.typed) == len(code) {
					return next.presses, true
				}
			}
			s.Push(next)
		}
		return 0, false
	})
	if !ok {
		return 0, s.Stats(), fmt.Errorf("%w: %s", ErrUntypable, code)
	}
	return n, s.Stats(), nil
}

// buttons are the keys a human can press.
var buttons = [...]byte{'^', '<', '>', 'v', Activate}
