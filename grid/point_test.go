package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Pt(2, 3)

	assert.Equal(t, Pt(3, 5), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(1, 1), p.Sub(Pt(1, 2)))
	assert.Equal(t, Pt(-4, -6), p.Scale(-2))
	assert.Equal(t, 7, p.Manhattan(Pt(-1, 7)))
	assert.Equal(t, 0, p.Manhattan(p))
	assert.Equal(t, "2,3", p.String())
}

func TestPoint_Neighbors(t *testing.T) {
	p := Pt(0, 0)

	assert.Equal(t, [4]Point{Pt(0, -1), Pt(1, 0), Pt(0, 1), Pt(-1, 0)}, p.CardinalNeighbors())
	assert.Equal(t, [4]Point{Pt(1, -1), Pt(1, 1), Pt(-1, 1), Pt(-1, -1)}, p.DiagonalNeighbors())

	for i, d := range Directions {
		assert.Equal(t, p.CardinalNeighbors()[i], d.Step(p), d.String())
	}
}

func TestDirection_Turns(t *testing.T) {
	tests := []struct {
		d                Direction
		cw, acw, reverse Direction
		name             string
	}{
		{North, East, West, South, "N"},
		{East, South, North, West, "E"},
		{South, West, East, North, "S"},
		{West, North, South, East, "W"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cw, tt.d.TurnClockwise())
			assert.Equal(t, tt.acw, tt.d.TurnAnticlockwise())
			assert.Equal(t, tt.reverse, tt.d.TurnAround())
			assert.Equal(t, tt.name, tt.d.String())
			assert.Equal(t, tt.d, tt.d.TurnClockwise().TurnAnticlockwise())
		})
	}
}
