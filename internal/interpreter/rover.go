package interpreter

import (
	"errors"
	"fmt"
)

// ErrNotUnitVector is returned when a vector does not name a heading.
var ErrNotUnitVector = errors.New("not a unit vector")

// Orientation is the cardinal direction a rover faces.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var orientationVectors = [...]Vector{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

var orientationLetters = [...]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// Vector returns the unit vector for o.
func (o Orientation) Vector() Vector {
	return orientationVectors[o]
}

func (o Orientation) String() string {
	if o < North || o > West {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLetters[o]
}

// OrientationFromVector maps a unit vector back to its orientation.
func OrientationFromVector(v Vector) (Orientation, error) {
	for o, u := range orientationVectors {
		if u == v {
			return Orientation(o), nil
		}
	}
	return 0, fmt.Errorf("orientation from %s: %w", v, ErrNotUnitVector)
}

// ParseOrientation accepts exactly one of "N", "E", "S" or "W".
func ParseOrientation(s string) (Orientation, bool) {
	for o, l := range orientationLetters {
		if l == s {
			return Orientation(o), true
		}
	}
	return 0, false
}

// Command is a single instruction issued to a rover.
type Command int

const (
	Left Command = iota
	Right
	Forward
)

func ParseCommand(r rune) (Command, bool) {
	switch r {
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	case 'F':
		return Forward, true
	}
	return 0, false
}

func (c Command) String() string {
	switch c {
	case Left:
		return "L"
	case Right:
		return "R"
	case Forward:
		return "F"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Commands renders a command list the way it is written in a script.
func Commands(cmds []Command) string {
	b := make([]byte, 0, len(cmds))
	for _, c := range cmds {
		b = append(b, c.String()...)
	}
	return string(b)
}

type Status int

const (
	Operational Status = iota
	Lost
)

func (s Status) String() string {
	if s == Lost {
		return "lost"
	}
	return "operational"
}

// Rover is a simulated vehicle on a Grid. The orientation is kept as a unit
// vector and is always one of the four headings; once Lost the rover never
// moves again.
type Rover struct {
	position    Vector
	orientation Vector
	status      Status
}

func NewRover(position Vector, o Orientation) Rover {
	return Rover{
		position:    position,
		orientation: o.Vector(),
		status:      Operational,
	}
}

func (r Rover) Position() Vector { return r.position }

func (r Rover) Status() Status { return r.status }

func (r Rover) Lost() bool { return r.status == Lost }

// Orientation returns the heading the rover faces.
func (r Rover) Orientation() Orientation {
	o, err := OrientationFromVector(r.orientation)
	if err != nil {
		// orientation is only ever set from Orientation.Vector and rotations
		panic(err)
	}
	return o
}

// FollowCommands applies cmds in order. Commands after the rover is lost are
// not processed.
func (r *Rover) FollowCommands(cmds []Command, g Grid) {
	for _, c := range cmds {
		if r.status == Lost {
			return
		}
		r.FollowCommand(c, g)
	}
}

// FollowCommand applies a single command. A forward move that would leave g
// marks the rover Lost and keeps its last valid position.
func (r *Rover) FollowCommand(c Command, g Grid) {
	if r.status != Operational {
		return
	}
	switch c {
	case Left:
		r.orientation = r.orientation.RotateLeft()
	case Right:
		r.orientation = r.orientation.RotateRight()
	case Forward:
		next := r.position.Add(r.orientation)
		if !g.Contains(next) {
			r.status = Lost
			return
		}
		r.position = next
	}
}

// String renders the rover as "(x, y, O)", followed by " LOST" when lost.
func (r Rover) String() string {
	s := fmt.Sprintf("(%d, %d, %s)", r.position.X, r.position.Y, r.Orientation())
	if r.status == Lost {
		s += " LOST"
	}
	return s
}
