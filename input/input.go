// Package input turns named buttons and axes of a host input source into the per-tick Frame
// consumed by the controller. Names are resolved once by Bind.
package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// ButtonState is the edge and level state of a button during one tick.
type ButtonState struct {
	Pressed  bool
	Held     bool
	Released bool
}

// Frame is a snapshot of player intent for one tick. Move holds the raw horizontal (X) and
// vertical (Y) axes.
type Frame struct {
	Move   mgl32.Vec2
	Jump   ButtonState
	Crouch ButtonState
	Run    ButtonState
}

// DesiresMove reports whether the move axes carry enough input to count as intent to move.
func (f Frame) DesiresMove() bool {
	return math32.Abs(f.Move.X())+math32.Abs(f.Move.Y()) > game.MinRecognizedMoveInput
}

// Button is a named digital input.
type Button interface {
	Pressed() bool
	Held() bool
	Released() bool
}

// Axis is a named analog input. Raw returns the unsmoothed value.
type Axis interface {
	Raw() float32
}

// Source looks up buttons and axes by name.
type Source interface {
	Button(name string) (Button, bool)
	Axis(name string) (Axis, bool)
}
