package input

// Scripted is an in-memory Source driven by explicit calls, used by tests and the headless
// simulator. Edges last until the next call to Advance.
type Scripted struct {
	buttons map[string]*scriptedButton
	axes    map[string]*scriptedAxis
}

type scriptedButton struct {
	held, pressed, released bool
}

func (b *scriptedButton) Pressed() bool  { return b.pressed }
func (b *scriptedButton) Held() bool     { return b.held }
func (b *scriptedButton) Released() bool { return b.released }

type scriptedAxis struct {
	v float32
}

func (a *scriptedAxis) Raw() float32 { return a.v }

// NewScripted returns a source that knows the buttons and axes named by b.
func NewScripted(b Bindings) *Scripted {
	s := &Scripted{
		buttons: make(map[string]*scriptedButton),
		axes:    make(map[string]*scriptedAxis),
	}
	for _, name := range []string{b.Jump, b.Crouch, b.Run} {
		s.buttons[name] = &scriptedButton{}
	}
	for _, name := range []string{b.Horizontal, b.Vertical} {
		s.axes[name] = &scriptedAxis{}
	}
	return s
}

func (s *Scripted) Button(name string) (Button, bool) {
	b, ok := s.buttons[name]
	return b, ok
}

func (s *Scripted) Axis(name string) (Axis, bool) {
	a, ok := s.axes[name]
	return a, ok
}

// Press holds the named button down. The pressed edge is only raised if it was not held.
func (s *Scripted) Press(name string) {
	if b, ok := s.buttons[name]; ok {
		b.pressed = b.pressed || !b.held
		b.held = true
	}
}

// Release lets go of the named button.
func (s *Scripted) Release(name string) {
	if b, ok := s.buttons[name]; ok {
		b.released = b.released || b.held
		b.held = false
	}
}

// SetAxis sets the raw value of the named axis.
func (s *Scripted) SetAxis(name string, v float32) {
	if a, ok := s.axes[name]; ok {
		a.v = v
	}
}

// Advance clears the edges raised since the last call.
func (s *Scripted) Advance() {
	for _, b := range s.buttons {
		b.pressed, b.released = false, false
	}
}
