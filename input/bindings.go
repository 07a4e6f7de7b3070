package input

import (
	"github.com/oomph-ac/locomotion/oerror"
)

// Bindings names the inputs the controller reads.
type Bindings struct {
	Jump       string `toml:"jump" yaml:"jump"`
	Crouch     string `toml:"crouch" yaml:"crouch"`
	Run        string `toml:"run" yaml:"run"`
	Horizontal string `toml:"horizontal" yaml:"horizontal"`
	Vertical   string `toml:"vertical" yaml:"vertical"`
}

// DefaultBindings returns the conventional input names.
func DefaultBindings() Bindings {
	return Bindings{
		Jump:       "Jump",
		Crouch:     "Crouch",
		Run:        "Run",
		Horizontal: "Horizontal",
		Vertical:   "Vertical",
	}
}

// Validate returns an error if any binding is left empty.
func (b Bindings) Validate() error {
	for field, name := range map[string]string{
		"jump":       b.Jump,
		"crouch":     b.Crouch,
		"run":        b.Run,
		"horizontal": b.Horizontal,
		"vertical":   b.Vertical,
	} {
		if name == "" {
			return oerror.New("input binding %q is empty", field)
		}
	}
	return nil
}

// Reader holds the resolved inputs of a Bindings.
type Reader struct {
	jump, crouch, run    Button
	horizontal, vertical Axis
}

// Bind resolves every name of b against src.
func Bind(src Source, b Bindings) (*Reader, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	r := &Reader{}
	for _, btn := range []struct {
		name string
		dst  *Button
	}{
		{b.Jump, &r.jump},
		{b.Crouch, &r.crouch},
		{b.Run, &r.run},
	} {
		v, ok := src.Button(btn.name)
		if !ok {
			return nil, oerror.New("unknown button %q", btn.name)
		}
		*btn.dst = v
	}
	for _, axis := range []struct {
		name string
		dst  *Axis
	}{
		{b.Horizontal, &r.horizontal},
		{b.Vertical, &r.vertical},
	} {
		v, ok := src.Axis(axis.name)
		if !ok {
			return nil, oerror.New("unknown axis %q", axis.name)
		}
		*axis.dst = v
	}
	return r, nil
}

// Sample reads the current state of every bound input.
func (r *Reader) Sample() Frame {
	return Frame{
		Move:   [2]float32{r.horizontal.Raw(), r.vertical.Raw()},
		Jump:   buttonState(r.jump),
		Crouch: buttonState(r.crouch),
		Run:    buttonState(r.run),
	}
}

func buttonState(b Button) ButtonState {
	return ButtonState{Pressed: b.Pressed(), Held: b.Held(), Released: b.Released()}
}
