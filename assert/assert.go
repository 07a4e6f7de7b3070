package assert

import "github.com/oomph-ac/locomotion/oerror"

// IsTrue panics with an oerror.Error when ok is false. It is reserved for programmer and
// configuration bugs, never for conditions that can occur while the controller runs.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
