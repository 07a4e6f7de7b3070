package game

const (
	// DefaultGravity is the vertical acceleration applied to airborne characters, in units/s².
	DefaultGravity = float32(-9.81)

	// MinRecognizedMoveInput is the smallest move-axis magnitude treated as intent to move.
	MinRecognizedMoveInput = float32(0.001)
	// HeightError is the tolerance under which a requested height counts as no taller than
	// the current one, skipping the obstruction sweep.
	HeightError = float32(0.0005)
	// HeightCheckWidthOffset shrinks the obstruction probe so it does not graze walls the
	// capsule already touches.
	HeightCheckWidthOffset = float32(0.001)

	// GroundDeltaPosMultiplier scales the per-frame positional delta of the ground.
	GroundDeltaPosMultiplier = float32(5.5)
	// GroundDeltaEulerMultiplier scales the per-frame euler delta of the ground.
	GroundDeltaEulerMultiplier = float32(0.17)
)
