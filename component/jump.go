package component

// JumpDebouncer buffers a jump press for a limited time.
type JumpDebouncer struct {
	Delay float32

	pending   bool
	remaining float32
}

// Press (re)starts the countdown.
func (j *JumpDebouncer) Press() {
	j.pending = true
	j.remaining = j.Delay
}

// Pending reports whether a buffered jump is available.
func (j *JumpDebouncer) Pending() bool {
	return j.pending
}

// Consume takes the buffered jump, cancelling its countdown. It returns false if none was
// pending.
func (j *JumpDebouncer) Consume() bool {
	if !j.pending {
		return false
	}
	j.pending, j.remaining = false, 0
	return true
}

// Advance counts down and revokes the buffered jump once the delay has elapsed.
func (j *JumpDebouncer) Advance(dt float32) {
	if !j.pending || dt <= 0 {
		return
	}
	j.remaining -= dt
	if j.remaining <= 0 {
		j.pending, j.remaining = false, 0
	}
}
