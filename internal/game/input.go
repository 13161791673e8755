package game

// Key identifies a physical key the simulation cares about. The window
// layer translates raw key codes (W/S/A/D/Space) at its boundary and
// forwards edges here; nothing below this point sees raw codes.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyJump
)

// Intent is the semantic command set consumed once per tick.
type Intent struct {
	Move   int // -1 back, 0 idle, +1 forward
	Rotate int // -1 right, 0, +1 left
	Jump   bool
}

// InputMapper folds key edges into level-triggered movement flags and an
// edge-triggered jump latch. It is polled, never called back into, so a
// held key re-applies every tick while a jump fires at most once per
// physical press.
type InputMapper struct {
	forward  bool
	backward bool
	left     bool
	right    bool

	jumpHeld    bool
	jumpPending bool
}

func NewInputMapper() *InputMapper {
	return &InputMapper{}
}

// HandleKey records a key edge. Called from the input-substrate boundary
// on the tick goroutine.
func (m *InputMapper) HandleKey(k Key, down bool) {
	switch k {
	case KeyForward:
		m.forward = down
	case KeyBackward:
		m.backward = down
	case KeyLeft:
		m.left = down
	case KeyRight:
		m.right = down
	case KeyJump:
		if down {
			if !m.jumpHeld {
				m.jumpPending = true
			}
			m.jumpHeld = true
		} else {
			// Release clears the latch whether or not it was consumed.
			m.jumpHeld = false
			m.jumpPending = false
		}
	}
}

// Intent derives this tick's commands. The jump latch is consumed by the
// first call that observes it while the player is grounded; while airborne
// it stays pending so a pre-landing press still registers.
func (m *InputMapper) Intent(airborne bool) Intent {
	var in Intent
	switch {
	case m.forward:
		in.Move = 1
	case m.backward:
		in.Move = -1
	}
	switch {
	case m.left:
		in.Rotate = 1
	case m.right:
		in.Rotate = -1
	}
	if m.jumpPending && !airborne {
		in.Jump = true
		m.jumpPending = false
	}
	return in
}
