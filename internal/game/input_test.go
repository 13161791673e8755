package game

import (
	"testing"

	"go.viam.com/test"
)

func TestInputLevelTriggeredMovement(t *testing.T) {
	m := NewInputMapper()

	m.HandleKey(KeyForward, true)
	test.That(t, m.Intent(false).Move, test.ShouldEqual, 1)
	// Held keys re-apply every tick.
	test.That(t, m.Intent(false).Move, test.ShouldEqual, 1)

	m.HandleKey(KeyForward, false)
	m.HandleKey(KeyBackward, true)
	test.That(t, m.Intent(false).Move, test.ShouldEqual, -1)

	m.HandleKey(KeyLeft, true)
	test.That(t, m.Intent(false).Rotate, test.ShouldEqual, 1)
	m.HandleKey(KeyLeft, false)
	m.HandleKey(KeyRight, true)
	test.That(t, m.Intent(false).Rotate, test.ShouldEqual, -1)
}

func TestInputJumpLatchOncePerPress(t *testing.T) {
	m := NewInputMapper()

	m.HandleKey(KeyJump, true)
	test.That(t, m.Intent(false).Jump, test.ShouldBeTrue)
	// Consumed: holding the key does not re-trigger.
	test.That(t, m.Intent(false).Jump, test.ShouldBeFalse)
	test.That(t, m.Intent(false).Jump, test.ShouldBeFalse)

	// A new physical press re-arms the latch.
	m.HandleKey(KeyJump, false)
	m.HandleKey(KeyJump, true)
	test.That(t, m.Intent(false).Jump, test.ShouldBeTrue)
}

func TestInputJumpHeldWhileAirborne(t *testing.T) {
	m := NewInputMapper()

	// Pressed mid-air: the latch survives until a grounded tick reads it.
	m.HandleKey(KeyJump, true)
	test.That(t, m.Intent(true).Jump, test.ShouldBeFalse)
	test.That(t, m.Intent(true).Jump, test.ShouldBeFalse)
	test.That(t, m.Intent(false).Jump, test.ShouldBeTrue)
}

func TestInputReleaseClearsUnconsumedLatch(t *testing.T) {
	m := NewInputMapper()

	m.HandleKey(KeyJump, true)
	m.HandleKey(KeyJump, false)
	// Release dropped the pending jump even though nothing consumed it.
	test.That(t, m.Intent(false).Jump, test.ShouldBeFalse)
}

func TestInputForwardWinsOverBackward(t *testing.T) {
	m := NewInputMapper()

	m.HandleKey(KeyForward, true)
	m.HandleKey(KeyBackward, true)
	test.That(t, m.Intent(false).Move, test.ShouldEqual, 1)

	m.HandleKey(KeyForward, false)
	test.That(t, m.Intent(false).Move, test.ShouldEqual, -1)
}
