// internal/app/input.go
package app

// Input is the set of signals collected for one tick.
// Left and Right are held keys; the rest are edge-triggered presses.
type Input struct {
	Left, Right bool
	Shoot       bool
	Laser       bool
	Restart     bool
	Quit        bool
}

// Intent folds the held keys into a horizontal direction: -1, 0 or 1.
func (in Input) Intent() int {
	intent := 0
	if in.Left {
		intent--
	}
	if in.Right {
		intent++
	}
	return intent
}

// InputSource supplies one Input per tick.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }
