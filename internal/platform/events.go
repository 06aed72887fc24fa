package platform

// Event is one of KeyPress, KeyRelease or Quit
type Event interface{}

// KeyPress is a physical key going down. Repeats are not reported.
type KeyPress struct {
	Code uint32
	Name string
}

type KeyRelease struct {
	Code uint32
	Name string
}

// Quit is the window being closed
type Quit struct{}
