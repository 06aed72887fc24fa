// input tracks which keys are held and names the keys the demo and tests use
package input

import "sort"

// Key names as reported by the platform. These are SDL scancode names,
// only the ones used by this module are defined.
const (
	KeyA      = "A"
	KeyD      = "D"
	KeyW      = "W"
	KeyS      = "S"
	KeyLeft   = "Left"
	KeyRight  = "Right"
	KeyUp     = "Up"
	KeyDown   = "Down"
	KeySpace  = "Space"
	KeyReturn = "Return"
	KeyEscape = "Escape"
)

// State is a set of held keys
type State struct {
	held map[string]struct{}
}

// Press marks key as held and reports whether it was up before, ie. whether
// this is a press transition rather than a repeat.
func (s *State) Press(key string) bool {
	if s.held == nil {
		s.held = make(map[string]struct{})
	}
	if _, ok := s.held[key]; ok {
		return false
	}
	s.held[key] = struct{}{}
	return true
}

// Release marks key as up and reports whether it was held
func (s *State) Release(key string) bool {
	if _, ok := s.held[key]; !ok {
		return false
	}
	delete(s.held, key)
	return true
}

func (s *State) IsHeld(key string) bool {
	_, ok := s.held[key]
	return ok
}

// AppendHeld appends the held keys to dst in name order
func (s *State) AppendHeld(dst []string) []string {
	start := len(dst)
	for key := range s.held {
		dst = append(dst, key)
	}
	sort.Strings(dst[start:])
	return dst
}
