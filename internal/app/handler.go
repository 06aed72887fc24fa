package app

// Handler is called by the frame loop. KeyPressed fires once per press,
// KeyHeld fires every frame a key is down. Returning an error from Update
// or Render stops the loop and Show returns it.
type Handler interface {
	Update(w *Window) error
	Render(w *Window) error
	KeyPressed(w *Window, key string)
	KeyHeld(w *Window, key string)
}

// NoHandler does nothing. Embed it to only implement some callbacks.
type NoHandler struct{}

var _ Handler = NoHandler{}

func (NoHandler) Update(*Window) error { return nil }

func (NoHandler) Render(*Window) error { return nil }

func (NoHandler) KeyPressed(*Window, string) {}

func (NoHandler) KeyHeld(*Window, string) {}

// HandlerFuncs adapts plain functions into a Handler. Nil fields do nothing.
type HandlerFuncs struct {
	OnUpdate     func(w *Window) error
	OnRender     func(w *Window) error
	OnKeyPressed func(w *Window, key string)
	OnKeyHeld    func(w *Window, key string)
}

var _ Handler = HandlerFuncs{}

func (h HandlerFuncs) Update(w *Window) error {
	if h.OnUpdate == nil {
		return nil
	}
	return h.OnUpdate(w)
}

func (h HandlerFuncs) Render(w *Window) error {
	if h.OnRender == nil {
		return nil
	}
	return h.OnRender(w)
}

func (h HandlerFuncs) KeyPressed(w *Window, key string) {
	if h.OnKeyPressed != nil {
		h.OnKeyPressed(w, key)
	}
}

func (h HandlerFuncs) KeyHeld(w *Window, key string) {
	if h.OnKeyHeld != nil {
		h.OnKeyHeld(w, key)
	}
}
