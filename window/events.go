package window

// Event is a window event delivered by PollEvents.
type Event interface {
	isEvent()
}

// ResizeEvent reports a framebuffer size change, in pixels.
type ResizeEvent struct {
	Width  int
	Height int
}

// CloseEvent reports a user request to close the window.
type CloseEvent struct{}

func (ResizeEvent) isEvent() {}

func (CloseEvent) isEvent() {}
