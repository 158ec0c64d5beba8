// Package term presents the installer in a terminal.
//
// The UI runs on its own goroutine against a gfx.Framebuffer whose present
// function is Presenter.Present. Each flip waits for the next frame slot,
// is downsampled to half-block cells and sent to the Bubble Tea program as a
// message. Key presses travel the other way: the model maps them through a
// KeyMap and latches them on a KeyPad, which the UI polls once per frame.
package term
