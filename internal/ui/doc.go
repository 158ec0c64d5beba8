// Package ui contains the frame-driven menu engine of the installer.
//
// A UI value is the explicit drawing context: it owns the backend, the font
// renderer, the string tables, the pad source and the wrap memo. Nothing in
// the package keeps global state; every draw and every loop goes through a
// UI.
//
// Frame flow:
//   - ExecuteMenu polls the pad once per frame and runs it through the
//     typematic repeater (internal/pad).
//   - At most one input class is dispatched per frame, in the order
//     Up/Down, Left/Right, select, cancel, L1/R1. Focus and value edits live
//     in internal/ui/state.Level.
//   - Draw lays the menu out in one pass over its visible items, then draws
//     the button legend and the paging icons.
//   - The optional per-frame callback runs after the draw and may end the
//     loop with a non-zero result; the backend then flips.
//
// L1/R1 page between sibling menus resolved through a menu.Registry. The
// outgoing and incoming transitions block the loop for their duration.
//
// ShowMessageBox and the Display helpers build a transient menu from a fixed
// template and run it through ExecuteMenu.
package ui
