// Package terminal hosts the engine on a tcell screen.
//
// Features:
//   - Window: an RGB565 surface mapped onto half-block cells, two pixels per cell
//   - Buffer strides padded to 8 pixels, geometry changes scaled with x/image/draw
//   - True color (24-bit) and 256-color palette output
//   - App: a poll-based event pump translating tcell events into lifecycle commands and input
//   - Default key handling for unconsumed keys (Esc, Ctrl-C, q request exit)
//
// All Window and App methods except Interrupt must be called from the polling goroutine.
package terminal
