//go:build withcv
// +build withcv

/*
NAME
  display.go

DESCRIPTION
  display.go implements Window, the debug display adapter wrapping a
  gocv.Window: it shows the Chain's result frame each iteration and
  polls for the quit keystroke.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package display implements the gocv-backed debug window adapter.
package display

import (
	"gocv.io/x/gocv"

	"github.com/ausocean/vibra/frame"
)

// quitKey is the key code ('q') that ends the display loop.
const quitKey = 113

// Signal reports what the caller should do after a wait_event poll.
type Signal int

const (
	// KeepProcessing means the caller should continue its loop.
	KeepProcessing Signal = iota
	// CloseApplication means the quit key was pressed.
	CloseApplication
)

// Window is a debug display; GoCVWindow is its only implementation.
type Window interface {
	Show(f frame.View)
	WaitEvent(timeoutMs int) Signal
	Close() error
}

// GoCVWindow is a Window backed by gocv.Window.
type GoCVWindow struct {
	win *gocv.Window
}

// NewGoCVWindow creates and shows a named display window.
func NewGoCVWindow(name string) *GoCVWindow {
	return &GoCVWindow{win: gocv.NewWindow(name)}
}

// Show displays f in the window.
func (w *GoCVWindow) Show(f frame.View) {
	w.win.IMShow(f.Mat())
}

// WaitEvent polls for a keystroke for up to timeoutMs milliseconds,
// reporting CloseApplication on the quit key ('q') and KeepProcessing
// otherwise.
func (w *GoCVWindow) WaitEvent(timeoutMs int) Signal {
	if w.win.WaitKey(timeoutMs) == quitKey {
		return CloseApplication
	}
	return KeepProcessing
}

// Close releases the window.
func (w *GoCVWindow) Close() error {
	return w.win.Close()
}
