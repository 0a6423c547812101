//go:build !withcv
// +build !withcv

/*
NAME
  display_circleci.go

DESCRIPTION
  Replaces Window's gocv-backed implementation when built without
  OpenCV support. This is needed because CircleCI does not have a copy
  of OpenCV installed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package display

import "github.com/ausocean/vibra/frame"

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

// GoCVWindow stands in for the gocv-backed window for testing purposes
// only; it shows nothing and asks callers to close immediately.
type GoCVWindow struct{}

// NewGoCVWindow returns a no-op window for CircleCI testing only.
func NewGoCVWindow(name string) *GoCVWindow { return &GoCVWindow{} }

// Show performs no operation for CircleCI testing only.
func (w *GoCVWindow) Show(f frame.View) {}

// WaitEvent always reports CloseApplication for CircleCI testing only.
func (w *GoCVWindow) WaitEvent(timeoutMs int) Signal { return CloseApplication }

// Close performs no operation for CircleCI testing only.
func (w *GoCVWindow) Close() error { return nil }
