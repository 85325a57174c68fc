// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwsurface

import (
	"errors"

	"github.com/gogpu/surfman"
)

// ErrTargetClosed is returned when a closed Target is used.
var ErrTargetClosed = errors.New("glfwsurface: target is closed")

// Target is a surfman context rendering into a GLFW window. Sync rebinds
// the context to a new widget surface whenever the framebuffer size
// changes.
//
// Target is NOT safe for concurrent use.
type Target struct {
	device *surfman.Device
	window Window
	ctx    *surfman.Context
	size   surfman.Size
	closed bool
}

// NewTarget creates a context on device rendering into window.
func NewTarget(device *surfman.Device, window Window, attrs surfman.ContextAttributes) (*Target, error) {
	st, err := SurfaceType(window)
	if err != nil {
		return nil, err
	}
	cd, err := device.CreateContextDescriptor(attrs)
	if err != nil {
		return nil, err
	}
	ctx, err := device.CreateContext(cd, st)
	if err != nil {
		return nil, err
	}
	surfman.Logger().Debug("glfwsurface: target created", "size", st.Widget.Size)
	return &Target{
		device: device,
		window: window,
		ctx:    ctx,
		size:   st.Widget.Size,
	}, nil
}

// Context returns the context, or nil once the target is closed.
func (t *Target) Context() *surfman.Context {
	if t.closed {
		return nil
	}
	return t.ctx
}

// Size returns the size of the bound surface.
func (t *Target) Size() surfman.Size {
	return t.size
}

// Sync replaces the bound surface if the framebuffer was resized and
// reports whether it did. A minimized window keeps the current surface.
func (t *Target) Sync() (bool, error) {
	if t.closed {
		return false, ErrTargetClosed
	}
	st, err := SurfaceType(t.window)
	if errors.Is(err, ErrEmptyFramebuffer) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if st.Widget.Size == t.size {
		return false, nil
	}

	s, err := t.device.CreateSurface(t.ctx, st)
	if err != nil {
		return false, err
	}
	prev, err := t.device.ReplaceContextSurface(t.ctx, s)
	if err != nil {
		_ = t.device.DestroySurface(t.ctx, s)
		return false, err
	}
	if err := t.device.DestroySurface(t.ctx, prev); err != nil {
		surfman.Logger().Warn("glfwsurface: failed to destroy previous surface", "err", err)
	}
	surfman.Logger().Debug("glfwsurface: surface resized", "from", t.size, "to", st.Widget.Size)
	t.size = st.Widget.Size
	return true, nil
}

// Close destroys the context and its surface. Close is idempotent.
func (t *Target) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.device.DestroyContext(t.ctx)
}
