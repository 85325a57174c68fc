// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwsurface

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/surfman"
)

// Common errors returned by widget conversion.
var (
	// ErrNilWindow is returned when a nil window is passed.
	ErrNilWindow = errors.New("glfwsurface: nil window")

	// ErrNoHandle is returned when the window has no native handle, for
	// example after it was destroyed.
	ErrNoHandle = errors.New("glfwsurface: window has no native handle")

	// ErrEmptyFramebuffer is returned while the window is minimized.
	ErrEmptyFramebuffer = errors.New("glfwsurface: empty framebuffer")
)

// Window is the part of *glfw.Window used by this package.
type Window interface {
	Handle() unsafe.Pointer
	GetFramebufferSize() (width, height int)
}

var _ Window = (*glfw.Window)(nil)

// NativeWidget returns the widget for w, sized to its framebuffer.
func NativeWidget(w Window) (surfman.NativeWidget, error) {
	if w == nil {
		return surfman.NativeWidget{}, ErrNilWindow
	}
	if win, ok := w.(*glfw.Window); ok && win == nil {
		return surfman.NativeWidget{}, ErrNilWindow
	}
	handle := uintptr(w.Handle())
	if handle == 0 {
		return surfman.NativeWidget{}, ErrNoHandle
	}
	width, height := w.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		return surfman.NativeWidget{}, fmt.Errorf("%w: %dx%d", ErrEmptyFramebuffer, width, height)
	}
	return surfman.NativeWidget{Handle: handle, Size: surfman.Sz(width, height)}, nil
}

// SurfaceType returns a widget surface request for w.
func SurfaceType(w Window) (surfman.SurfaceType, error) {
	widget, err := NativeWidget(w)
	if err != nil {
		return surfman.SurfaceType{}, err
	}
	return surfman.WidgetSurfaceType(widget), nil
}

// ProcLoader returns a loader resolving GL entry points with
// glfw.GetProcAddress. A GLFW context must be current when it is called.
func ProcLoader() surfman.ProcLoader {
	return NewProcLoader(glfw.GetProcAddress)
}

// NewProcLoader adapts a GLFW-style resolver to a surfman.ProcLoader.
func NewProcLoader(resolve func(name string) unsafe.Pointer) surfman.ProcLoader {
	return func(name string) uintptr {
		return uintptr(resolve(name))
	}
}
