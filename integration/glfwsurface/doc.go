// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfwsurface connects GLFW windows to surfman hardware devices.
//
// It converts a *glfw.Window into a surfman.NativeWidget, resolves GL entry
// points through glfw.GetProcAddress, and keeps a context's widget surface
// in step with the window's framebuffer size:
//
//	window, _ := glfw.CreateWindow(800, 600, "demo", nil, nil)
//	window.MakeContextCurrent()
//
//	adapter, _ := surfman.HardwareAdapter(surfman.WithProcLoader(glfwsurface.ProcLoader()))
//	device, _ := surfman.NewDevice(adapter)
//	target, _ := glfwsurface.NewTarget(device, window, attrs)
//	defer target.Close()
//
//	for !window.ShouldClose() {
//	    glfw.PollEvents()
//	    if _, err := target.Sync(); err != nil {
//	        log.Fatal(err)
//	    }
//	    // draw into target.Context()
//	}
//
// # Thread Safety
//
// GLFW requires window calls on the main thread. Target is NOT safe for
// concurrent use.
package glfwsurface
