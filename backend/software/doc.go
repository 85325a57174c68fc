// Package software is the CPU backend of surfman.
//
// Surfaces are *image.RGBA color planes with optional depth (24-bit,
// cleared to 1.0) and stencil (8-bit) planes. Contexts always draw into
// the default framebuffer. Surface textures are copies of the color plane
// uploaded with golang.org/x/image/draw.
//
// The rasterizer renders offscreen only: widget surface requests fail with
// ErrInvalidNativeWidget. Use the root surfman package to get the same
// check before the request reaches this package.
package software
