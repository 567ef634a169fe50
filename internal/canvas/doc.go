// Package canvas provides the flat RGB pixel buffer that a scene is
// rasterized into once per frame.
//
// The byte layout is fixed: 8-bit RGB, row-major, three contiguous samples
// per pixel, no header. Pixel (x, y) channel c lives at
//
//	3*(Width*y + x) + c
//
// Display adapters must know Width and Height out of band. Background
// buffers produced by [Solid] and [Noise] share the same layout and can be
// copied straight into [Canvas.Data].
package canvas
