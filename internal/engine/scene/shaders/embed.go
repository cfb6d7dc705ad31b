// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader is the vertex shader for the main surface pass.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader is the fragment shader for the main surface pass.
//
//go:embed surface.frag
var SurfaceFragmentShader string

// PickingVertexShader is the vertex shader for the offscreen picking pass.
//
//go:embed picking.vert
var PickingVertexShader string

// PickingFragmentShader is the fragment shader for the offscreen picking pass.
//
//go:embed picking.frag
var PickingFragmentShader string
