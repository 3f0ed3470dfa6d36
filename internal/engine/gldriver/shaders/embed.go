// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SelectionVertexShader places the unit box with a 4x3 box transform.
//
//go:embed selection.vert
var SelectionVertexShader string

// SelectionFragmentShader draws the box with a flat color and a soft edge.
//
//go:embed selection.frag
var SelectionFragmentShader string
