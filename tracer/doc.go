// Package tracer is the rendering core of duoray: vector math, the fixed
// sphere scene, ray-sphere intersection, half-Lambert shading with a binary
// shadow test, and quantization into the display's packed 16-bit word.
//
// Everything here is pure and allocation-free so it can run on either core
// of an RP2040 without coordination. The Mirror material is carried through
// the data model but shades exactly like Diffuse.
package tracer
