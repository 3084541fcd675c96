// Package scene is the small 3D layer the orrery draws through.
//
// It holds the pieces a rendering engine would normally provide:
//
//   - [Mesh]: a sphere with a position, used as a body's scene handle
//   - [Camera]: perspective projection to and from normalized device coordinates
//   - [OrbitControls]: damped orbiting of the camera around its target
//   - [Raycaster]: nearest-first ray intersection for picking
//
// Nothing here knows about orbits, sliders or terminals.
package scene
