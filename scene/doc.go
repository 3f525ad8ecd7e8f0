// Package scene simulates the starfield-and-planet backdrop: a depth-recycled
// star population, a Fibonacci-sphere point cloud, transient connection arcs
// between nearby stars, and a smoothed camera driven by pointer, wheel and
// pinch input.
//
// The package is display-agnostic and allocation-light: one Advance call steps
// every entity by a single frame, and the containers it owns are only replaced
// on Resize. Drawing is left to the caller, which reads positions back through
// the projection helpers on Camera.
package scene
