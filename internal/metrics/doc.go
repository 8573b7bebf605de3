// Package metrics reports conserved quantities of a collision for display.
//
// Values are formatted with two decimals and their unit: momentum in kg·m/s
// and kinetic energy in J.
package metrics
