// Package viz draws the collision lab in the terminal.
//
// A [Canvas] packs 2x4 sub-pixels into each Braille cell. A [Camera]
// projects the [Scene] box and both particle markers onto it, and [App]
// wraps the view in a Bubble Tea program with the input form, the
// conservation results and the hypothesis box.
//
// # Key Bindings
//
//	tab     - Next field
//	h/l     - Adjust the focused value
//	enter   - Type a value, or submit the hypothesis
//	p/space - Play or pause the animation
//	r       - Rewind
//	[ ]     - Step one frame
//	x/y/z   - Rotate the camera
//	t       - Cycle color themes
//	g       - Save the animation as a GIF
//	?       - Show help overlay
package viz
