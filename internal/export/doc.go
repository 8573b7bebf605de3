// Package export writes runs and rendered frames to files: JSON documents,
// SVG snapshots and animated GIFs.
package export
