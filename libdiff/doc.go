// Package libdiff compares the part numbers of two schematics.
//
// Each part list is rendered one part per line and the two renderings are
// diffed line by line, so a part that moves is reported as removed at its
// old position and added at its new one.
package libdiff
