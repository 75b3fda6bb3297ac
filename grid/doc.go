// Package grid finds the part numbers of a schematic.
//
// A schematic is a set of text lines. A number is a part number when a
// symbol touches it, either on its own line or on a line directly
// above or below, diagonals included. [Scanner.Sum] adds up the part numbers.
// [Scanner.GearRatioSum] adds up the products of gears, which are symbol cells
// touching exactly two numbers.
//
// A Scanner holds only immutable configuration. All of its methods are pure
// functions of their arguments, so one Scanner may be shared between goroutines.
package grid
