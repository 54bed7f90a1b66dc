// Package visitor offers generic callback-based iteration over ordered
// key/element pairs and slices, used to traverse parsed value trees.
package visitor
