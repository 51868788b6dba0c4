// Package notequery filters and orders an already loaded list of notes.
//
// Nothing here touches storage. Results are new slices; the input is never
// reordered in place.
package notequery
