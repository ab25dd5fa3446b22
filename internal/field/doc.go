// Package field owns the crop field: a fixed Height x Width grid of cells
// that instructions plant, mow or toggle by whole discs.
//
// The field stores cell states only. Turning states into text is the job of
// the render package.
package field
