// Package render turns a field into text. Every cell becomes a two column
// glyph; rows are written top to bottom, one line each.
package render
