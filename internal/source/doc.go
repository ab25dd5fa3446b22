// Package source provides the single line of instructions a run consumes.
//
// The core never looks at the file system; it asks a Source for a line. The
// concrete sources here read from a file, from any io.Reader (usually stdin)
// or from a file with a stdin fallback. Files ending in ".zst" are
// decompressed on the fly.
package source
