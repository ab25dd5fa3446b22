// internal/instruction/doc.go

/*
Package instruction turns the textual tokens of a crop-circle line into
structured instructions.

A token has the shape `[PLANTMOW|PLANT]<col><row><diameter>`, e.g. `jm5`,
`PLANTgg7` or `PLANTMOWjm13`. The column letter ranges over `a`..`s` and the
row letter over `a`..`y`; both map to zero-based indices by their offset from
`a`. The diameter is a one or two digit number. A token without a prefix
mows.

This package owns the token grammar and nothing else: it never touches the
field and never decides what to do with an invalid token beyond reporting it.
*/
package instruction
