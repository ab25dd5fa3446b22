// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI.
//
// A run reads one instruction line, applies every valid instruction to the
// field in order, warns about the invalid ones and renders the result.
package app
