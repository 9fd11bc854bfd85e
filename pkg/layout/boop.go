// Package layout holds the fixed Borsh instruction layouts authored from
// the Anchor IDLs of the supported launchpads. Every layout is a build-time
// constant; nothing here is configurable at runtime.
package layout

// CreateTokenArgs matches the boop.fun create_token instruction arguments.
type CreateTokenArgs struct {
	Salt   uint64
	Name   string
	Symbol string
	URI    string
}
