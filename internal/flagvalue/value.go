// Package flagvalue provides flag.Value implementations
// shared by the syntaxblock command line.
package flagvalue

import "flag"

// Getter is satisfied by pointers to T
// that implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}
