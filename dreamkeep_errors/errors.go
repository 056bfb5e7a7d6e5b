// Provides common dreamkeep errors definitions.
package dreamkeep_errors

import "errors"

var (
	ErrLengthDiscipline = errors.New("dreamkeep: snapshot lengths differ by more than one")
	ErrUnknownKind      = errors.New("dreamkeep: unknown creature kind")
	ErrUnknownEffect    = errors.New("dreamkeep: unknown dream effect")
	ErrBadValue         = errors.New("dreamkeep: stored value has the wrong type")
	ErrEmptyCollection  = errors.New("dreamkeep: remove from an empty collection")
	ErrClosed           = errors.New("dreamkeep: store is closed")
)
