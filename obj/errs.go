package obj

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is the root of all wrong-kind failures: a
	// sequence-style operation was invoked on a node kind that does not
	// support it.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotArray wraps ErrTypeMismatch for the generic non-array
	// diagnostic "not an Array: cannot {action}".
	ErrNotArray = fmt.Errorf("%w: not an Array", ErrTypeMismatch)

	// ErrItemNotFound is returned by Index and Remove when no child is
	// structurally equal to the wanted value.
	ErrItemNotFound = errors.New("item not in array")

	// ErrIndexOutOfRange is returned by Pop and the integer item
	// operations when the index, after normalization, is outside [0, n).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch is returned by extended-stride slice assignment
	// when the replacement count differs from the resolved position count.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrZeroStep is returned when a slice specifies step 0.
	ErrZeroStep = errors.New("slice step cannot be zero")

	// ErrKeyNotFound is returned by dictionary key and attribute lookups
	// for absent keys, and by key lookups on kinds that hold no keys.
	ErrKeyNotFound = errors.New("key not found")
)

// errWrongKind synthesizes the kind-specific diagnostic for a sequence
// operation attempted on a non-array node. The action token is the
// operation actually invoked and appears verbatim in the message.
func errWrongKind(k Kind, action string) error {
	if k == NameKind {
		return fmt.Errorf("%w: cannot %s object of type %s", ErrTypeMismatch, action, k)
	}
	return fmt.Errorf("%w: cannot %s", ErrNotArray, action)
}

func errNoKey(key string) error {
	return fmt.Errorf("%w: cannot get key '%s'", ErrKeyNotFound, key)
}
