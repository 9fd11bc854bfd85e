package memedecoder

import (
	"errors"

	"github.com/Gh05d/meme-decoder/internal/cursor"
)

// Every decode failure surfaces as one of these sentinels, matchable with
// errors.Is. Wrapped messages name the offending field and offsets.
var (
	ErrShortBuffer     = errors.New("buffer shorter than 8-byte discriminator")
	ErrOutOfBounds     = cursor.ErrOutOfBounds
	ErrInvalidEncoding = cursor.ErrInvalidEncoding
	ErrInvalidLength   = errors.New("pubkey must be exactly 32 bytes")
	ErrDeserialize     = errors.New("borsh deserialize failed")
)
