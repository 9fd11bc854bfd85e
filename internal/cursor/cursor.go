// Package cursor provides sequential bounds-checked reads over a borrowed
// byte slice. A Cursor belongs to exactly one decode call; it is never
// shared or reused across calls.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrOutOfBounds     = errors.New("read past end of buffer")
	ErrInvalidEncoding = errors.New("string bytes are not valid utf-8")
)

type Cursor struct {
	buf []byte
	pos int
}

func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining reports how many unread bytes are left.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// take reserves the next n bytes. The position advances only when all n
// bytes are available, so a failed read never moves the cursor.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrOutOfBounds, n, c.pos, c.Remaining())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBool consumes one byte; any non-zero value is true.
func (c *Cursor) ReadBool() (bool, error) {
	b, err := c.take(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// ReadString consumes a u32 little-endian length prefix followed by that
// many UTF-8 bytes. On any failure the cursor is restored to where the
// string started.
func (c *Cursor) ReadString() (string, error) {
	start := c.pos
	n, err := c.ReadU32()
	if err != nil {
		return "", err
	}
	b, err := c.take(int(n))
	if err != nil {
		c.pos = start
		return "", err
	}
	if !utf8.Valid(b) {
		c.pos = start
		return "", fmt.Errorf("%w: %d-byte string at offset %d", ErrInvalidEncoding, n, start)
	}
	return string(b), nil
}

// ReadPubkey consumes exactly 32 bytes.
func (c *Cursor) ReadPubkey() (solana.PublicKey, error) {
	b, err := c.take(solana.PublicKeyLength)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(b), nil
}
