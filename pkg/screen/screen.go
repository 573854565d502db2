package screen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

// KeySize is the exact length of every screening key.
const KeySize = 16

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrBufferTooSmall = errors.New("destination buffer too small")
)

// Screen applies the legacy four-stage byte transform under a fixed key.
// A Screen is immutable after construction and safe for concurrent use,
// as long as no two calls share a buffer.
type Screen struct {
	key [KeySize]byte
}

// New constructs a Screen from exactly KeySize bytes of key material.
// The key is copied; the caller may zero its slice afterwards.
func New(key []byte) (*Screen, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be exactly %d bytes, got %d", ErrInvalidInput, KeySize, len(key))
	}
	s := new(Screen)
	copy(s.key[:], key)
	return s, nil
}

// rotation is the per-position circular shift amount, always in 1..7.
func rotation(i int) int {
	return (i+1)%7 + 1
}

// posMask is the per-position whitening byte applied in the final stage.
func posMask(i int) byte {
	return byte(i * 37)
}

// Encrypt screens buf in place. Every byte passes through the four forward
// stages; no byte depends on any other. An empty or nil buffer is rejected
// without touching it.
func (s *Screen) Encrypt(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrInvalidInput)
	}
	for i, b := range buf {
		b ^= s.key[i%KeySize]
		b = sbox[b]
		b = bits.RotateLeft8(b, rotation(i))
		b ^= posMask(i)
		buf[i] = b
	}
	return nil
}

// Decrypt reverses Encrypt in place, applying the inverse of each stage in
// reverse order. Decrypt(Encrypt(b)) recovers b exactly for any buffer and
// any key.
func (s *Screen) Decrypt(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrInvalidInput)
	}
	for i, b := range buf {
		b ^= posMask(i)
		b = bits.RotateLeft8(b, -rotation(i))
		b = invSbox[b]
		b ^= s.key[i%KeySize]
		buf[i] = b
	}
	return nil
}

// EncryptUint32 screens a 32-bit value through its little-endian byte
// serialization. Used for opaque identifiers and IP addresses held as
// integers.
func (s *Screen) EncryptUint32(v uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_ = s.Encrypt(b[:]) // 4 bytes, never empty
	return binary.LittleEndian.Uint32(b[:])
}

// DecryptUint32 reverses EncryptUint32.
func (s *Screen) DecryptUint32(v uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_ = s.Decrypt(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// EncryptString screens the content bytes of src into dst, followed by a
// single zero terminator that is never transformed. dst must be strictly
// longer than src so the terminator always fits; otherwise dst is left
// untouched and ErrBufferTooSmall is returned. The count written, including
// the terminator, is returned on success.
func (s *Screen) EncryptString(dst []byte, src string) (int, error) {
	return s.screenString(dst, src, s.Encrypt)
}

// DecryptString reverses EncryptString with the same bounds contract. src is
// the screened content without its terminator.
func (s *Screen) DecryptString(dst []byte, src string) (int, error) {
	return s.screenString(dst, src, s.Decrypt)
}

func (s *Screen) screenString(dst []byte, src string, transform func([]byte) error) (int, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	if len(src) >= len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(src)+1, len(dst))
	}
	n := copy(dst, src)
	dst[n] = 0
	if err := transform(dst[:n]); err != nil {
		return 0, err
	}
	return n + 1, nil
}
