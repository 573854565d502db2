package serverid

import (
	"fmt"
	"strings"

	"github.com/saylorsolutions/rdscreen/pkg/screen"
)

// alphabet maps each 5-bit group to its display symbol. 32 symbols, skipping
// the visually ambiguous 0, O, 1, and I.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	groupSize = 4
	// MinTokenLen and MaxTokenLen bound the display length, dashes included.
	MinTokenLen = 10
	MaxTokenLen = 20
	minSymbols  = 10
	maxSymbols  = 16
	// minPayload is the fewest decoded bytes that can still carry an address
	// and port.
	minPayload = 6
)

// symbolValues maps a display character, either case, to its 5-bit value.
// Every other byte maps to -1.
var symbolValues = func() [256]int8 {
	var v [256]int8
	for i := range v {
		v[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		v[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			v[c+'a'-'A'] = int8(i)
		}
	}
	return v
}()

// Encode builds the Server ID token for an IPv4 address and port under the
// given Screen. The address must be a strict dotted quad; anything else is
// ErrInvalidInput.
func Encode(s *screen.Screen, ip string, port uint16) (string, error) {
	oct, err := parseIPv4(ip)
	if err != nil {
		return "", err
	}
	e := endpoint{ip: oct, port: port}
	rec, err := e.marshal()
	if err != nil {
		return "", err
	}
	if err := s.Encrypt(rec); err != nil {
		return "", err
	}
	return dashGroups(packSymbols(rec)), nil
}

// Decode recovers the IPv4 address and port from a token under the given
// Screen. Characters outside the alphabet or a payload too short to carry an
// endpoint yield ErrMalformedToken; a checksum mismatch after decryption,
// which is what a mistyped token or a foreign key produces, yields
// ErrChecksumFailure.
func Decode(s *screen.Screen, token string) (string, uint16, error) {
	sym, err := normalize(token)
	if err != nil {
		return "", 0, err
	}
	rec, n := unpackBytes(sym)
	if n < minPayload {
		return "", 0, fmt.Errorf("%w: %d byte payload cannot hold an endpoint", ErrMalformedToken, n)
	}
	if err := s.Decrypt(rec[:]); err != nil {
		return "", 0, err
	}
	var e endpoint
	if err := e.unmarshal(rec[:]); err != nil {
		return "", 0, err
	}
	if e.check != e.checksum() {
		return "", 0, fmt.Errorf("%w: token corrupted or produced under a different key", ErrChecksumFailure)
	}
	return e.addr(), e.port, nil
}

// ValidateFormat is a cheap structural pre-check: display length within
// bounds, at least one dash, every other character in the alphabet either
// case, and a plausible symbol count. Passing it does not guarantee the
// checksum will verify.
func ValidateFormat(token string) bool {
	if len(token) < MinTokenLen || len(token) > MaxTokenLen {
		return false
	}
	var symbols, dashes int
	for i := 0; i < len(token); i++ {
		if token[i] == '-' {
			dashes++
			continue
		}
		if symbolValues[token[i]] < 0 {
			return false
		}
		symbols++
	}
	return dashes >= 1 && symbols >= minSymbols && symbols <= maxSymbols
}

// normalize strips dashes, folds to upper case, and rejects any character
// outside the alphabet.
func normalize(token string) (string, error) {
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c == '-' {
			continue
		}
		v := symbolValues[c]
		if v < 0 {
			return "", fmt.Errorf("%w: invalid character %q", ErrMalformedToken, c)
		}
		b.WriteByte(alphabet[v])
	}
	return b.String(), nil
}

// packSymbols emits one symbol per 5 bits of data, most significant bit
// first. A trailing group short of 5 bits is zero-filled on the low side, so
// a full 8-byte record always packs to 13 symbols.
func packSymbols(data []byte) string {
	var (
		b     strings.Builder
		acc   uint
		nbits uint
	)
	for _, by := range data {
		acc = acc<<8 | uint(by)
		nbits += 8
		for nbits >= 5 {
			b.WriteByte(alphabet[acc>>(nbits-5)&0x1F])
			nbits -= 5
		}
	}
	if nbits > 0 {
		b.WriteByte(alphabet[acc<<(5-nbits)&0x1F])
	}
	return b.String()
}

// unpackBytes reverses packSymbols into a zero-filled record buffer,
// reporting how many whole bytes the symbols carried. At most recordSize
// bytes are kept; trailing bits short of a byte are discarded.
func unpackBytes(sym string) ([recordSize]byte, int) {
	var (
		out   [recordSize]byte
		n     int
		acc   uint
		nbits uint
	)
	for i := 0; i < len(sym) && n < recordSize; i++ {
		acc = acc<<5 | uint(symbolValues[sym[i]])
		nbits += 5
		if nbits >= 8 {
			out[n] = byte(acc >> (nbits - 8))
			nbits -= 8
			n++
		}
	}
	return out, n
}

// dashGroups inserts a dash before every fourth symbol.
func dashGroups(sym string) string {
	var b strings.Builder
	b.Grow(len(sym) + len(sym)/groupSize)
	for i := 0; i < len(sym); i++ {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(sym[i])
	}
	return b.String()
}
