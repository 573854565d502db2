package serverid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	bin "github.com/saylorsolutions/binmap"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMalformedToken  = errors.New("malformed token")
	ErrChecksumFailure = errors.New("token checksum mismatch")
)

const (
	recordSize  = 8
	recordMagic = 0x2A
)

// endpoint is the structured form of the 8-byte record behind every token:
// [ip0][ip1][ip2][ip3][portHi][portLo][checksum][magic].
type endpoint struct {
	ip    [4]byte
	port  uint16
	check byte
	magic byte
}

func (e *endpoint) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&e.ip[0]),
		bin.Byte(&e.ip[1]),
		bin.Byte(&e.ip[2]),
		bin.Byte(&e.ip[3]),
		bin.Int(&e.port),
		bin.Byte(&e.check),
		bin.Byte(&e.magic),
	)
}

// checksum is the XOR of the six bytes preceding the checksum field.
func (e *endpoint) checksum() byte {
	return e.ip[0] ^ e.ip[1] ^ e.ip[2] ^ e.ip[3] ^ byte(e.port>>8) ^ byte(e.port)
}

func (e *endpoint) marshal() ([]byte, error) {
	e.check = e.checksum()
	e.magic = recordMagic
	var buf bytes.Buffer
	if err := e.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *endpoint) unmarshal(data []byte) error {
	return e.mapper().Read(bytes.NewReader(data), binary.BigEndian)
}

func (e *endpoint) addr() string {
	return fmt.Sprintf("%d.%d.%d.%d", e.ip[0], e.ip[1], e.ip[2], e.ip[3])
}

// parseIPv4 parses a strict dotted quad: exactly four decimal octets in
// 0-255. net.ParseIP is deliberately not used here; it admits forms the
// token contract rejects.
func parseIPv4(s string) ([4]byte, error) {
	var ip [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return ip, fmt.Errorf("%w: %q is not a dotted-quad IPv4 address", ErrInvalidInput, s)
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return ip, fmt.Errorf("%w: bad octet %q in %q", ErrInvalidInput, p, s)
		}
		ip[i] = byte(n)
	}
	return ip, nil
}
