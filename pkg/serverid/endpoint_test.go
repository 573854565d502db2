package serverid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointMarshalLayout(t *testing.T) {
	e := endpoint{ip: [4]byte{192, 168, 1, 100}, port: 5900}
	data, err := e.marshal()
	assert.NoError(t, err)
	// [ip0..ip3][portHi][portLo][checksum][magic]
	assert.Equal(t, []byte{192, 168, 1, 100, 0x17, 0x0C, 0x16, 0x2A}, data)
}

func TestEndpointChecksum(t *testing.T) {
	e := endpoint{ip: [4]byte{192, 168, 1, 100}, port: 5900}
	assert.Equal(t, byte(192^168^1^100^0x17^0x0C), e.checksum())

	zero := endpoint{}
	assert.Equal(t, byte(0), zero.checksum())
}

func TestEndpointUnmarshal(t *testing.T) {
	var e endpoint
	assert.NoError(t, e.unmarshal([]byte{10, 0, 0, 1, 0x00, 0x50, 0x5B, 0x2A}))
	assert.Equal(t, "10.0.0.1", e.addr())
	assert.Equal(t, uint16(80), e.port)
	assert.Equal(t, e.checksum(), e.check)
	assert.Equal(t, byte(recordMagic), e.magic)
}

func TestParseIPv4(t *testing.T) {
	ip, err := parseIPv4("0.0.0.0")
	assert.NoError(t, err)
	assert.Equal(t, [4]byte{}, ip)

	ip, err = parseIPv4("255.254.253.252")
	assert.NoError(t, err)
	assert.Equal(t, [4]byte{255, 254, 253, 252}, ip)

	_, err = parseIPv4("::1")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = parseIPv4("300.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
