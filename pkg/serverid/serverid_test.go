package serverid

import (
	"testing"

	"github.com/saylorsolutions/rdscreen/pkg/screen"
	"github.com/stretchr/testify/assert"
)

func defaultScreen(t *testing.T) *screen.Screen {
	t.Helper()
	s, err := screen.New(screen.DefaultKey())
	assert.NoError(t, err)
	return s
}

var altKey = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// Token values here were computed independently of this implementation.
// Interoperating peers must emit the same tokens for the same inputs.
func TestEncodeDefaultKey(t *testing.T) {
	s := defaultScreen(t)

	token, err := Encode(s, "192.168.1.100", 5900)
	assert.NoError(t, err)
	assert.Equal(t, "XEAV-69TS-L3GB-Q", token)

	ip, port, err := Decode(s, token)
	assert.NoError(t, err)
	assert.Equal(t, "192.168.1.100", ip)
	assert.Equal(t, uint16(5900), port)
}

func TestEncodeAltKey(t *testing.T) {
	s, err := screen.New(altKey)
	assert.NoError(t, err)

	token, err := Encode(s, "192.168.1.100", 5900)
	assert.NoError(t, err)
	assert.Equal(t, "DVN3-5Y86-ZUQ2-6", token)
	assert.NotEqual(t, "XEAV-69TS-L3GB-Q", token, "a different key must change the token")

	ip, port, err := Decode(s, token)
	assert.NoError(t, err)
	assert.Equal(t, "192.168.1.100", ip)
	assert.Equal(t, uint16(5900), port)
}

func TestDecodeSecondVector(t *testing.T) {
	s := defaultScreen(t)

	ip, port, err := Decode(s, "MU48-42KQ-DG4B-Q")
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.1", ip)
	assert.Equal(t, uint16(80), port)
}

func TestRoundTripSweep(t *testing.T) {
	s := defaultScreen(t)

	cases := []struct {
		ip   string
		port uint16
	}{
		{"0.0.0.0", 0},
		{"255.255.255.255", 65535},
		{"10.0.0.1", 80},
		{"172.16.254.3", 3389},
		{"8.8.8.8", 53},
	}
	for _, tc := range cases {
		token, err := Encode(s, tc.ip, tc.port)
		assert.NoError(t, err)
		assert.True(t, ValidateFormat(token), "token %q must pass its own format check", token)

		ip, port, err := Decode(s, token)
		assert.NoError(t, err)
		assert.Equal(t, tc.ip, ip)
		assert.Equal(t, tc.port, port)
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	s := defaultScreen(t)

	ip, port, err := Decode(s, "xeav-69ts-l3gb-q")
	assert.NoError(t, err)
	assert.Equal(t, "192.168.1.100", ip)
	assert.Equal(t, uint16(5900), port)
}

func TestCrossKeyChecksumFailure(t *testing.T) {
	defScr := defaultScreen(t)
	alt, err := screen.New(altKey)
	assert.NoError(t, err)

	token, err := Encode(defScr, "192.168.1.100", 5900)
	assert.NoError(t, err)
	_, _, err = Decode(alt, token)
	assert.ErrorIs(t, err, ErrChecksumFailure)

	token, err = Encode(alt, "192.168.1.100", 5900)
	assert.NoError(t, err)
	_, _, err = Decode(defScr, token)
	assert.ErrorIs(t, err, ErrChecksumFailure)
}

func TestCorruptedToken(t *testing.T) {
	s := defaultScreen(t)

	// First symbol corrupted: the checksum catches it.
	_, _, err := Decode(s, "AEAV-69TS-L3GB-Q")
	assert.ErrorIs(t, err, ErrChecksumFailure)

	// The final symbol covers only the magic byte, which decode does not
	// verify, so corruption there passes undetected. Known limitation of
	// the single-checksum record.
	ip, port, err := Decode(s, "XEAV-69TS-L3GB-A")
	assert.NoError(t, err)
	assert.Equal(t, "192.168.1.100", ip)
	assert.Equal(t, uint16(5900), port)
}

func TestDecodeMalformed(t *testing.T) {
	s := defaultScreen(t)

	// 'I' is excluded from the alphabet.
	_, _, err := Decode(s, "IEAV-69TS-L3GB-Q")
	assert.ErrorIs(t, err, ErrMalformedToken)

	_, _, err = Decode(s, "XEAV*69TS")
	assert.ErrorIs(t, err, ErrMalformedToken)

	// 8 symbols carry only 5 whole bytes, too short for IP+port.
	_, _, err = Decode(s, "AAAA-AAAA")
	assert.ErrorIs(t, err, ErrMalformedToken)

	_, _, err = Decode(s, "")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestEncodeInvalidIP(t *testing.T) {
	s := defaultScreen(t)

	for _, ip := range []string{
		"",
		"1.2.3",
		"1.2.3.4.5",
		"256.1.1.1",
		"1.2.3.-4",
		"a.b.c.d",
		"1..2.3",
		"192.168.1.100 ",
	} {
		_, err := Encode(s, ip, 80)
		assert.ErrorIs(t, err, ErrInvalidInput, "ip %q", ip)
	}
}

func TestValidateFormat(t *testing.T) {
	assert.True(t, ValidateFormat("XEAV-69TS-L3GB-Q"))
	assert.True(t, ValidateFormat("xeav-69ts-l3gb-q"))
	assert.True(t, ValidateFormat("AAAA-AAAA-AA"))

	// Length bounds, dashes included.
	assert.False(t, ValidateFormat("AAAA-AAAA"))
	assert.False(t, ValidateFormat("AAAA-AAAA-AAAA-AAAA-A"))
	// No dash at all.
	assert.False(t, ValidateFormat("ABCDEFGHJKMN"))
	// Characters outside the alphabet.
	assert.False(t, ValidateFormat("XEAV-69TS-L3GB-I"))
	assert.False(t, ValidateFormat("XEAV-69TS-L3G0-Q"))
	assert.False(t, ValidateFormat("XEAV 69TS L3GB"))
	// Too many symbols even though the display length fits.
	assert.False(t, ValidateFormat("AAAAAAAAAAAAAAAAA-AA"))
}
