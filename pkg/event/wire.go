package event

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/rdscreen/pkg/screen"
)

// Wire sizes of the two event records, big-endian fields.
const (
	PointerWireSize = 4 + 4 + 2 + 1 + 2
	KeyWireSize     = 2 + 2 + 1
)

func (e *PointerEvent) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&e.X),
		bin.Int(&e.Y),
		bin.Int((*uint16)(&e.Flags)),
		bin.Byte((*uint8)(&e.Buttons)),
		bin.Int(&e.Wheel),
	)
}

func (e *KeyEvent) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&e.VirtualKey),
		bin.Int(&e.ScanCode),
		bin.Byte((*uint8)(&e.Flags)),
	)
}

// MarshalWire serializes the event and screens the result with s.
func (e *PointerEvent) MarshalWire(s *screen.Screen) ([]byte, error) {
	return marshalScreened(e.mapper(), s)
}

// UnmarshalWire reverses MarshalWire. data must be exactly PointerWireSize
// bytes and is not modified; on failure the receiver is left untouched.
func (e *PointerEvent) UnmarshalWire(s *screen.Screen, data []byte) error {
	var decoded PointerEvent
	if err := unmarshalScreened(decoded.mapper(), s, data, PointerWireSize); err != nil {
		return err
	}
	*e = decoded
	return nil
}

// MarshalWire serializes the event and screens the result with s.
func (e *KeyEvent) MarshalWire(s *screen.Screen) ([]byte, error) {
	return marshalScreened(e.mapper(), s)
}

// UnmarshalWire reverses MarshalWire. data must be exactly KeyWireSize bytes
// and is not modified; on failure the receiver is left untouched.
func (e *KeyEvent) UnmarshalWire(s *screen.Screen, data []byte) error {
	var decoded KeyEvent
	if err := unmarshalScreened(decoded.mapper(), s, data, KeyWireSize); err != nil {
		return err
	}
	*e = decoded
	return nil
}

func marshalScreened(m bin.Mapper, s *screen.Screen) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	if err := s.Encrypt(out); err != nil {
		return nil, err
	}
	return out, nil
}

func unmarshalScreened(m bin.Mapper, s *screen.Screen, data []byte, size int) error {
	if len(data) != size {
		return fmt.Errorf("%w: wire record must be %d bytes, got %d", screen.ErrInvalidInput, size, len(data))
	}
	plain := make([]byte, size)
	copy(plain, data)
	if err := s.Decrypt(plain); err != nil {
		return err
	}
	return m.Read(bytes.NewReader(plain), binary.BigEndian)
}
