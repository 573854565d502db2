package screen

import (
	"crypto/rand"
	"fmt"
	"io"
	mrand "math/rand"
	"sync"
	"time"

	"golang.org/x/crypto/scrypt"
)

// defaultKey is the built-in key installed whenever no key has been supplied:
// ASCII "RD2K" followed by three little-endian marker dwords (0xDEADBEEF,
// 0xCAFEBABE, 0x0BADF00D). It is a documented compatibility constant, not a
// secret.
var defaultKey = [KeySize]byte{
	'R', 'D', '2', 'K',
	0xEF, 0xBE, 0xAD, 0xDE,
	0xBE, 0xBA, 0xFE, 0xCA,
	0x0D, 0xF0, 0xAD, 0x0B,
}

// DefaultKey returns a copy of the built-in default key.
func DefaultKey() []byte {
	k := defaultKey
	return k[:]
}

const (
	// hashSeed starts the streaming password hash.
	hashSeed uint32 = 5381
	// lcgMul and lcgInc step the linear-congruential recurrence shared by
	// session-key generation and password derivation.
	lcgMul uint32 = 1103515245
	lcgInc uint32 = 12345
)

func lcgStep(x uint32) uint32 {
	return x*lcgMul + lcgInc
}

// Keychain owns the active key for a group of screening calls. The zero value
// is usable: the first Screen or SessionKey call installs the default key.
// All methods are safe for concurrent use.
type Keychain struct {
	mu    sync.Mutex
	key   [KeySize]byte
	ready bool
	rng   *mrand.Rand
}

// NewKeychain returns an uninitialized Keychain.
func NewKeychain() *Keychain {
	return new(Keychain)
}

// Init installs key as the active key, or the built-in default when key is
// nil, and seeds the generator behind SessionKey.
func (k *Keychain) Init(key []byte) error {
	if key != nil && len(key) != KeySize {
		return fmt.Errorf("%w: key must be exactly %d bytes, got %d", ErrInvalidInput, KeySize, len(key))
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.installLocked(key)
	return nil
}

func (k *Keychain) installLocked(key []byte) {
	if key == nil {
		k.key = defaultKey
	} else {
		copy(k.key[:], key)
	}
	k.ready = true
	if k.rng == nil {
		k.rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
}

// SetKey replaces the active key. The chain becomes initialized if it wasn't.
func (k *Keychain) SetKey(key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: key must be exactly %d bytes, got %d", ErrInvalidInput, KeySize, len(key))
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.installLocked(key)
	return nil
}

// Key returns a copy of the active key. Before initialization the copy is all
// zeros.
func (k *Keychain) Key() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]byte, KeySize)
	copy(out, k.key[:])
	return out
}

// Screen returns a Screen over the active key, installing the default key
// first when the chain is uninitialized. The lazy install preserves the
// legacy first-use behavior; callers wanting explicit control should Init
// beforehand.
func (k *Keychain) Screen() (*Screen, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.ready {
		k.installLocked(nil)
	}
	return New(k.key[:])
}

// SessionKey produces KeySize bytes of weak pseudo-random key material the
// way legacy peers do: generator output mixed with the tick count and the
// default key, stepped by the linear-congruential recurrence across the
// output bytes.
//
// The result is deterministic given the generator state and clock. It is NOT
// cryptographically secure; use SecureKey where strong randomness matters.
func (k *Keychain) SessionKey() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.ready {
		k.installLocked(nil)
	}
	state := k.rng.Uint32() ^ uint32(time.Now().UnixNano())
	out := make([]byte, KeySize)
	for i := range out {
		state = lcgStep(state)
		out[i] = defaultKey[i] ^ byte(state>>24)
	}
	return out
}

// Cleanup overwrites the active key with zeros and returns the chain to its
// uninitialized state.
func (k *Keychain) Cleanup() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.key = [KeySize]byte{}
	k.ready = false
	k.rng = nil
}

// DeriveKey maps a password onto a key exactly as legacy peers do: a
// multiplicative streaming hash of the password (h = h*33 + c, seeded at
// hashSeed) XORed byte-wise over the default key through a rotating hash
// window, with the hash stepped by the linear-congruential recurrence between
// bytes. The same password always yields the same key.
func DeriveKey(password string) []byte {
	h := hashSeed
	for i := 0; i < len(password); i++ {
		h = h*33 + uint32(password[i])
	}
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = defaultKey[i] ^ byte(h>>((i%4)*8))
		h = lcgStep(h)
	}
	return key
}

// SecureKey returns KeySize bytes from the OS entropy pool. This is the
// recommended source for session keys when no legacy peer requires the weak
// SessionKey stream.
func SecureKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to read key bytes: %w", err)
	}
	return key, nil
}

// DeriveKeyScrypt derives a key from a password with scrypt, as the modern
// alternative to DeriveKey. Unlike DeriveKey it requires a salt, so equal
// passwords under different salts yield unrelated keys.
func DeriveKeyScrypt(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrInvalidInput)
	}
	key, err := scrypt.Key([]byte(password), salt, 1<<15, 8, 1, KeySize)
	if err != nil {
		return nil, err
	}
	return key, nil
}
