/*
Package screen implements the byte screening scheme used by the legacy
remote-access protocol, along with management of the 16-byte keys that drive
it.

Note that this is NOT encryption, since every output byte depends only on its
own input byte, its position, and the key.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for keeping protocol values (identifiers,
addresses, display strings) from appearing as plain text on the wire or in
storage, since reversing it generally requires knowledge of the key.

# How it works:

Each byte at position i passes through four stages: an XOR with the key byte
at i mod 16, a fixed substitution table, a circular left rotation by
((i+1) mod 7)+1 bits, and an XOR with the low byte of i*37.
Decryption applies the exact inverse of each stage in reverse order, so a
Screen built from the same key always recovers the original bytes.

There is no chaining between bytes. Repeated plain text bytes at the same
position under the same key always produce the same output, and a single
corrupted byte corrupts exactly one byte of the recovered plain text. Both
are properties of the legacy scheme that peers rely on, not defects to fix
here.

# Keys:

A Keychain owns the mutable key state: the built-in default key, a
caller-supplied key, a key derived from a password, or weak pseudo-random
session key material, matching the legacy peers byte for byte. SecureKey and
DeriveKeyScrypt are the recommended substitutes when no legacy peer is
involved.
*/
package screen
