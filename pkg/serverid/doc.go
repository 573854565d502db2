/*
Package serverid encodes a network endpoint (IPv4 address + port) into a
short, human-shareable token and back.

A Server ID is built from an 8-byte endpoint record — the four address
octets, the port in big-endian order, an XOR checksum of those six bytes, and
a fixed magic byte — screened with the active key and then packed five bits
at a time against a 32-symbol alphabet that avoids the visually ambiguous
characters 0, O, 1, and I. Symbols are grouped in fours with dashes, giving
tokens like XEAV-69TS-L3GB-Q.

Tokens are case-insensitive on input and canonically upper case on output.
Decoding verifies the checksum before reporting an endpoint, so a mistyped
token or one produced under a different key fails rather than yielding a
wrong address. The checksum is a corruption check, not authentication.
*/
package serverid
