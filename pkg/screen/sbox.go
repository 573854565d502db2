package screen

// sbox is the fixed substitution table applied in the second stage of the
// forward transform. It is a bijection over all 256 byte values; invSbox is
// its exact inverse. Both tables are shared constants of the protocol: peers
// that need to interoperate must carry identical values.
var sbox = [256]byte{
	0xD2, 0xA8, 0x4A, 0x7D, 0x32, 0x1E, 0x73, 0x43, 0x18, 0x0A, 0xE9, 0x52, 0x9A, 0x09, 0x54, 0xEE,
	0xA1, 0xA7, 0x69, 0x21, 0xE4, 0x16, 0xF5, 0x8B, 0x03, 0x00, 0x96, 0x77, 0x53, 0x42, 0x74, 0x1A,
	0x6F, 0x5B, 0xDB, 0x8E, 0xE5, 0x29, 0x3C, 0x24, 0x55, 0xB0, 0xAA, 0xDA, 0xD0, 0x63, 0x93, 0x88,
	0xFB, 0x8A, 0x7A, 0x47, 0xC9, 0x31, 0x51, 0xB6, 0xAE, 0x7C, 0xE2, 0x46, 0xF7, 0x3F, 0x5C, 0xE8,
	0xC7, 0x4F, 0x2B, 0x62, 0x12, 0x71, 0x2D, 0x64, 0x0C, 0x06, 0x70, 0xDC, 0x56, 0x9C, 0x87, 0xB5,
	0x3E, 0xD9, 0xD8, 0xA2, 0xD4, 0x2F, 0x3D, 0x94, 0x17, 0x8C, 0x80, 0x30, 0x2E, 0x45, 0xEF, 0x85,
	0x44, 0xB4, 0xE6, 0xFE, 0xB7, 0x4C, 0xD3, 0xA5, 0xE7, 0x01, 0x34, 0x83, 0x66, 0x0F, 0x14, 0x5F,
	0xEB, 0xBC, 0x2C, 0xA4, 0x2A, 0x15, 0xD1, 0xCD, 0xF0, 0xFA, 0xB9, 0x79, 0xF9, 0x6E, 0x1D, 0xB1,
	0x1F, 0xBB, 0x8D, 0xCF, 0x99, 0xC2, 0x60, 0x50, 0xED, 0x36, 0xBA, 0x48, 0xB8, 0x58, 0x25, 0x10,
	0x65, 0xF2, 0x6A, 0xC6, 0xCB, 0xE0, 0x40, 0xCA, 0x72, 0x4E, 0x98, 0x9E, 0xC3, 0xD7, 0x89, 0xE3,
	0xD6, 0x7B, 0xDE, 0x76, 0xAD, 0xF4, 0x86, 0x26, 0xCE, 0x9F, 0xC5, 0x5E, 0xC4, 0x7E, 0xF6, 0x59,
	0xD5, 0xC8, 0xDF, 0x6B, 0x20, 0xC1, 0x6C, 0xA6, 0x81, 0xA9, 0x95, 0x49, 0xAF, 0x11, 0xB2, 0x19,
	0x07, 0x23, 0x08, 0x33, 0xDD, 0x04, 0x78, 0x75, 0x1C, 0xE1, 0x3A, 0xA0, 0x38, 0x91, 0x22, 0x68,
	0x6D, 0x39, 0x61, 0xBD, 0x0E, 0x4D, 0xBE, 0x7F, 0x3B, 0x13, 0x9B, 0x02, 0x27, 0x5D, 0x0B, 0xAB,
	0x90, 0xA3, 0xC0, 0xBF, 0xAC, 0xCC, 0xF8, 0x97, 0x0D, 0x8F, 0x57, 0x28, 0x84, 0xB3, 0x41, 0xEA,
	0xFC, 0x1B, 0x82, 0xF3, 0x05, 0x4B, 0x35, 0x67, 0x92, 0xFF, 0x5A, 0xEC, 0x9D, 0xF1, 0x37, 0xFD,
}

// invSbox satisfies invSbox[sbox[b]] == b for every byte value b.
var invSbox = [256]byte{
	0x19, 0x69, 0xDB, 0x18, 0xC5, 0xF4, 0x49, 0xC0, 0xC2, 0x0D, 0x09, 0xDE, 0x48, 0xE8, 0xD4, 0x6D,
	0x8F, 0xBD, 0x44, 0xD9, 0x6E, 0x75, 0x15, 0x58, 0x08, 0xBF, 0x1F, 0xF1, 0xC8, 0x7E, 0x05, 0x80,
	0xB4, 0x13, 0xCE, 0xC1, 0x27, 0x8E, 0xA7, 0xDC, 0xEB, 0x25, 0x74, 0x42, 0x72, 0x46, 0x5C, 0x55,
	0x5B, 0x35, 0x04, 0xC3, 0x6A, 0xF6, 0x89, 0xFE, 0xCC, 0xD1, 0xCA, 0xD8, 0x26, 0x56, 0x50, 0x3D,
	0x96, 0xEE, 0x1D, 0x07, 0x60, 0x5D, 0x3B, 0x33, 0x8B, 0xBB, 0x02, 0xF5, 0x65, 0xD5, 0x99, 0x41,
	0x87, 0x36, 0x0B, 0x1C, 0x0E, 0x28, 0x4C, 0xEA, 0x8D, 0xAF, 0xFA, 0x21, 0x3E, 0xDD, 0xAB, 0x6F,
	0x86, 0xD2, 0x43, 0x2D, 0x47, 0x90, 0x6C, 0xF7, 0xCF, 0x12, 0x92, 0xB3, 0xB6, 0xD0, 0x7D, 0x20,
	0x4A, 0x45, 0x98, 0x06, 0x1E, 0xC7, 0xA3, 0x1B, 0xC6, 0x7B, 0x32, 0xA1, 0x39, 0x03, 0xAD, 0xD7,
	0x5A, 0xB8, 0xF2, 0x6B, 0xEC, 0x5F, 0xA6, 0x4E, 0x2F, 0x9E, 0x31, 0x17, 0x59, 0x82, 0x23, 0xE9,
	0xE0, 0xCD, 0xF8, 0x2E, 0x57, 0xBA, 0x1A, 0xE7, 0x9A, 0x84, 0x0C, 0xDA, 0x4D, 0xFC, 0x9B, 0xA9,
	0xCB, 0x10, 0x53, 0xE1, 0x73, 0x67, 0xB7, 0x11, 0x01, 0xB9, 0x2A, 0xDF, 0xE4, 0xA4, 0x38, 0xBC,
	0x29, 0x7F, 0xBE, 0xED, 0x61, 0x4F, 0x37, 0x64, 0x8C, 0x7A, 0x8A, 0x81, 0x71, 0xD3, 0xD6, 0xE3,
	0xE2, 0xB5, 0x85, 0x9C, 0xAC, 0xAA, 0x93, 0x40, 0xB1, 0x34, 0x97, 0x94, 0xE5, 0x77, 0xA8, 0x83,
	0x2C, 0x76, 0x00, 0x66, 0x54, 0xB0, 0xA0, 0x9D, 0x52, 0x51, 0x2B, 0x22, 0x4B, 0xC4, 0xA2, 0xB2,
	0x95, 0xC9, 0x3A, 0x9F, 0x14, 0x24, 0x62, 0x68, 0x3F, 0x0A, 0xEF, 0x70, 0xFB, 0x88, 0x0F, 0x5E,
	0x78, 0xFD, 0x91, 0xF3, 0xA5, 0x16, 0xAE, 0x3C, 0xE6, 0x7C, 0x79, 0x30, 0xF0, 0xFF, 0x63, 0xF9,
}
