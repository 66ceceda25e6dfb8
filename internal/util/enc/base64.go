package enc

import (
	"github.com/pkg/errors"
	"sync"
)

const (
	// cb64 is the standard Base64 alphabet (RFC 4648, section 4)
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Padding fills the last quantum so the encoded length is a multiple of four
	Padding = '='

	// invalidSymbol marks bytes which are not part of the alphabet in the reverse lookup table
	invalidSymbol = 0xFF
)

var cb64Invert [256]byte
var cb64Initialized sync.Once

func setupCb64Invert() {
	cb64Initialized.Do(func() {
		for i := range cb64Invert {
			cb64Invert[i] = invalidSymbol
		}
		for i, v := range []byte(cb64) {
			cb64Invert[v] = byte(i)
		}
	})
}

// EncodedLen returns the length of the encoded (and padded) text for n bytes of input.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes n characters of encoded text may decode into.
func DecodedLen(n int) int {
	return n/4*3 + 3
}

// collectSixBits combines two bytes into a 16 bit window and returns the six bits found at the
// given bit offset, counting from the most significant bit of the first byte.
//
// For bytes X and Y and offset 4:
//
//	window    0bXXXXXXXXYYYYYYYY
//	mask      0b0000111111000000
//	result    0b00XXYYYY
func collectSixBits(hi, lo byte, offset uint) byte {
	window := uint16(hi)<<8 | uint16(lo)
	return byte((window & (0xFC00 >> offset)) >> (10 - offset))
}

// Encode returns the Base64 representation of data. The input is read as a bitstream, most significant bit
// first; every six bits are mapped to one character of the alphabet and the output is padded to a multiple
// of four characters. Empty input yields an empty string.
func Encode(data []byte) string {
	dst := make([]byte, 0, EncodedLen(len(data)))

	for bits := 0; bits/8 < len(data); bits += 6 {
		i := bits / 8
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}
		dst = append(dst, cb64[collectSixBits(data[i], next, uint(bits%8))])
	}

	for p := (3 - len(data)%3) % 3; p > 0; p-- {
		dst = append(dst, Padding)
	}

	return string(dst)
}

// Decode returns the bytes represented by the Base64 text. It fails with InvalidSymbolError as soon as a
// byte outside of the alphabet is found and with InvalidPaddingError when the text does not end on a byte
// boundary.
//
// Each padding character simply takes two bits from the pending count. Its position is not checked:
// text is accepted as long as the bit count comes out even at the end.
func Decode(text string) ([]byte, error) {
	setupCb64Invert()

	dst := make([]byte, 0, DecodedLen(len(text)))

	var buf uint16
	held := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if v := cb64Invert[c]; v != invalidSymbol {
			buf |= uint16(v) << uint(10-held)
			held += 6
		} else if c == Padding {
			held -= 2
		} else {
			return nil, InvalidSymbolError{Symbol: c}
		}

		for held >= 8 {
			dst = append(dst, byte(buf>>8))
			buf <<= 8
			held -= 8
		}
	}

	if held != 0 {
		return nil, InvalidPaddingError{LeftoverBits: held}
	}

	return dst, nil
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return Encode(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	res, err := Decode(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return 4
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		"QUJDREVGR0hJSktMTU5PUFFSU1RVVldYWVphYmNkZWZnaGlqa2xtbm9wcXJzdHV2d3h5ejAxMjM0NTY3ODkrLw==",
		"TG9uZyBsaXZlIGVhc3RlciBlZ2dzIDop",
		"SGFwcHkgSGFja3RvYmVyZmVzdCE=",
		"PVRoZSBBbGdvcml0aG1zPQ==",
		"+/+/",
	}
}
