package enc

import "fmt"

// InvalidSymbolError is returned by Decode when the input contains a byte which is neither
// a part of the alphabet nor the padding character. Symbol holds the raw offending byte.
type InvalidSymbolError struct {
	Symbol byte
}

func (e InvalidSymbolError) Error() string {
	if e.Symbol >= 0x20 && e.Symbol < 0x7F {
		return fmt.Sprintf("invalid base64 symbol: 0x%02x (%q)", e.Symbol, rune(e.Symbol))
	}
	return fmt.Sprintf("invalid base64 symbol: 0x%02x", e.Symbol)
}

// InvalidPaddingError is returned by Decode when the whole input has been consumed but the
// bits left over do not make up a full byte. LeftoverBits may be negative if the text
// carries more padding than data.
type InvalidPaddingError struct {
	LeftoverBits int
}

func (e InvalidPaddingError) Error() string {
	return fmt.Sprintf("invalid base64 padding: %d bits left over", e.LeftoverBits)
}
