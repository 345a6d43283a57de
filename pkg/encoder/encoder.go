/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encoder.go
Description: Byte-level encoder for Synoptic Core. Converts input text to its
byte sequence representation and back under a fixed encoding. Strict by design:
text that is not representable in the configured encoding fails explicitly with
an EncodingError rather than being silently substituted. Also provides byte
pattern extraction and frequency analysis helpers for corpus inspection.
*/

package encoder

import (
	"fmt"
	"unicode/utf8"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// ByteSequence is an ordered, immutable sequence of byte values derived
// from input text. Decoding a sequence with the same encoding reproduces
// the original text exactly (round-trip invariant).
type ByteSequence []byte

// EncodingUTF8 is the only encoding currently supported. The encoding is
// still configurable so callers fail loudly instead of getting mojibake
// when they ask for something else.
const EncodingUTF8 = "utf-8"

// ByteEncoder handles byte-level encoding and decoding of text.
type ByteEncoder struct {
	encoding string
}

// NewByteEncoder creates a byte encoder for the given encoding name.
// Returns an error for encodings the pipeline does not support.
func NewByteEncoder(encoding string) (*ByteEncoder, error) {
	switch encoding {
	case "", EncodingUTF8, "utf8", "UTF-8", "UTF8":
		return &ByteEncoder{encoding: EncodingUTF8}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

// Encoding returns the configured encoding name.
func (e *ByteEncoder) Encoding() string {
	return e.encoding
}

// Encode converts text to its byte sequence representation. Fails with an
// EncodingError if the text contains byte runs that are not valid in the
// configured encoding. No side effects.
func (e *ByteEncoder) Encode(text string) (ByteSequence, error) {
	if off, ok := firstInvalid(text); ok {
		return nil, &interfaces.EncodingError{
			Offset: off,
			Reason: fmt.Sprintf("text is not valid %s", e.encoding),
		}
	}
	seq := make(ByteSequence, len(text))
	copy(seq, text)
	return seq, nil
}

// Decode converts a byte sequence back to text. For every sequence
// produced by Encode, Decode(Encode(text)) == text.
func (e *ByteEncoder) Decode(seq ByteSequence) (string, error) {
	if off, ok := firstInvalid(string(seq)); ok {
		return "", &interfaces.EncodingError{
			Offset: off,
			Reason: fmt.Sprintf("byte sequence is not valid %s", e.encoding),
		}
	}
	return string(seq), nil
}

// BytePatterns extracts all contiguous byte n-grams of the given size.
// Useful for corpus-level structure inspection.
func (e *ByteEncoder) BytePatterns(text string, size int) ([]ByteSequence, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pattern size must be positive, got %d", size)
	}
	seq, err := e.Encode(text)
	if err != nil {
		return nil, err
	}
	if len(seq) < size {
		return nil, nil
	}
	patterns := make([]ByteSequence, 0, len(seq)-size+1)
	for i := 0; i+size <= len(seq); i++ {
		p := make(ByteSequence, size)
		copy(p, seq[i:i+size])
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// ByteFrequency counts occurrences of each byte value in the encoded text.
func (e *ByteEncoder) ByteFrequency(text string) (map[byte]int, error) {
	seq, err := e.Encode(text)
	if err != nil {
		return nil, err
	}
	freq := make(map[byte]int)
	for _, b := range seq {
		freq[b]++
	}
	return freq, nil
}

// firstInvalid returns the byte offset of the first invalid UTF-8 unit in
// s, or ok=false when s is entirely valid.
func firstInvalid(s string) (int, bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i, true
		}
		i += size
	}
	return 0, false
}
