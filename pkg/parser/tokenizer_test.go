/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenizer_test.go
Description: Tests for the tokenizer. Covers total input coverage across all
modes, token classification, monotonic byte offsets, unknown byte handling,
sentence segmentation, custom class overrides, and configuration error
reporting.
*/

package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// TestTokenizeWordMode tests basic word-mode classification
func TestTokenizeWordMode(t *testing.T) {
	tok, err := NewTokenizer("word")
	require.NoError(t, err)

	tokens := tok.Tokenize([]byte("hello world 42!"))
	require.Len(t, tokens, 6)

	assert.Equal(t, interfaces.TokenWord, tokens[0].Kind)
	assert.Equal(t, "hello", tokens[0].Text())
	assert.Equal(t, interfaces.TokenSpace, tokens[1].Kind)
	assert.Equal(t, interfaces.TokenWord, tokens[2].Kind)
	assert.Equal(t, "world", tokens[2].Text())
	assert.Equal(t, interfaces.TokenSpace, tokens[3].Kind)
	assert.Equal(t, interfaces.TokenNumber, tokens[4].Kind)
	assert.Equal(t, "42", tokens[4].Text())
	assert.Equal(t, interfaces.TokenPunct, tokens[5].Kind)
	assert.Equal(t, "!", tokens[5].Text())
}

// TestTokenizeTotalCoverage tests that token spans partition the input
// with no gaps and no overlaps in every mode
func TestTokenizeTotalCoverage(t *testing.T) {
	input := []byte("The rain, in Spain... stays 99% dry!\tOr does it?")

	for _, mode := range []string{"word", "punctuation", "sentence"} {
		tok, err := NewTokenizer(mode)
		require.NoError(t, err)

		tokens := tok.Tokenize(input)
		require.NotEmpty(t, tokens, "mode %s", mode)

		offset := 0
		for _, token := range tokens {
			assert.Equal(t, offset, token.Start, "mode %s", mode)
			assert.Greater(t, token.End, token.Start, "mode %s", mode)
			assert.Equal(t, input[token.Start:token.End], token.Value, "mode %s", mode)
			offset = token.End
		}
		assert.Equal(t, len(input), offset, "mode %s", mode)
	}
}

// TestTokenizeEmptyInput tests that empty input yields an empty stream
func TestTokenizeEmptyInput(t *testing.T) {
	tok, err := NewTokenizer("word")
	require.NoError(t, err)

	assert.Empty(t, tok.Tokenize(nil))
	assert.Empty(t, tok.Tokenize([]byte{}))
}

// TestTokenizeUnknownBytes tests that unrecognized byte runs become
// UNKNOWN tokens instead of failing
func TestTokenizeUnknownBytes(t *testing.T) {
	tok, err := NewTokenizer("word")
	require.NoError(t, err)

	tokens := tok.Tokenize([]byte{'a', 0x00, 0x01, 'b'})
	require.Len(t, tokens, 3)
	assert.Equal(t, interfaces.TokenWord, tokens[0].Kind)
	assert.Equal(t, interfaces.TokenUnknown, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].End-tokens[1].Start)
	assert.Equal(t, interfaces.TokenWord, tokens[2].Kind)
}

// TestTokenizeMultiByteWords tests that multi-byte UTF-8 characters join
// their surrounding word run
func TestTokenizeMultiByteWords(t *testing.T) {
	tok, err := NewTokenizer("word")
	require.NoError(t, err)

	tokens := tok.Tokenize([]byte("caffè latte"))
	require.Len(t, tokens, 3)
	assert.Equal(t, "caffè", tokens[0].Text())
	assert.Equal(t, interfaces.TokenWord, tokens[0].Kind)
	assert.Equal(t, "latte", tokens[2].Text())
}

// TestTokenizePunctuationMode tests that punctuation mode emits each
// punctuation byte as its own token
func TestTokenizePunctuationMode(t *testing.T) {
	tok, err := NewTokenizer("punctuation")
	require.NoError(t, err)

	tokens := tok.Tokenize([]byte("a?!b"))
	require.Len(t, tokens, 4)
	assert.Equal(t, "a", tokens[0].Text())
	assert.Equal(t, "?", tokens[1].Text())
	assert.Equal(t, "!", tokens[2].Text())
	assert.Equal(t, "b", tokens[3].Text())

	// Word mode merges the same punctuation run
	wordTok, err := NewTokenizer("word")
	require.NoError(t, err)
	merged := wordTok.Tokenize([]byte("a?!b"))
	require.Len(t, merged, 3)
	assert.Equal(t, "?!", merged[1].Text())
}

// TestTokenizeSentenceMode tests sentence segmentation with terminator
// runs and unterminated trailing text
func TestTokenizeSentenceMode(t *testing.T) {
	tok, err := NewTokenizer("sentence")
	require.NoError(t, err)

	tokens := tok.Tokenize([]byte("First one. Second?! And trailing"))
	require.Len(t, tokens, 5)

	assert.Equal(t, interfaces.TokenSentence, tokens[0].Kind)
	assert.Equal(t, "First one.", tokens[0].Text())
	assert.Equal(t, interfaces.TokenSpace, tokens[1].Kind)
	assert.Equal(t, interfaces.TokenSentence, tokens[2].Kind)
	assert.Equal(t, "Second?!", tokens[2].Text())
	assert.Equal(t, interfaces.TokenSpace, tokens[3].Kind)
	assert.Equal(t, interfaces.TokenSentence, tokens[4].Kind)
	assert.Equal(t, "And trailing", tokens[4].Text())
}

// TestTokenizerModeValidation tests that unknown modes fail with a
// TokenizationError at construction time
func TestTokenizerModeValidation(t *testing.T) {
	_, err := NewTokenizer("paragraph")
	require.Error(t, err)

	var tokErr *interfaces.TokenizationError
	assert.True(t, errors.As(err, &tokErr))

	// Empty mode falls back to word mode
	tok, err := NewTokenizer("")
	require.NoError(t, err)
	assert.Equal(t, ModeWord, tok.Mode())
}

// TestTokenizerCustomClasses tests byte class overrides and their
// validation
func TestTokenizerCustomClasses(t *testing.T) {
	// A hyphen reclassified as a word byte joins word runs
	tok, err := NewTokenizerWithClasses("word", []ClassDef{
		{Kind: interfaces.TokenWord, Bytes: "-"},
	})
	require.NoError(t, err)

	tokens := tok.Tokenize([]byte("well-known"))
	require.Len(t, tokens, 1)
	assert.Equal(t, "well-known", tokens[0].Text())

	// Empty kind is a configuration error
	_, err = NewTokenizerWithClasses("word", []ClassDef{{Kind: "", Bytes: "-"}})
	var tokErr *interfaces.TokenizationError
	require.True(t, errors.As(err, &tokErr))

	// Empty byte set is a configuration error
	_, err = NewTokenizerWithClasses("word", []ClassDef{{Kind: interfaces.TokenWord, Bytes: ""}})
	require.True(t, errors.As(err, &tokErr))

	// Conflicting assignments of the same byte are a configuration error
	_, err = NewTokenizerWithClasses("word", []ClassDef{
		{Kind: interfaces.TokenWord, Bytes: "-"},
		{Kind: interfaces.TokenPunct, Bytes: "-"},
	})
	require.True(t, errors.As(err, &tokErr))
}

// TestTokenizerKinds tests the kind set exposed for rule validation
func TestTokenizerKinds(t *testing.T) {
	tok, err := NewTokenizer("word")
	require.NoError(t, err)

	kinds := tok.Kinds()
	assert.True(t, kinds[interfaces.TokenWord])
	assert.True(t, kinds[interfaces.TokenNumber])
	assert.True(t, kinds[interfaces.TokenPunct])
	assert.True(t, kinds[interfaces.TokenSpace])
	assert.False(t, kinds[interfaces.TokenSentence])

	sentenceTok, err := NewTokenizer("sentence")
	require.NoError(t, err)
	assert.True(t, sentenceTok.Kinds()[interfaces.TokenSentence])
	assert.False(t, sentenceTok.Kinds()[interfaces.TokenWord])
}

// TestContentTokens tests whitespace filtering ahead of rule matching
func TestContentTokens(t *testing.T) {
	tok, err := NewTokenizer("word")
	require.NoError(t, err)

	tokens := tok.Tokenize([]byte("  hello   world  "))
	content := ContentTokens(tokens)
	require.Len(t, content, 2)
	assert.Equal(t, "hello", content[0].Text())
	assert.Equal(t, "world", content[1].Text())

	// Byte offsets still point into the original input
	assert.Equal(t, 2, content[0].Start)
	assert.Equal(t, 10, content[1].Start)
}
