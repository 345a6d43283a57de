/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenize.go
Description: Tokenize command implementation for Synoptic Core. Runs only the
encoding and tokenization stages and prints the classified token stream with
byte offsets for pipeline inspection.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/synoptic-core/pkg/encoder"
	"github.com/kleascm/synoptic-core/pkg/parser"
)

// RunTokenize tokenizes input text and prints the token stream
func RunTokenize(cmd *cobra.Command, args []string) error {
	// Bind this command's flags; the keys are shared with process
	viper.BindPFlag("input_text", cmd.Flags().Lookup("text"))
	viper.BindPFlag("input_file", cmd.Flags().Lookup("input"))
	viper.BindPFlag("tokenizer_mode", cmd.Flags().Lookup("tokenizer"))
	viper.BindPFlag("skip_spaces", cmd.Flags().Lookup("skip-spaces"))

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	// Resolve input text
	text, err := resolveInput()
	if err != nil {
		return err
	}

	// Encode input
	enc, err := encoder.NewByteEncoder(encoder.EncodingUTF8)
	if err != nil {
		return err
	}
	seq, err := enc.Encode(text)
	if err != nil {
		return err
	}

	// Tokenize
	tok, err := parser.NewTokenizer(viper.GetString("tokenizer_mode"))
	if err != nil {
		return err
	}
	tokens := tok.Tokenize(seq)
	if viper.GetBool("skip_spaces") {
		tokens = parser.ContentTokens(tokens)
	}

	fmt.Printf("🔤 Token Stream (%d tokens, %d bytes, mode=%s)\n", len(tokens), len(seq), tok.Mode())
	fmt.Println("==================================================")
	for i, t := range tokens {
		fmt.Printf("%4d  %-8s  [%d:%d]  %q\n", i, t.Kind, t.Start, t.End, t.Text())
	}

	return nil
}
