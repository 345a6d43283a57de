/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline_demo.go
Description: Beautiful demo showcasing the Synoptic Core pipeline as a library:
encoding, tokenization modes, built-in and custom rule sets, output formats,
and Prolog export. Demonstrates the full processing flow with real examples.
*/

package main

import (
	"fmt"
	"log"

	"github.com/kleascm/synoptic-core/pkg/encoder"
	"github.com/kleascm/synoptic-core/pkg/engine"
	"github.com/kleascm/synoptic-core/pkg/interfaces"
	"github.com/kleascm/synoptic-core/pkg/output"
	"github.com/kleascm/synoptic-core/pkg/parser"
)

func main() {
	fmt.Println("🌸 Synoptic Core - Pipeline Demo 🌸")
	fmt.Println("====================================")
	fmt.Println()

	// Demo 1: Tokenization modes
	demoTokenization()

	// Demo 2: Built-in rules on natural text
	demoBuiltinRules()

	// Demo 3: Custom rule set with positional captures
	demoCustomRules()

	// Demo 4: Verbose format and Prolog export
	demoOutputFormats()

	fmt.Println("✨ Demo complete!")
}

// demoTokenization shows the three tokenizer modes on the same input.
func demoTokenization() {
	fmt.Println("🔤 Demo 1: Tokenization Modes")
	fmt.Println("-----------------------------")

	text := "Water boils at 100 degrees. Ice melts!"
	enc, err := encoder.NewByteEncoder(encoder.EncodingUTF8)
	if err != nil {
		log.Fatalf("encoder: %v", err)
	}
	seq, err := enc.Encode(text)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	for _, mode := range []string{"word", "punctuation", "sentence"} {
		tok, err := parser.NewTokenizer(mode)
		if err != nil {
			log.Fatalf("tokenizer: %v", err)
		}
		tokens := parser.ContentTokens(tok.Tokenize(seq))
		fmt.Printf("  %-12s %d content tokens: ", mode, len(tokens))
		for i, t := range tokens {
			if i > 0 {
				fmt.Print(" | ")
			}
			fmt.Printf("%s", t.Text())
			if i >= 5 {
				fmt.Print(" ...")
				break
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

// demoBuiltinRules processes natural text with the built-in rule set.
func demoBuiltinRules() {
	fmt.Println("📚 Demo 2: Built-in Rules")
	fmt.Println("-------------------------")

	result, err := engine.Process("water is a liquid", nil, interfaces.FormatDefault)
	if err != nil {
		log.Fatalf("process: %v", err)
	}
	fmt.Printf("  Input:  water is a liquid\n")
	fmt.Printf("  Output: %s\n", result.Render())
	fmt.Println()
}

// demoCustomRules shows a custom rule set with positional template refs.
func demoCustomRules() {
	fmt.Println("🔧 Demo 3: Custom Rules")
	fmt.Println("-----------------------")

	specs := []interfaces.RuleSpec{
		{
			ID: "greeting",
			Pattern: []interfaces.PatternElement{
				{Kind: "WORD"},
				{Kind: "WORD"},
			},
			Priority: 10,
			Action:   interfaces.ActionSpec{Template: "greet({0},{1})"},
		},
	}

	result, err := engine.Process("hello world", specs, interfaces.FormatDefault)
	if err != nil {
		log.Fatalf("process: %v", err)
	}
	fmt.Printf("  Input:  hello world\n")
	fmt.Printf("  Output: %s\n", result.Render())
	fmt.Println()
}

// demoOutputFormats renders the same result verbosely and as Prolog facts.
func demoOutputFormats() {
	fmt.Println("📤 Demo 4: Output Formats")
	fmt.Println("-------------------------")

	result, err := engine.Process("fire is an element", nil, interfaces.FormatVerbose)
	if err != nil {
		log.Fatalf("process: %v", err)
	}
	fmt.Printf("  Verbose: %s\n", result.Render())
	fmt.Printf("  Prolog:  %s\n", output.ExportProlog(result))
	fmt.Println()
}
