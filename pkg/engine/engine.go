/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main processing engine for Synoptic Core. Wires the byte encoder,
tokenizer, rule engine, and statement builder into the single public process
operation: text in, ordered logic statements out. Components are assembled at
Initialize time and held read-only afterwards, so concurrent invocations
against one engine are safe without locking; only statistics are mutex-guarded.
*/

package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kleascm/synoptic-core/pkg/encoder"
	"github.com/kleascm/synoptic-core/pkg/interfaces"
	"github.com/kleascm/synoptic-core/pkg/logging"
	"github.com/kleascm/synoptic-core/pkg/output"
	"github.com/kleascm/synoptic-core/pkg/parser"
	"github.com/kleascm/synoptic-core/pkg/rules"
)

// EngineStats tracks engine activity across invocations.
type EngineStats struct {
	StartTime    time.Time
	Invocations  int64
	Statements   int64
	Matches      int64
	LastDuration time.Duration
}

// SynopticEngine implements the processing pipeline.
type SynopticEngine struct {
	config     *interfaces.EngineConfig
	logger     *logging.Logger
	ownsLogger bool

	// Core components
	encoder    *encoder.ByteEncoder
	tokenizer  *parser.Tokenizer
	ruleEngine *rules.RuleEngine
	compiled   []interfaces.Rule
	builder    *output.Builder

	// Dependency injection before Initialize
	ruleSpecs []interfaces.RuleSpec

	// State management
	initialized bool
	stats       EngineStats
	mu          sync.RWMutex
}

// NewEngine creates a new processing engine instance.
func NewEngine() *SynopticEngine {
	return &SynopticEngine{
		stats: EngineStats{StartTime: time.Now()},
	}
}

// SetLogger injects an already-configured logger before Initialize,
// overriding the logger the engine would otherwise build from its
// configuration. The caller retains ownership and closes it.
func (e *SynopticEngine) SetLogger(l *logging.Logger) {
	e.logger = l
}

// SetRuleSpecs injects an already-parsed rule set before Initialize,
// overriding both the configured rules path and the built-in rules.
func (e *SynopticEngine) SetRuleSpecs(specs []interfaces.RuleSpec) {
	e.ruleSpecs = make([]interfaces.RuleSpec, len(specs))
	copy(e.ruleSpecs, specs)
}

// SetTokenizer injects a custom tokenizer before Initialize, overriding
// the configured tokenizer mode.
func (e *SynopticEngine) SetTokenizer(t *parser.Tokenizer) {
	e.tokenizer = t
}

// Initialize sets up the engine with the given configuration. All
// rule-set problems surface here, before any processing occurs
// (fail-fast, never partial).
func (e *SynopticEngine) Initialize(config *interfaces.EngineConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if config == nil {
		return fmt.Errorf("engine configuration is required")
	}
	e.config = config

	if e.logger == nil {
		lg, err := logging.NewLogger(loggerConfig(config))
		if err != nil {
			return fmt.Errorf("failed to setup logging: %w", err)
		}
		e.logger = lg
		e.ownsLogger = true
	}

	enc, err := encoder.NewByteEncoder(config.Encoding)
	if err != nil {
		return fmt.Errorf("failed to create byte encoder: %w", err)
	}
	e.encoder = enc

	if e.tokenizer == nil {
		tok, err := parser.NewTokenizer(config.TokenizerMode)
		if err != nil {
			return err
		}
		e.tokenizer = tok
	}

	specs, source, err := e.resolveRuleSpecs()
	if err != nil {
		return err
	}

	compiled, err := rules.Compile(specs, e.tokenizer.Kinds())
	if err != nil {
		return err
	}
	e.compiled = compiled
	e.ruleEngine = rules.NewRuleEngine(compiled)

	builder, err := output.NewBuilder(interfaces.FormatMode(config.OutputFormat))
	if err != nil {
		return err
	}
	e.builder = builder

	e.initialized = true
	e.logger.LogRuleLoad(source, len(compiled), map[string]interface{}{
		"tokenizer": e.tokenizer.Mode(),
		"encoding":  e.encoder.Encoding(),
	})
	return nil
}

// resolveRuleSpecs picks the rule set: injected specs, then the configured
// rules path, then the built-ins.
func (e *SynopticEngine) resolveRuleSpecs() ([]interfaces.RuleSpec, string, error) {
	if e.ruleSpecs != nil {
		return e.ruleSpecs, "injected", nil
	}
	if e.config.RulesPath != "" {
		specs, err := rules.LoadFile(e.config.RulesPath)
		if err != nil {
			return nil, "", err
		}
		return specs, e.config.RulesPath, nil
	}
	if e.config.UseBuiltinRules {
		return rules.BuiltinRuleSpecs(), "builtin", nil
	}
	return nil, "", fmt.Errorf("no rule set available: built-in rules disabled and no rules path configured")
}

// Process runs the full pipeline on one input text and returns the
// complete ordered result. Either a full ProcessResult is returned or an
// error is surfaced; there is no partial-result mode. Safe for concurrent
// callers once the engine is initialized.
func (e *SynopticEngine) Process(text string) (*output.ProcessResult, error) {
	e.mu.RLock()
	if !e.initialized {
		e.mu.RUnlock()
		return nil, fmt.Errorf("engine not initialized - call Initialize() before Process()")
	}
	enc := e.encoder
	tok := e.tokenizer
	ruleEngine := e.ruleEngine
	compiled := e.compiled
	builder := e.builder
	logger := e.logger
	maxBytes := e.config.MaxInputBytes
	e.mu.RUnlock()

	invocationID := uuid.New().String()
	start := time.Now()

	if maxBytes > 0 && len(text) > maxBytes {
		return nil, fmt.Errorf("input exceeds maximum length of %d bytes", maxBytes)
	}

	seq, err := enc.Encode(text)
	if err != nil {
		return nil, err
	}

	tokens := tok.Tokenize(seq)
	content := parser.ContentTokens(tokens)
	matches := ruleEngine.Match(content)
	for _, m := range matches {
		logger.LogMatch(m.RuleID, m.TokenStart, m.TokenEnd, nil)
	}

	result, err := builder.Build(matches, compiled)
	if err != nil {
		return nil, err
	}
	result.Stats.InputBytes = len(seq)
	result.Stats.TokenCount = len(tokens)
	result.Stats.Duration = time.Since(start)

	e.recordInvocation(result)
	logger.LogProcess(invocationID, result.Stats.InputBytes, result.Stats.StatementCount, result.Stats.Duration, map[string]interface{}{
		"tokens":  result.Stats.TokenCount,
		"matches": result.Stats.MatchCount,
	})

	return result, nil
}

// Rules returns the engine's compiled rule set in evaluation order.
func (e *SynopticEngine) Rules() []interfaces.Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.ruleEngine == nil {
		return nil
	}
	return e.ruleEngine.Rules()
}

// Stats returns a snapshot of engine statistics.
func (e *SynopticEngine) Stats() EngineStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

// recordInvocation updates engine statistics after one processing call.
func (e *SynopticEngine) recordInvocation(result *output.ProcessResult) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats.Invocations++
	e.stats.Matches += int64(result.Stats.MatchCount)
	e.stats.Statements += int64(result.Stats.StatementCount)
	e.stats.LastDuration = result.Stats.Duration
}

// Close releases the logger when the engine built it itself. Injected
// loggers stay owned by their caller. The engine must not be used after
// Close.
func (e *SynopticEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.logger == nil || !e.ownsLogger {
		return nil
	}
	err := e.logger.Close()
	e.logger = nil
	e.initialized = false
	return err
}

// loggerConfig derives a logger configuration from the engine
// configuration. An empty LogDir means console-only output.
func loggerConfig(cfg *interfaces.EngineConfig) *logging.LoggerConfig {
	level := logging.LogLevel(cfg.LogLevel)
	if cfg.LogLevel == "" {
		level = logging.LogLevelInfo
	}
	format := logging.LogFormatCustom
	if cfg.JSONLogs {
		format = logging.LogFormatJSON
	}
	return &logging.LoggerConfig{
		Level:     level,
		Format:    format,
		OutputDir: cfg.LogDir,
		MaxFiles:  10,
		MaxSize:   100 * 1024 * 1024,
		Timestamp: true,
		Colors:    !cfg.JSONLogs,
	}
}

// Process is the package-level convenience entry point: one-shot
// processing of text with an optional rule set (nil means built-ins) and
// an output format. Builds a default-configured engine per call.
func Process(text string, specs []interfaces.RuleSpec, format interfaces.FormatMode) (*output.ProcessResult, error) {
	eng := NewEngine()
	if specs != nil {
		eng.SetRuleSpecs(specs)
	}
	cfg := &interfaces.EngineConfig{
		Encoding:        encoder.EncodingUTF8,
		TokenizerMode:   string(parser.ModeWord),
		OutputFormat:    string(format),
		UseBuiltinRules: true,
		LogLevel:        "error",
	}
	if err := eng.Initialize(cfg); err != nil {
		return nil, err
	}
	defer eng.Close()
	return eng.Process(text)
}
