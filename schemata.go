package schemata

import (
	"fmt"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/soundprediction/schemata/pkg/logger"
	"github.com/soundprediction/schemata/pkg/pairkey"
	"github.com/soundprediction/schemata/pkg/typedef"
)

// Parser turns user-authored entity/edge type declarations and edge
// mapping tables into validated runtime structures. Parsers are
// stateless between calls and safe for concurrent use.
type Parser struct {
	logger *slog.Logger
	repair bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report created types and
// mappings. Logging is informational only and never affects results.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// WithJSONRepair enables a best-effort repair pass (single quotes,
// trailing commas, unquoted keys) when JSON input fails to decode, for
// configuration authored by LLMs. Decoding stays strict by default.
func WithJSONRepair() Option {
	return func(p *Parser) { p.repair = true }
}

// New returns a Parser with the given options applied.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger: logger.NewDefaultLogger(slog.LevelInfo),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseEntityTypes parses a JSON object of entity type definitions:
//
//	{
//	    "EntityName": {
//	        "fields": {"field1": "str", "field2": "int"},
//	        "docstring": "Optional description for LLM guidance"
//	    }
//	}
//
// and returns one RecordType per entry, keyed by entity name.
func (p *Parser) ParseEntityTypes(jsonStr string) (map[string]*typedef.RecordType, error) {
	defs, err := p.decodeDefinitions(jsonStr)
	if err != nil {
		return nil, err
	}
	return p.buildTypes(defs)
}

// ParseEdgeTypes parses a JSON object of edge type definitions. Edge
// types use the same declaration format, validation and building as
// entity types; only the caller intent differs.
func (p *Parser) ParseEdgeTypes(jsonStr string) (map[string]*typedef.RecordType, error) {
	recs, err := p.ParseEntityTypes(jsonStr)
	if err != nil {
		return nil, fmt.Errorf("parse edge types: %w", err)
	}
	return recs, nil
}

// ParseEdgeMappings parses a JSON object mapping entity pair keys to
// allowed edge type names:
//
//	{
//	    "('SourceEntity', 'TargetEntity')": ["EDGE_TYPE1", "EDGE_TYPE2"],
//	    "('Entity1', 'Entity2')": ["RELATES_TO", "DEPENDS_ON"]
//	}
//
// Keys must match the literal "('X', 'Y')" syntax. Distinct spellings
// that decode to the same pair overwrite earlier entries.
func (p *Parser) ParseEdgeMappings(jsonStr string) (map[pairkey.Pair][]string, error) {
	entries, err := p.decodeEdgeEntries(jsonStr)
	if err != nil {
		return nil, err
	}
	return p.buildMappings(entries)
}

// EntityTypes builds entity record types from already-parsed
// definitions, skipping text decoding.
func (p *Parser) EntityTypes(defs *orderedmap.OrderedMap[string, typedef.Definition]) (map[string]*typedef.RecordType, error) {
	return p.buildTypes(defs)
}

// EdgeTypes builds edge record types from already-parsed definitions.
// Identical to EntityTypes apart from caller intent.
func (p *Parser) EdgeTypes(defs *orderedmap.OrderedMap[string, typedef.Definition]) (map[string]*typedef.RecordType, error) {
	recs, err := p.buildTypes(defs)
	if err != nil {
		return nil, fmt.Errorf("build edge types: %w", err)
	}
	return recs, nil
}

// EdgeMappings builds the pair-to-edge-types table from already-parsed
// entries, skipping text decoding.
func (p *Parser) EdgeMappings(entries *orderedmap.OrderedMap[string, []string]) (map[pairkey.Pair][]string, error) {
	return p.buildMappings(entries)
}

func (p *Parser) buildTypes(defs *orderedmap.OrderedMap[string, typedef.Definition]) (map[string]*typedef.RecordType, error) {
	b := typedef.NewBuilder(typedef.WithCreateHook(func(name string, rec *typedef.RecordType) {
		p.logger.Info("created record type", "name", name, "fields", rec.NumFields())
	}))
	return b.Build(defs)
}

func (p *Parser) buildMappings(entries *orderedmap.OrderedMap[string, []string]) (map[pairkey.Pair][]string, error) {
	return pairkey.BuildMapping(entries, pairkey.WithMappingHook(func(pair pairkey.Pair, edgeTypes []string) {
		p.logger.Info("created edge mapping",
			"source", pair.Source, "target", pair.Target, "edge_types", edgeTypes)
	}))
}
