package schemata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/soundprediction/schemata/pkg/pairkey"
	"github.com/soundprediction/schemata/pkg/typedef"
)

// decodeObject decodes jsonStr into an insertion-ordered map of raw
// values. The top level must be a JSON object. With repair enabled, a
// failed decode gets one repair pass before giving up.
func (p *Parser) decodeObject(jsonStr string) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	raw := orderedmap.New[string, json.RawMessage]()
	err := json.Unmarshal([]byte(jsonStr), raw)
	if err == nil {
		return raw, nil
	}
	if p.repair {
		if repaired, rerr := jsonrepair.JSONRepair(jsonStr); rerr == nil {
			raw = orderedmap.New[string, json.RawMessage]()
			if json.Unmarshal([]byte(repaired), raw) == nil {
				return raw, nil
			}
		}
	}
	return nil, &MalformedInputError{Format: "json", Err: err}
}

func (p *Parser) decodeDefinitions(jsonStr string) (*orderedmap.OrderedMap[string, typedef.Definition], error) {
	raw, err := p.decodeObject(jsonStr)
	if err != nil {
		return nil, err
	}
	defs := orderedmap.New[string, typedef.Definition]()
	for entry := raw.Oldest(); entry != nil; entry = entry.Next() {
		if shape := jsonShape(entry.Value); shape != "object" {
			return nil, &typedef.StructureError{
				TypeName: entry.Key,
				Reason:   fmt.Sprintf("definition must be an object, got %s", shape),
			}
		}
		var def typedef.Definition
		if err := json.Unmarshal(entry.Value, &def); err != nil {
			return nil, &typedef.StructureError{
				TypeName: entry.Key,
				Reason:   fmt.Sprintf("bad definition: %v", err),
			}
		}
		defs.Set(entry.Key, def)
	}
	return defs, nil
}

func (p *Parser) decodeEdgeEntries(jsonStr string) (*orderedmap.OrderedMap[string, []string], error) {
	raw, err := p.decodeObject(jsonStr)
	if err != nil {
		return nil, err
	}
	entries := orderedmap.New[string, []string]()
	for entry := raw.Oldest(); entry != nil; entry = entry.Next() {
		if shape := jsonShape(entry.Value); shape != "array" {
			return nil, &pairkey.ValueShapeError{Key: entry.Key, Got: shape}
		}
		var edgeTypes []string
		if err := json.Unmarshal(entry.Value, &edgeTypes); err != nil {
			return nil, &pairkey.ValueShapeError{Key: entry.Key, Got: "array with non-string elements"}
		}
		if edgeTypes == nil {
			edgeTypes = []string{}
		}
		entries.Set(entry.Key, edgeTypes)
	}
	return entries, nil
}

// jsonShape names the JSON value kind of raw for error messages.
func jsonShape(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty value"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
