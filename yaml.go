package schemata

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/soundprediction/schemata/pkg/pairkey"
	"github.com/soundprediction/schemata/pkg/typedef"
)

// ParseEntityTypesYAML parses a YAML mapping of entity type
// definitions. Semantics match ParseEntityTypes; only the
// serialization differs.
func (p *Parser) ParseEntityTypesYAML(yamlStr string) (map[string]*typedef.RecordType, error) {
	defs, err := decodeDefinitionsYAML(yamlStr)
	if err != nil {
		return nil, err
	}
	return p.buildTypes(defs)
}

// ParseEdgeTypesYAML parses a YAML mapping of edge type definitions.
func (p *Parser) ParseEdgeTypesYAML(yamlStr string) (map[string]*typedef.RecordType, error) {
	recs, err := p.ParseEntityTypesYAML(yamlStr)
	if err != nil {
		return nil, fmt.Errorf("parse edge types: %w", err)
	}
	return recs, nil
}

// ParseEdgeMappingsYAML parses a YAML mapping of entity pair keys to
// allowed edge type names. Semantics match ParseEdgeMappings.
func (p *Parser) ParseEdgeMappingsYAML(yamlStr string) (map[pairkey.Pair][]string, error) {
	entries, err := decodeEdgeEntriesYAML(yamlStr)
	if err != nil {
		return nil, err
	}
	return p.buildMappings(entries)
}

// decodeYAMLMapping decodes yamlStr and returns the root mapping node.
// Walking nodes rather than unmarshalling into a map keeps the document
// order of entries.
func decodeYAMLMapping(yamlStr string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(yamlStr), &doc); err != nil {
		return nil, &MalformedInputError{Format: "yaml", Err: err}
	}
	if len(doc.Content) == 0 {
		return nil, &MalformedInputError{Format: "yaml", Err: errors.New("empty document")}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &MalformedInputError{
			Format: "yaml",
			Err:    fmt.Errorf("top-level value must be a mapping, got %s", yamlShape(root)),
		}
	}
	return root, nil
}

func decodeDefinitionsYAML(yamlStr string) (*orderedmap.OrderedMap[string, typedef.Definition], error) {
	root, err := decodeYAMLMapping(yamlStr)
	if err != nil {
		return nil, err
	}
	defs := orderedmap.New[string, typedef.Definition]()
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, node := root.Content[i].Value, root.Content[i+1]
		if node.Kind != yaml.MappingNode {
			return nil, &typedef.StructureError{
				TypeName: name,
				Reason:   fmt.Sprintf("definition must be a mapping, got %s", yamlShape(node)),
			}
		}
		def, err := definitionFromYAML(name, node)
		if err != nil {
			return nil, err
		}
		defs.Set(name, def)
	}
	return defs, nil
}

func definitionFromYAML(typeName string, node *yaml.Node) (typedef.Definition, error) {
	var def typedef.Definition
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "fields":
			if value.Kind != yaml.MappingNode {
				return def, &typedef.StructureError{
					TypeName: typeName,
					Reason:   fmt.Sprintf(`"fields" must be a mapping, got %s`, yamlShape(value)),
				}
			}
			fields := orderedmap.New[string, string]()
			for j := 0; j+1 < len(value.Content); j += 2 {
				fieldName, fieldType := value.Content[j].Value, value.Content[j+1]
				if fieldType.Kind != yaml.ScalarNode {
					return def, &typedef.StructureError{
						TypeName: typeName,
						Reason:   fmt.Sprintf("field %q type must be a scalar, got %s", fieldName, yamlShape(fieldType)),
					}
				}
				fields.Set(fieldName, fieldType.Value)
			}
			def.Fields = fields
		case "docstring":
			if value.Kind == yaml.ScalarNode {
				def.Docstring = value.Value
			}
		}
	}
	return def, nil
}

func decodeEdgeEntriesYAML(yamlStr string) (*orderedmap.OrderedMap[string, []string], error) {
	root, err := decodeYAMLMapping(yamlStr)
	if err != nil {
		return nil, err
	}
	entries := orderedmap.New[string, []string]()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i].Value, root.Content[i+1]
		if node.Kind != yaml.SequenceNode {
			return nil, &pairkey.ValueShapeError{Key: key, Got: yamlShape(node)}
		}
		edgeTypes := make([]string, 0, len(node.Content))
		for _, elem := range node.Content {
			if elem.Kind != yaml.ScalarNode {
				return nil, &pairkey.ValueShapeError{Key: key, Got: "sequence with non-scalar elements"}
			}
			edgeTypes = append(edgeTypes, elem.Value)
		}
		entries.Set(key, edgeTypes)
	}
	return entries, nil
}

func yamlShape(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "null"
		}
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
