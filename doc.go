// Package schemata builds runtime schema tables for knowledge graphs
// from user-authored configuration.
//
// Given a textual (JSON or YAML) or pre-parsed description of entity
// and edge record types, and of the edge types allowed between entity
// pairs, schemata validates the declarations and produces in-memory
// type definitions and mapping tables for a graph collaborator to
// consume. There is no storage, networking or schema versioning here;
// this is configuration ingestion only.
//
// # Parsing type definitions
//
// Entity and edge types share one declaration format and one build
// routine:
//
//	parser := schemata.New()
//	entityTypes, err := parser.ParseEntityTypes(`{
//	    "Person": {
//	        "fields": {"name": "str", "age": "int"},
//	        "docstring": "A person mentioned in the content"
//	    }
//	}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(entityTypes["Person"]) // Person(name: str, age: int)
//
// Field types come from a fixed vocabulary (typedef.SupportedTypes);
// unknown names are rejected with an error that enumerates the full
// vocabulary so a caller, or the LLM that authored the config, can
// self-correct.
//
// # Parsing edge mappings
//
// Edge mappings associate an ordered entity pair with the edge types
// allowed between them. Keys use the literal "('Source', 'Target')"
// format:
//
//	mappings, err := parser.ParseEdgeMappings(`{
//	    "('Person', 'Company')": ["WORKS_AT", "FOUNDED"]
//	}`)
//
// The decoded table is keyed by pairkey.Pair. When two key spellings
// decode to the same pair, the later entry wins.
//
// # Pre-parsed input
//
// Callers holding already-decoded configuration skip the text
// front-end via EntityTypes, EdgeTypes and EdgeMappings, which take
// insertion-ordered maps directly.
package schemata
