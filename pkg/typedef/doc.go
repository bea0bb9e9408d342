// Package typedef builds runtime record-type definitions for knowledge
// graph entities and edges from user-authored declarations.
//
// A declaration maps a type name to a set of field declarations, where
// each field names one entry of a fixed type vocabulary (see
// SupportedTypes). Building validates the declaration and produces a
// RecordType: an ordered list of required fields plus an optional
// docstring carried through for downstream documentation and LLM prompt
// guidance.
//
// Entity types and edge types are structurally identical; both are built
// by the same routine. The distinction is caller intent only.
package typedef
