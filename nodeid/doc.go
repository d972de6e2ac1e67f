// Package nodeid provides a bidirectional string<->int translation layer
// so callers can drive an mlc search using human-readable node names
// (station codes, warehouse ids, stop names) while the engine itself keeps
// working on the plain integer ids that graph.Graph and label.Label use
// internally.
//
// Errors (sentinel):
//
//	ErrStartNodeNotFound - RunNamed given a name absent from the Translator.
//	ErrTranslatorNotSet  - an int id has no corresponding name registered.
//
// Thread safety: Translator is not safe for concurrent mutation; reads
// (ToID, ToName) are safe once registration has finished.
package nodeid
