package nodeid

import "errors"

// ErrStartNodeNotFound is returned by RunNamed when the given start name
// has no registered int id.
var ErrStartNodeNotFound = errors.New("nodeid: start node name not found")

// ErrTranslatorNotSet is returned by ToName when the given int id has no
// registered name.
var ErrTranslatorNotSet = errors.New("nodeid: node id has no registered name")

// ErrDuplicateName is returned by Register when name is already bound to a
// different id than the one given.
var ErrDuplicateName = errors.New("nodeid: name already registered to a different id")
