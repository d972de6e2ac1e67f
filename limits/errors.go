package limits

import "errors"

// ErrUninitialized indicates limit pruning was enabled but no category
// has been registered (or a registered category has no admissibility
// pairs), which is a fatal configuration error per the design: the mlc
// engine must not run its hot loop against an uninitialized pruner.
var ErrUninitialized = errors.New("limits: limits not initialized")
