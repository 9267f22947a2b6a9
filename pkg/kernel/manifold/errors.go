package manifold

import "errors"

// ErrUnavailable is returned by New when the package was built without the
// manifold tag.
var ErrUnavailable = errors.New("manifold kernel not available: build with -tags=manifold")
