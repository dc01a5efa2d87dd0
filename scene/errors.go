package scene

import "errors"

// Mutation failures. Every failed operation leaves the input scene
// unchanged; callers receive the failure as an explicit error value and
// never a partially applied scene.
var (
	// ErrDuplicateID reports an AddEntity with an id already in the scene.
	ErrDuplicateID = errors.New("duplicate entity id")

	// ErrUnknownLayer reports a layer operation naming a layer that does
	// not exist. Entity layer references are not subject to this error;
	// they fall back to the default layer instead.
	ErrUnknownLayer = errors.New("unknown layer")

	// ErrLayerExists reports an AddLayer or RenameLayer colliding with an
	// existing layer name.
	ErrLayerExists = errors.New("layer already exists")

	// ErrDefaultLayer reports an attempt to delete or rename the default
	// layer, which must always exist.
	ErrDefaultLayer = errors.New("default layer cannot be removed")
)
