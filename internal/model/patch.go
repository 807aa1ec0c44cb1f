package model

// Patch applies a partial update to an entity. Implementations only
// overwrite fields that were explicitly supplied; absent fields keep the
// stored value. Identity and timestamp fields are never patchable.
type Patch[T any] interface {
	Apply(*T)
}
