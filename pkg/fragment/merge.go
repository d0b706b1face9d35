// Package fragment implements the layered merge of partially specified
// configuration values. A fragment field that is nil is unset and is filled
// from the less specific tier; a set field is never touched.
package fragment

// Merger is implemented by nested fragment types. Merge fills every unset
// field of the receiver from defaults.
type Merger[T any] interface {
	*T
	Merge(defaults *T)
}

type pointerCopier[T any] interface {
	DeepCopy() *T
}

type valueCopier[T any] interface {
	DeepCopy() T
}

// Copy returns a copy of *src that shares no memory with it where the type
// knows how to deep copy itself.
func Copy[T any](src *T) *T {
	if src == nil {
		return nil
	}
	if dc, ok := any(src).(pointerCopier[T]); ok {
		return dc.DeepCopy()
	}
	if dc, ok := any(*src).(valueCopier[T]); ok {
		v := dc.DeepCopy()
		return &v
	}
	v := *src
	return &v
}

// Merge treats T as atomic: *dst is replaced by a copy of src only when
// *dst is unset.
func Merge[T any](dst **T, src *T) {
	if *dst != nil || src == nil {
		return
	}
	*dst = Copy(src)
}

// MergeNested merges src into *dst field by field, allocating *dst when it
// is unset.
func MergeNested[T any, PT Merger[T]](dst **T, src *T) {
	if src == nil {
		return
	}
	if *dst == nil {
		*dst = new(T)
	}
	PT(*dst).Merge(src)
}

// MergeSlice treats a slice as atomic. A nil slice is unset, an empty one is
// set.
func MergeSlice[T any](dst *[]T, src []T) {
	if *dst != nil || src == nil {
		return
	}
	*dst = append(make([]T, 0, len(src)), src...)
}

// MergeAtomicMap treats a map as atomic, like MergeSlice.
func MergeAtomicMap[K comparable, V any](dst *map[K]V, src map[K]V) {
	if *dst != nil || src == nil {
		return
	}
	*dst = make(map[K]V, len(src))
	for k, v := range src {
		(*dst)[k] = v
	}
}

// MergeMap merges key-wise. Keys only present in src are copied, keys
// present on both sides are merged with the value's own Merge.
func MergeMap[K comparable, V any, PV Merger[V]](dst *map[K]V, src map[K]V) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[K]V, len(src))
	}
	for k, sv := range src {
		sv := sv
		dv, ok := (*dst)[k]
		if !ok {
			dv = *new(V)
		}
		PV(&dv).Merge(&sv)
		(*dst)[k] = dv
	}
}
