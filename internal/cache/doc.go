// Package cache provides the bounded assembly cache used to memoize raw
// chains per record, field specification and separator specification.
//
// GetOrCompute runs the compute function at most once per key while the key
// is cached, including under concurrent calls for the same key. Calls for
// different keys never wait on each other's computation. When the capacity is
// exceeded the earliest inserted key is evicted; values already handed out
// stay valid. Errors are returned to every waiting caller and are not cached.
package cache
