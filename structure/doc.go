// Package structure owns named record types built from fields.
//
// A Type is a set of named field declarations; installing a field binds a
// descriptor that mediates every read and write of that attribute. An
// Instance carries nothing but its own value map: defaults, coercion and
// the unset-read policy all live in the shared descriptors.
//
// Types are immutable once declared and safe to share across goroutines.
// Instances are not synchronized.
package structure
