// Package field implements the declaration side of structures: a Field
// couples a coercion function with an optional default value and knows
// how to install itself onto an owning structure type as a Descriptor.
//
// # Variants
//
// Two field variants exist, selected at construction rather than by
// runtime type inspection:
//
//   - Simple fields coerce their default once, at declaration time, and
//     hand the stored result out on every unset read.
//   - Container fields re-coerce their default on every unset read, so
//     each read materializes a fresh collection that aliases neither the
//     declaration nor another instance's read.
//
// Both validate a declared default at construction: a default the
// coercion rejects fails the declaration immediately instead of failing
// the first read.
//
// # State
//
// A Field and its Descriptor are built once per declared attribute and
// shared by every instance of every structure type that declares them.
// All per-instance state lives in the instance's own storage behind the
// Instance interface, keyed by attribute name. An attribute is unset
// until the first successful write and set forever after; there is no
// way back.
package field
