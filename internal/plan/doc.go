// Package plan resolves a parsed schema into a generation plan.
//
// The pipeline:
//  1. Validate the package name.
//  2. Derive an exported Go identifier for every structure and field.
//  3. Resolve name collisions with numeric suffixes, in declaration
//     order.
//  4. Map every kind to the Go type its values carry.
//
// A plan is fully resolved: the generator renders it without making
// further naming decisions, so two runs over the same schema always
// produce identical files.
package plan
