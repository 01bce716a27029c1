// Package registry holds read-only views of the user, company, and product
// data owned by the registry collaborator. The ordering core never mutates
// this data; it only resolves identities, checks kinds, and projects named
// attributes.
//
// User and company variants are tagged enumerations. Attribute projection is
// table driven: a shared table per type plus a per-kind table for the names
// only one variant exposes.
package registry
