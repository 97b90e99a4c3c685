// Package types defines the catalog Item interface, the book variants that
// implement it, the driver Config, and the standard errors shared by the
// librarian packages.
package types
