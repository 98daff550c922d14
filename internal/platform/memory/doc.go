// Package memory provides process-local implementations of the store
// interfaces. State lives only as long as the process does.
package memory
