// Package store defines the persistence contract for tasks together with
// the sentinel errors every implementation returns.
package store
