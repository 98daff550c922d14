// Package service contains the application use cases. It orchestrates the
// domain entities and the repository interfaces defined in internal/store,
// and translates store errors into service-level sentinels that the API
// layer maps to HTTP status codes.
//
// Error handling principles:
//  1. Service methods return sentinel errors for expected error conditions
//  2. Unexpected errors are wrapped in service-specific error types
//  3. Callers use errors.Is/errors.As to check for specific error conditions
package service
