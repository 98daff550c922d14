// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between HTTP clients and the
// task service, translating HTTP concerns to service calls and service
// errors back to status codes.
package api
