// Package metrics owns the Prometheus registry for the service and the HTTP
// request collectors recorded by the observability middleware.
package metrics
