// Package domain contains the Task entity and its validation rules. It has
// no dependency on storage or HTTP concerns.
package domain
