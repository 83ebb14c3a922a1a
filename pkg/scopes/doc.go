// Package scopes implements permission scope matching for the authorization
// layer.
//
// A scope is a dot-delimited "resource.action" string such as "order.create"
// or "invoice.read". Patterns support a global wildcard ("*" grants
// everything) and namespace wildcards ("finance.*" grants every action on
// the finance namespace).
//
// All functions are pure and operate on plain string slices, so the package
// has no state and is safe for concurrent use.
package scopes
