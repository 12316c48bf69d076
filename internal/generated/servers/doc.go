// Package servers holds the HTTP contract of the bakery service: the OpenAPI
// document and the echo bindings for it. The bindings are maintained by hand
// in the layout oapi-codegen emits for echo and must be kept in step with
// openapi.yaml; spec_test.go checks that every bound route is documented.
package servers
