package routes

import "net/http"

// System collects route registrations from the feature systems and builds
// the final multiplexer. Groups and Routes expose what was registered so
// the OpenAPI document can be assembled from the same source of truth.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
}
