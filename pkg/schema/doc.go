// Package schema defines the external schema-validation capability
// consumed by the receipt engine through a narrow interface.
//
// The engine never probes for the capability; callers inject a Checker
// and the result has three observable states: attempted and passed,
// attempted and failed with violations, or not attempted at all
// (Unavailable). A missing capability degrades the schema check, it never
// fails a receipt by itself.
//
// The bundled implementation compiles a JSON Schema with
// santhosh-tekuri/jsonschema and reports leaf causes with their instance
// locations.
package schema
