// Package models provides the data structures shared by every azrest service client.
//
// These are the Azure Resource Manager envelopes that individual services compose
// into their own resource types, plus the error envelope every ARM API returns and
// the operations listing each resource provider exposes. The emulator under server/
// uses the same types, so client and emulator agree on the wire format.
//
// The models in this package represent:
//   - Resource, ProxyResource, TrackedResource: the id/name/type envelope
//   - SystemData: creation and modification metadata stamped by ARM
//   - ErrorResponse / ErrorDetail: the uniform error body
//   - Operation / OperationListResult: provider operation listings
//
// Service types embed these structs. encoding/json inlines the fields of an
// embedded struct, so a service resource serializes as one flat JSON object.
//
// Enumerations are string types. Values the service sends that this package does
// not know are kept verbatim; see IsKnown.
package models
