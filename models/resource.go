package models

import "time"

// CreatedByType identifies the kind of identity that created or last modified a resource.
type CreatedByType string

const (
	CreatedByTypeUser            CreatedByType = "User"
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeKey             CreatedByType = "Key"
)

// PossibleCreatedByTypeValues returns the known values for CreatedByType.
func PossibleCreatedByTypeValues() []CreatedByType {
	return []CreatedByType{
		CreatedByTypeUser,
		CreatedByTypeApplication,
		CreatedByTypeManagedIdentity,
		CreatedByTypeKey,
	}
}

// SystemData holds creation and last-modification metadata stamped by ARM.
type SystemData struct {
	// CreatedBy is the identity that created the resource
	CreatedBy *string `json:"createdBy,omitempty"`

	// CreatedByType is the kind of identity that created the resource
	CreatedByType *CreatedByType `json:"createdByType,omitempty"`

	// CreatedAt is the creation timestamp (UTC, RFC 3339)
	CreatedAt *time.Time `json:"createdAt,omitempty"`

	// LastModifiedBy is the identity that last modified the resource
	LastModifiedBy *string `json:"lastModifiedBy,omitempty"`

	// LastModifiedByType is the kind of identity that last modified the resource
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty"`

	// LastModifiedAt is the last modification timestamp (UTC, RFC 3339)
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

// Resource is the envelope common to every ARM resource.
// All fields are read-only: the service fills them in responses.
type Resource struct {
	// ID is the fully qualified resource ID, e.g.
	// /subscriptions/{sub}/resourceGroups/{rg}/providers/{ns}/{type}/{name}
	ID *string `json:"id,omitempty"`

	// Name is the last segment of the resource ID
	Name *string `json:"name,omitempty"`

	// Type is the resource type, e.g. "Microsoft.Cache/redisEnterprise"
	Type *string `json:"type,omitempty"`

	// SystemData carries creation and modification metadata
	SystemData *SystemData `json:"systemData,omitempty"`
}

// ProxyResource is a resource without a location or tags of its own,
// typically a child of a tracked resource.
type ProxyResource struct {
	Resource
}

// TrackedResource is a top-level resource with a location and tags.
type TrackedResource struct {
	Resource

	// Tags are user-defined key/value pairs
	Tags map[string]string `json:"tags,omitempty"`

	// Location is the Azure region the resource lives in
	Location string `json:"location"`
}

// ResourceID returns the resource ID or an empty string.
func (r Resource) ResourceID() string {
	if r.ID == nil {
		return ""
	}
	return *r.ID
}

// ResourceName returns the resource name or an empty string.
func (r Resource) ResourceName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}
