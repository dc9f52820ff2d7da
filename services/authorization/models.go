package authorization

import (
	"encoding/json"
	"time"
)

// RoleAssignment binds a principal to a role definition at a scope.
type RoleAssignment struct {
	ID         *string                   `json:"id,omitempty"`
	Name       *string                   `json:"name,omitempty"`
	Type       *string                   `json:"type,omitempty"`
	Properties *RoleAssignmentProperties `json:"properties,omitempty"`
}

// RoleAssignmentProperties are the properties of a role assignment.
type RoleAssignmentProperties struct {
	Scope                              *string        `json:"scope,omitempty"`
	RoleDefinitionID                   string         `json:"roleDefinitionId"`
	PrincipalID                        string         `json:"principalId"`
	PrincipalType                      *PrincipalType `json:"principalType,omitempty"`
	Description                        *string        `json:"description,omitempty"`
	Condition                          *string        `json:"condition,omitempty"`
	ConditionVersion                   *string        `json:"conditionVersion,omitempty"`
	CreatedOn                          *time.Time     `json:"createdOn,omitempty"`
	UpdatedOn                          *time.Time     `json:"updatedOn,omitempty"`
	CreatedBy                          *string        `json:"createdBy,omitempty"`
	UpdatedBy                          *string        `json:"updatedBy,omitempty"`
	DelegatedManagedIdentityResourceID *string        `json:"delegatedManagedIdentityResourceId,omitempty"`
}

// RoleAssignmentCreateParameters is the PUT body of a role assignment.
type RoleAssignmentCreateParameters struct {
	Properties RoleAssignmentProperties `json:"properties"`
}

// RoleAssignmentListResult is one page of role assignments.
type RoleAssignmentListResult struct {
	Value    []RoleAssignment `json:"value,omitempty"`
	NextLink *string          `json:"nextLink,omitempty"`
}

// RoleDefinition is a set of permissions that can be assigned.
type RoleDefinition struct {
	ID         *string                   `json:"id,omitempty"`
	Name       *string                   `json:"name,omitempty"`
	Type       *string                   `json:"type,omitempty"`
	Properties *RoleDefinitionProperties `json:"properties,omitempty"`
}

// RoleDefinitionProperties are the properties of a role definition.
type RoleDefinitionProperties struct {
	RoleName         *string      `json:"roleName,omitempty"`
	Description      *string      `json:"description,omitempty"`
	RoleType         *string      `json:"type,omitempty"`
	Permissions      []Permission `json:"permissions,omitempty"`
	AssignableScopes []string     `json:"assignableScopes,omitempty"`
}

// RoleDefinitionListResult is one page of role definitions.
type RoleDefinitionListResult struct {
	Value    []RoleDefinition `json:"value,omitempty"`
	NextLink *string          `json:"nextLink,omitempty"`
}

// Permission is a set of allowed and denied actions.
type Permission struct {
	Actions        []string `json:"actions,omitempty"`
	NotActions     []string `json:"notActions,omitempty"`
	DataActions    []string `json:"dataActions,omitempty"`
	NotDataActions []string `json:"notDataActions,omitempty"`
}

// PermissionGetResult is one page of effective permissions.
type PermissionGetResult struct {
	Value    []Permission `json:"value,omitempty"`
	NextLink *string      `json:"nextLink,omitempty"`
}

// ProviderOperation is one operation of a resource provider.
type ProviderOperation struct {
	Name         *string         `json:"name,omitempty"`
	DisplayName  *string         `json:"displayName,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Origin       *string         `json:"origin,omitempty"`
	Properties   json.RawMessage `json:"properties,omitempty"`
	IsDataAction *bool           `json:"isDataAction,omitempty"`
}

// ResourceType groups the operations of one resource type.
type ResourceType struct {
	Name        *string             `json:"name,omitempty"`
	DisplayName *string             `json:"displayName,omitempty"`
	Operations  []ProviderOperation `json:"operations,omitempty"`
}

// ProviderOperationsMetadata describes the operations of a resource provider.
type ProviderOperationsMetadata struct {
	ID            *string             `json:"id,omitempty"`
	Name          *string             `json:"name,omitempty"`
	Type          *string             `json:"type,omitempty"`
	DisplayName   *string             `json:"displayName,omitempty"`
	ResourceTypes []ResourceType      `json:"resourceTypes,omitempty"`
	Operations    []ProviderOperation `json:"operations,omitempty"`
}

// ProviderOperationsMetadataListResult is one page of provider metadata.
type ProviderOperationsMetadataListResult struct {
	Value    []ProviderOperationsMetadata `json:"value,omitempty"`
	NextLink *string                      `json:"nextLink,omitempty"`
}

// DenyAssignment blocks principals from actions at a scope.
type DenyAssignment struct {
	ID         *string                   `json:"id,omitempty"`
	Name       *string                   `json:"name,omitempty"`
	Type       *string                   `json:"type,omitempty"`
	Properties *DenyAssignmentProperties `json:"properties,omitempty"`
}

// DenyAssignmentProperties are the properties of a deny assignment.
type DenyAssignmentProperties struct {
	DenyAssignmentName      *string                    `json:"denyAssignmentName,omitempty"`
	Description             *string                    `json:"description,omitempty"`
	Permissions             []DenyAssignmentPermission `json:"permissions,omitempty"`
	Scope                   *string                    `json:"scope,omitempty"`
	DoNotApplyToChildScopes *bool                      `json:"doNotApplyToChildScopes,omitempty"`
	Principals              []Principal                `json:"principals,omitempty"`
	ExcludePrincipals       []Principal                `json:"excludePrincipals,omitempty"`
	IsSystemProtected       *bool                      `json:"isSystemProtected,omitempty"`
}

// DenyAssignmentPermission is a permission denied by a deny assignment.
type DenyAssignmentPermission struct {
	Actions          []string `json:"actions,omitempty"`
	NotActions       []string `json:"notActions,omitempty"`
	DataActions      []string `json:"dataActions,omitempty"`
	NotDataActions   []string `json:"notDataActions,omitempty"`
	Condition        *string  `json:"condition,omitempty"`
	ConditionVersion *string  `json:"conditionVersion,omitempty"`
}

// Principal is a principal referenced by a deny assignment.
type Principal struct {
	ID          *string `json:"id,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	Type        *string `json:"type,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// DenyAssignmentListResult is one page of deny assignments.
type DenyAssignmentListResult struct {
	Value    []DenyAssignment `json:"value,omitempty"`
	NextLink *string          `json:"nextLink,omitempty"`
}
