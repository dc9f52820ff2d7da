package dataplane

import "net/http"

// Permission is a right a connection can hold.
type Permission string

const (
	PermissionSendToGroup    Permission = "sendToGroup"
	PermissionJoinLeaveGroup Permission = "joinLeaveGroup"
)

// PossiblePermissionValues returns the known values for Permission.
func PossiblePermissionValues() []Permission {
	return []Permission{
		PermissionSendToGroup,
		PermissionJoinLeaveGroup,
	}
}

// PermissionsClient manages connection permissions of a hub.
type PermissionsClient struct {
	hubRef
}

// PermissionCall grants, revokes or checks one permission. TargetName
// narrows it to one group; without it the permission covers every group.
type PermissionCall struct {
	UnitCall
}

// TargetName limits the permission to one group.
func (call *PermissionCall) TargetName(group string) *PermissionCall {
	call.query = map[string]string{"targetName": group}
	return call
}

func (p *PermissionsClient) newCall(method string, permission Permission, connectionID string, expected int) *PermissionCall {
	return &PermissionCall{UnitCall{
		hubRef:   p.hubRef,
		method:   method,
		suffix:   "/permissions/{permission}/connections/{connectionId}",
		params:   []string{string(permission), connectionID},
		expected: expected,
	}}
}

// Grant grants a permission to a connection.
func (p *PermissionsClient) Grant(permission Permission, connectionID string) *PermissionCall {
	return p.newCall(http.MethodPut, permission, connectionID, http.StatusOK)
}

// Revoke revokes a permission from a connection.
func (p *PermissionsClient) Revoke(permission Permission, connectionID string) *PermissionCall {
	return p.newCall(http.MethodDelete, permission, connectionID, http.StatusNoContent)
}

// Check returns nil when the connection holds the permission and an error
// matching sdk.IsNotFound when it does not.
func (p *PermissionsClient) Check(permission Permission, connectionID string) *PermissionCall {
	return p.newCall(http.MethodHead, permission, connectionID, http.StatusOK)
}
