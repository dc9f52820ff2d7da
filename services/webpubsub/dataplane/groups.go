package dataplane

import "net/http"

// GroupsClient manages groups of a hub.
type GroupsClient struct {
	hubRef
}

// Exists checks whether a group has any connection.
func (g *GroupsClient) Exists(group string) *ExistsCall {
	return &ExistsCall{hubRef: g.hubRef, suffix: "/groups/{group}", params: []string{group}}
}

// CloseConnections closes every connection of a group.
func (g *GroupsClient) CloseConnections(group string) *CloseCall {
	return &CloseCall{hubRef: g.hubRef, suffix: "/groups/{group}/:closeConnections", params: []string{group}}
}

// Send delivers message to every connection of a group.
func (g *GroupsClient) Send(group string, message Message) *SendCall {
	return &SendCall{hubRef: g.hubRef, suffix: "/groups/{group}/:send", params: []string{group}, message: message}
}

// AddConnection adds a connection to a group.
func (g *GroupsClient) AddConnection(group, connectionID string) *UnitCall {
	return &UnitCall{
		hubRef:   g.hubRef,
		method:   http.MethodPut,
		suffix:   "/groups/{group}/connections/{connectionId}",
		params:   []string{group, connectionID},
		expected: http.StatusOK,
	}
}

// RemoveConnection removes a connection from a group.
func (g *GroupsClient) RemoveConnection(group, connectionID string) *UnitCall {
	return &UnitCall{
		hubRef:   g.hubRef,
		method:   http.MethodDelete,
		suffix:   "/groups/{group}/connections/{connectionId}",
		params:   []string{group, connectionID},
		expected: http.StatusNoContent,
	}
}

// UsersClient manages users of a hub. A user may hold several connections.
type UsersClient struct {
	hubRef
}

// Exists checks whether a user has any connection.
func (u *UsersClient) Exists(userID string) *ExistsCall {
	return &ExistsCall{hubRef: u.hubRef, suffix: "/users/{userId}", params: []string{userID}}
}

// CloseConnections closes every connection of a user.
func (u *UsersClient) CloseConnections(userID string) *CloseCall {
	return &CloseCall{hubRef: u.hubRef, suffix: "/users/{userId}/:closeConnections", params: []string{userID}}
}

// Send delivers message to every connection of a user.
func (u *UsersClient) Send(userID string, message Message) *SendCall {
	return &SendCall{hubRef: u.hubRef, suffix: "/users/{userId}/:send", params: []string{userID}, message: message}
}

// AddToGroup adds every connection of a user to a group.
func (u *UsersClient) AddToGroup(userID, group string) *UnitCall {
	return &UnitCall{
		hubRef:   u.hubRef,
		method:   http.MethodPut,
		suffix:   "/users/{userId}/groups/{group}",
		params:   []string{userID, group},
		expected: http.StatusOK,
	}
}

// RemoveFromGroup removes a user from a group.
func (u *UsersClient) RemoveFromGroup(userID, group string) *UnitCall {
	return &UnitCall{
		hubRef:   u.hubRef,
		method:   http.MethodDelete,
		suffix:   "/users/{userId}/groups/{group}",
		params:   []string{userID, group},
		expected: http.StatusNoContent,
	}
}

// RemoveFromAllGroups removes a user from every group.
func (u *UsersClient) RemoveFromAllGroups(userID string) *UnitCall {
	return &UnitCall{
		hubRef:   u.hubRef,
		method:   http.MethodDelete,
		suffix:   "/users/{userId}/groups",
		params:   []string{userID},
		expected: http.StatusNoContent,
	}
}
