package migrateprojects

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// MachinesClient reads the machines of a project.
type MachinesClient struct {
	c *Client
}

// List lists the machines of a project.
func (m *MachinesClient) List(resourceGroupName, migrateProjectName string) *CollectionListCall[MachineCollection] {
	return newCollectionListCall(projectRef{m.c, resourceGroupName, migrateProjectName}, "/machines",
		func(p *MachineCollection) string { return sdk.NextLink(p.NextLink) })
}

// Get returns a machine.
func (m *MachinesClient) Get(resourceGroupName, migrateProjectName, machineName string) *ChildGetCall[Machine] {
	return newChildGetCall[Machine](projectRef{m.c, resourceGroupName, migrateProjectName}, "/machines/{machineName}", machineName)
}

// DatabasesClient reads the databases of a project.
type DatabasesClient struct {
	c *Client
}

// List lists the databases of a project.
func (d *DatabasesClient) List(resourceGroupName, migrateProjectName string) *CollectionListCall[DatabaseCollection] {
	return newCollectionListCall(projectRef{d.c, resourceGroupName, migrateProjectName}, "/databases",
		func(p *DatabaseCollection) string { return sdk.NextLink(p.NextLink) })
}

// Get returns a database.
func (d *DatabasesClient) Get(resourceGroupName, migrateProjectName, databaseName string) *ChildGetCall[Database] {
	return newChildGetCall[Database](projectRef{d.c, resourceGroupName, migrateProjectName}, "/databases/{databaseName}", databaseName)
}

// DatabaseInstancesClient reads the database instances of a project.
type DatabaseInstancesClient struct {
	c *Client
}

// List lists the database instances of a project.
func (d *DatabaseInstancesClient) List(resourceGroupName, migrateProjectName string) *CollectionListCall[DatabaseInstanceCollection] {
	return newCollectionListCall(projectRef{d.c, resourceGroupName, migrateProjectName}, "/databaseInstances",
		func(p *DatabaseInstanceCollection) string { return sdk.NextLink(p.NextLink) })
}

// Get returns a database instance.
func (d *DatabaseInstancesClient) Get(resourceGroupName, migrateProjectName, databaseInstanceName string) *ChildGetCall[DatabaseInstance] {
	return newChildGetCall[DatabaseInstance](projectRef{d.c, resourceGroupName, migrateProjectName}, "/databaseInstances/{databaseInstanceName}", databaseInstanceName)
}

// EventsClient reads and dismisses the events of a project.
type EventsClient struct {
	c *Client
}

// List lists the events of a project.
func (e *EventsClient) List(resourceGroupName, migrateProjectName string) *CollectionListCall[EventCollection] {
	return newCollectionListCall(projectRef{e.c, resourceGroupName, migrateProjectName}, "/migrateEvents",
		func(p *EventCollection) string { return sdk.NextLink(p.NextLink) })
}

// Get returns an event.
func (e *EventsClient) Get(resourceGroupName, migrateProjectName, eventName string) *ChildGetCall[MigrateEvent] {
	return newChildGetCall[MigrateEvent](projectRef{e.c, resourceGroupName, migrateProjectName}, "/migrateEvents/{eventName}", eventName)
}

// EventsDeleteCall is DELETE on an event.
type EventsDeleteCall struct {
	projectRef
	eventName string
}

// Delete dismisses an event.
func (e *EventsClient) Delete(resourceGroupName, migrateProjectName, eventName string) *EventsDeleteCall {
	return &EventsDeleteCall{projectRef{e.c, resourceGroupName, migrateProjectName}, eventName}
}

// Do sends the request.
func (call *EventsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "/migrateEvents/{eventName}", call.eventName)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusNoContent)
	return err
}

// ChildGetCall is GET on one project child.
type ChildGetCall[T any] struct {
	projectRef
	suffix         string
	name           string
	acceptLanguage string
}

func newChildGetCall[T any](ref projectRef, suffix, name string) *ChildGetCall[T] {
	return &ChildGetCall[T]{projectRef: ref, suffix: suffix, name: name}
}

// AcceptLanguage sets the language of localized messages.
func (call *ChildGetCall[T]) AcceptLanguage(lang string) *ChildGetCall[T] {
	call.acceptLanguage = lang
	return call
}

// Do sends the request.
func (call *ChildGetCall[T]) Do(ctx context.Context) (*T, error) {
	req, err := call.request(http.MethodGet, call.suffix, call.name)
	if err != nil {
		return nil, err
	}
	req.SetHeader(sdk.HeaderAcceptLanguage, call.acceptLanguage)
	return sdk.Do[T](ctx, call.c.pipeline, req, http.StatusOK)
}
