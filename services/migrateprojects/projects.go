package migrateprojects

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// MigrateProjectsClient manages projects.
type MigrateProjectsClient struct {
	c *Client
}

func (m *MigrateProjectsClient) ref(resourceGroupName, migrateProjectName string) projectRef {
	return projectRef{m.c, resourceGroupName, migrateProjectName}
}

// MigrateProjectsGetCall is GET on a project.
type MigrateProjectsGetCall struct {
	projectRef
}

// Get returns a project.
func (m *MigrateProjectsClient) Get(resourceGroupName, migrateProjectName string) *MigrateProjectsGetCall {
	return &MigrateProjectsGetCall{m.ref(resourceGroupName, migrateProjectName)}
}

// Do sends the request.
func (call *MigrateProjectsGetCall) Do(ctx context.Context) (*MigrateProject, error) {
	req, err := call.request(http.MethodGet, "")
	if err != nil {
		return nil, err
	}
	return sdk.Do[MigrateProject](ctx, call.c.pipeline, req, http.StatusOK)
}

// MigrateProjectsPutCall is PUT on a project.
type MigrateProjectsPutCall struct {
	projectRef
	body           MigrateProject
	acceptLanguage string
}

// Put creates or replaces a project (200 or 201).
func (m *MigrateProjectsClient) Put(resourceGroupName, migrateProjectName string, body MigrateProject) *MigrateProjectsPutCall {
	return &MigrateProjectsPutCall{projectRef: m.ref(resourceGroupName, migrateProjectName), body: body}
}

// AcceptLanguage sets the language of localized messages.
func (call *MigrateProjectsPutCall) AcceptLanguage(lang string) *MigrateProjectsPutCall {
	call.acceptLanguage = lang
	return call
}

// Do sends the request.
func (call *MigrateProjectsPutCall) Do(ctx context.Context) (*sdk.Result[MigrateProject], error) {
	req, err := call.request(http.MethodPut, "")
	if err != nil {
		return nil, err
	}
	req.SetHeader(sdk.HeaderAcceptLanguage, call.acceptLanguage)
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.DoResult[MigrateProject](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// MigrateProjectsPatchCall is PATCH on a project.
type MigrateProjectsPatchCall struct {
	projectRef
	body           MigrateProject
	acceptLanguage string
}

// Patch updates the fields set in body, e.g. only tags.
func (m *MigrateProjectsClient) Patch(resourceGroupName, migrateProjectName string, body MigrateProject) *MigrateProjectsPatchCall {
	return &MigrateProjectsPatchCall{projectRef: m.ref(resourceGroupName, migrateProjectName), body: body}
}

// AcceptLanguage sets the language of localized messages.
func (call *MigrateProjectsPatchCall) AcceptLanguage(lang string) *MigrateProjectsPatchCall {
	call.acceptLanguage = lang
	return call
}

// Do sends the request.
func (call *MigrateProjectsPatchCall) Do(ctx context.Context) (*MigrateProject, error) {
	req, err := call.request(http.MethodPatch, "")
	if err != nil {
		return nil, err
	}
	req.SetHeader(sdk.HeaderAcceptLanguage, call.acceptLanguage)
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.Do[MigrateProject](ctx, call.c.pipeline, req, http.StatusOK)
}

// MigrateProjectsDeleteCall is DELETE on a project.
type MigrateProjectsDeleteCall struct {
	projectRef
	acceptLanguage string
}

// Delete deletes a project. Deleting a missing project succeeds.
func (m *MigrateProjectsClient) Delete(resourceGroupName, migrateProjectName string) *MigrateProjectsDeleteCall {
	return &MigrateProjectsDeleteCall{projectRef: m.ref(resourceGroupName, migrateProjectName)}
}

// AcceptLanguage sets the language of localized messages.
func (call *MigrateProjectsDeleteCall) AcceptLanguage(lang string) *MigrateProjectsDeleteCall {
	call.acceptLanguage = lang
	return call
}

// Do sends the request.
func (call *MigrateProjectsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "")
	if err != nil {
		return err
	}
	req.SetHeader(sdk.HeaderAcceptLanguage, call.acceptLanguage)
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusNoContent)
	return err
}

// MigrateProjectsRegisterToolCall is POST .../registerTool.
type MigrateProjectsRegisterToolCall struct {
	projectRef
	input          RegisterToolInput
	acceptLanguage string
}

// RegisterTool registers a tool with a project.
func (m *MigrateProjectsClient) RegisterTool(resourceGroupName, migrateProjectName string, input RegisterToolInput) *MigrateProjectsRegisterToolCall {
	return &MigrateProjectsRegisterToolCall{projectRef: m.ref(resourceGroupName, migrateProjectName), input: input}
}

// AcceptLanguage sets the language of localized messages.
func (call *MigrateProjectsRegisterToolCall) AcceptLanguage(lang string) *MigrateProjectsRegisterToolCall {
	call.acceptLanguage = lang
	return call
}

// Do sends the request.
func (call *MigrateProjectsRegisterToolCall) Do(ctx context.Context) (*RegistrationResult, error) {
	req, err := call.request(http.MethodPost, "/registerTool")
	if err != nil {
		return nil, err
	}
	req.SetHeader(sdk.HeaderAcceptLanguage, call.acceptLanguage)
	if err := req.SetJSONBody(call.input); err != nil {
		return nil, err
	}
	return sdk.Do[RegistrationResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// MigrateProjectsRefreshSummaryCall is POST .../refreshSummary.
type MigrateProjectsRefreshSummaryCall struct {
	projectRef
	input RefreshSummaryInput
}

// RefreshSummary recomputes the summary of one goal.
func (m *MigrateProjectsClient) RefreshSummary(resourceGroupName, migrateProjectName string, input RefreshSummaryInput) *MigrateProjectsRefreshSummaryCall {
	return &MigrateProjectsRefreshSummaryCall{projectRef: m.ref(resourceGroupName, migrateProjectName), input: input}
}

// Do sends the request. A 202 starts the refresh without a result body.
func (call *MigrateProjectsRefreshSummaryCall) Do(ctx context.Context) (*sdk.Result[RefreshSummaryResult], error) {
	req, err := call.request(http.MethodPost, "/refreshSummary")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.input); err != nil {
		return nil, err
	}
	return sdk.DoResult[RefreshSummaryResult](ctx, call.c.pipeline, req, http.StatusOK, http.StatusAccepted)
}
