package migrateprojects

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// SolutionsClient manages the solutions of a project.
type SolutionsClient struct {
	c *Client
}

// solutionRef identifies one solution.
type solutionRef struct {
	projectRef
	solutionName string
}

func (s *SolutionsClient) ref(resourceGroupName, migrateProjectName, solutionName string) solutionRef {
	return solutionRef{projectRef{s.c, resourceGroupName, migrateProjectName}, solutionName}
}

func (r solutionRef) request(method, suffix string) (*sdk.Request, error) {
	return r.projectRef.request(method, "/solutions/{solutionName}"+suffix, r.solutionName)
}

// SolutionsGetCall is GET on a solution.
type SolutionsGetCall struct {
	solutionRef
}

// Get returns a solution.
func (s *SolutionsClient) Get(resourceGroupName, migrateProjectName, solutionName string) *SolutionsGetCall {
	return &SolutionsGetCall{s.ref(resourceGroupName, migrateProjectName, solutionName)}
}

// Do sends the request.
func (call *SolutionsGetCall) Do(ctx context.Context) (*Solution, error) {
	req, err := call.request(http.MethodGet, "")
	if err != nil {
		return nil, err
	}
	return sdk.Do[Solution](ctx, call.c.pipeline, req, http.StatusOK)
}

// SolutionsPutCall is PUT on a solution.
type SolutionsPutCall struct {
	solutionRef
	body Solution
}

// Put creates or replaces a solution (200 or 201).
func (s *SolutionsClient) Put(resourceGroupName, migrateProjectName, solutionName string, body Solution) *SolutionsPutCall {
	return &SolutionsPutCall{solutionRef: s.ref(resourceGroupName, migrateProjectName, solutionName), body: body}
}

// Do sends the request.
func (call *SolutionsPutCall) Do(ctx context.Context) (*sdk.Result[Solution], error) {
	req, err := call.request(http.MethodPut, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.DoResult[Solution](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// SolutionsPatchCall is PATCH on a solution.
type SolutionsPatchCall struct {
	solutionRef
	body Solution
}

// Patch updates the fields set in body.
func (s *SolutionsClient) Patch(resourceGroupName, migrateProjectName, solutionName string, body Solution) *SolutionsPatchCall {
	return &SolutionsPatchCall{solutionRef: s.ref(resourceGroupName, migrateProjectName, solutionName), body: body}
}

// Do sends the request.
func (call *SolutionsPatchCall) Do(ctx context.Context) (*Solution, error) {
	req, err := call.request(http.MethodPatch, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.Do[Solution](ctx, call.c.pipeline, req, http.StatusOK)
}

// SolutionsDeleteCall is DELETE on a solution.
type SolutionsDeleteCall struct {
	solutionRef
	acceptLanguage string
}

// Delete deletes a solution.
func (s *SolutionsClient) Delete(resourceGroupName, migrateProjectName, solutionName string) *SolutionsDeleteCall {
	return &SolutionsDeleteCall{solutionRef: s.ref(resourceGroupName, migrateProjectName, solutionName)}
}

// AcceptLanguage sets the language of localized messages.
func (call *SolutionsDeleteCall) AcceptLanguage(lang string) *SolutionsDeleteCall {
	call.acceptLanguage = lang
	return call
}

// Do sends the request.
func (call *SolutionsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "")
	if err != nil {
		return err
	}
	req.SetHeader(sdk.HeaderAcceptLanguage, call.acceptLanguage)
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusNoContent)
	return err
}

// List lists the solutions of a project.
func (s *SolutionsClient) List(resourceGroupName, migrateProjectName string) *CollectionListCall[SolutionsCollection] {
	return newCollectionListCall(projectRef{s.c, resourceGroupName, migrateProjectName}, "/solutions",
		func(p *SolutionsCollection) string { return sdk.NextLink(p.NextLink) })
}

// SolutionsGetConfigCall is POST .../solutions/{name}/getConfig.
type SolutionsGetConfigCall struct {
	solutionRef
}

// GetConfig returns the upload configuration of a solution.
func (s *SolutionsClient) GetConfig(resourceGroupName, migrateProjectName, solutionName string) *SolutionsGetConfigCall {
	return &SolutionsGetConfigCall{s.ref(resourceGroupName, migrateProjectName, solutionName)}
}

// Do sends the request.
func (call *SolutionsGetConfigCall) Do(ctx context.Context) (*SolutionConfig, error) {
	req, err := call.request(http.MethodPost, "/getConfig")
	if err != nil {
		return nil, err
	}
	return sdk.Do[SolutionConfig](ctx, call.c.pipeline, req, http.StatusOK)
}

// SolutionsCleanupDataCall is POST .../solutions/{name}/cleanupData.
type SolutionsCleanupDataCall struct {
	solutionRef
}

// CleanupData removes the data a solution reported. Progress shows in the
// solution's CleanupState.
func (s *SolutionsClient) CleanupData(resourceGroupName, migrateProjectName, solutionName string) *SolutionsCleanupDataCall {
	return &SolutionsCleanupDataCall{s.ref(resourceGroupName, migrateProjectName, solutionName)}
}

// Do sends the request.
func (call *SolutionsCleanupDataCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, "/cleanupData")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}
