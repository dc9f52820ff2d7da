package synapsekusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// KustoPoolPrincipalAssignmentsClient manages principal assignments on a pool.
type KustoPoolPrincipalAssignmentsClient struct {
	c *Client
}

type poolAssignmentRef struct {
	kustoPoolRef
	principalAssignmentName string
}

func (r poolAssignmentRef) request(method string) (*sdk.Request, error) {
	return r.c.newRequest(method, kustoPoolPath+"/principalAssignments/{principalAssignmentName}",
		r.c.subscriptionID, r.resourceGroupName, r.workspaceName, r.kustoPoolName, r.principalAssignmentName)
}

// KustoPoolPrincipalAssignmentsListCall lists the assignments of a pool.
type KustoPoolPrincipalAssignmentsListCall struct {
	kustoPoolRef
}

// List lists the assignments of a pool.
func (k *KustoPoolPrincipalAssignmentsClient) List(resourceGroupName, workspaceName, kustoPoolName string) *KustoPoolPrincipalAssignmentsListCall {
	return &KustoPoolPrincipalAssignmentsListCall{kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}}
}

// Do sends the request.
func (call *KustoPoolPrincipalAssignmentsListCall) Do(ctx context.Context) (*ClusterPrincipalAssignmentListResult, error) {
	req, err := call.request(http.MethodGet, "/principalAssignments")
	if err != nil {
		return nil, err
	}
	return sdk.Do[ClusterPrincipalAssignmentListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// KustoPoolPrincipalAssignmentsGetCall is GET on a pool assignment.
type KustoPoolPrincipalAssignmentsGetCall struct {
	poolAssignmentRef
}

// Get returns a pool assignment.
func (k *KustoPoolPrincipalAssignmentsClient) Get(resourceGroupName, workspaceName, kustoPoolName, principalAssignmentName string) *KustoPoolPrincipalAssignmentsGetCall {
	return &KustoPoolPrincipalAssignmentsGetCall{poolAssignmentRef{kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}, principalAssignmentName}}
}

// Do sends the request.
func (call *KustoPoolPrincipalAssignmentsGetCall) Do(ctx context.Context) (*ClusterPrincipalAssignment, error) {
	req, err := call.request(http.MethodGet)
	if err != nil {
		return nil, err
	}
	return sdk.Do[ClusterPrincipalAssignment](ctx, call.c.pipeline, req, http.StatusOK)
}

// KustoPoolPrincipalAssignmentsCreateOrUpdateCall is PUT on a pool assignment.
type KustoPoolPrincipalAssignmentsCreateOrUpdateCall struct {
	poolAssignmentRef
	parameters ClusterPrincipalAssignment
}

// CreateOrUpdate creates or replaces a pool assignment (200 or 201).
func (k *KustoPoolPrincipalAssignmentsClient) CreateOrUpdate(resourceGroupName, workspaceName, kustoPoolName, principalAssignmentName string, parameters ClusterPrincipalAssignment) *KustoPoolPrincipalAssignmentsCreateOrUpdateCall {
	return &KustoPoolPrincipalAssignmentsCreateOrUpdateCall{
		poolAssignmentRef: poolAssignmentRef{kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}, principalAssignmentName},
		parameters:        parameters,
	}
}

// Do sends the request.
func (call *KustoPoolPrincipalAssignmentsCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[ClusterPrincipalAssignment], error) {
	req, err := call.request(http.MethodPut)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[ClusterPrincipalAssignment](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// KustoPoolPrincipalAssignmentsDeleteCall is DELETE on a pool assignment.
type KustoPoolPrincipalAssignmentsDeleteCall struct {
	poolAssignmentRef
}

// Delete deletes a pool assignment.
func (k *KustoPoolPrincipalAssignmentsClient) Delete(resourceGroupName, workspaceName, kustoPoolName, principalAssignmentName string) *KustoPoolPrincipalAssignmentsDeleteCall {
	return &KustoPoolPrincipalAssignmentsDeleteCall{poolAssignmentRef{kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}, principalAssignmentName}}
}

// Do sends the request.
func (call *KustoPoolPrincipalAssignmentsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}

// DatabasePrincipalAssignmentsClient manages principal assignments on a database.
type DatabasePrincipalAssignmentsClient struct {
	c *Client
}

type databaseAssignmentRef struct {
	databaseRef
	principalAssignmentName string
}

func (r databaseAssignmentRef) request(method string) (*sdk.Request, error) {
	return r.c.newRequest(method, databasePath+"/principalAssignments/{principalAssignmentName}",
		r.c.subscriptionID, r.resourceGroupName, r.workspaceName, r.kustoPoolName, r.databaseName, r.principalAssignmentName)
}

func (d *DatabasePrincipalAssignmentsClient) ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, principalAssignmentName string) databaseAssignmentRef {
	return databaseAssignmentRef{databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName}, principalAssignmentName}
}

// DatabasePrincipalAssignmentsListCall lists the assignments of a database.
type DatabasePrincipalAssignmentsListCall struct {
	databaseRef
}

// List lists the assignments of a database.
func (d *DatabasePrincipalAssignmentsClient) List(resourceGroupName, workspaceName, kustoPoolName, databaseName string) *DatabasePrincipalAssignmentsListCall {
	return &DatabasePrincipalAssignmentsListCall{databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName}}
}

// Do sends the request.
func (call *DatabasePrincipalAssignmentsListCall) Do(ctx context.Context) (*DatabasePrincipalAssignmentListResult, error) {
	req, err := call.request(http.MethodGet, "/principalAssignments")
	if err != nil {
		return nil, err
	}
	return sdk.Do[DatabasePrincipalAssignmentListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// DatabasePrincipalAssignmentsGetCall is GET on a database assignment.
type DatabasePrincipalAssignmentsGetCall struct {
	databaseAssignmentRef
}

// Get returns a database assignment.
func (d *DatabasePrincipalAssignmentsClient) Get(resourceGroupName, workspaceName, kustoPoolName, databaseName, principalAssignmentName string) *DatabasePrincipalAssignmentsGetCall {
	return &DatabasePrincipalAssignmentsGetCall{d.ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, principalAssignmentName)}
}

// Do sends the request.
func (call *DatabasePrincipalAssignmentsGetCall) Do(ctx context.Context) (*DatabasePrincipalAssignment, error) {
	req, err := call.request(http.MethodGet)
	if err != nil {
		return nil, err
	}
	return sdk.Do[DatabasePrincipalAssignment](ctx, call.c.pipeline, req, http.StatusOK)
}

// DatabasePrincipalAssignmentsCreateOrUpdateCall is PUT on a database assignment.
type DatabasePrincipalAssignmentsCreateOrUpdateCall struct {
	databaseAssignmentRef
	parameters DatabasePrincipalAssignment
}

// CreateOrUpdate creates or replaces a database assignment (200 or 201).
func (d *DatabasePrincipalAssignmentsClient) CreateOrUpdate(resourceGroupName, workspaceName, kustoPoolName, databaseName, principalAssignmentName string, parameters DatabasePrincipalAssignment) *DatabasePrincipalAssignmentsCreateOrUpdateCall {
	return &DatabasePrincipalAssignmentsCreateOrUpdateCall{
		databaseAssignmentRef: d.ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, principalAssignmentName),
		parameters:            parameters,
	}
}

// Do sends the request.
func (call *DatabasePrincipalAssignmentsCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[DatabasePrincipalAssignment], error) {
	req, err := call.request(http.MethodPut)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[DatabasePrincipalAssignment](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// DatabasePrincipalAssignmentsDeleteCall is DELETE on a database assignment.
type DatabasePrincipalAssignmentsDeleteCall struct {
	databaseAssignmentRef
}

// Delete deletes a database assignment.
func (d *DatabasePrincipalAssignmentsClient) Delete(resourceGroupName, workspaceName, kustoPoolName, databaseName, principalAssignmentName string) *DatabasePrincipalAssignmentsDeleteCall {
	return &DatabasePrincipalAssignmentsDeleteCall{d.ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, principalAssignmentName)}
}

// Do sends the request.
func (call *DatabasePrincipalAssignmentsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}
