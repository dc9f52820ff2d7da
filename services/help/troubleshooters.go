package help

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// TroubleshootersClient drives guided troubleshooting sessions.
//
// Continue advances a session one step at a time until End. Restart starts
// a new session from the same solution.
type TroubleshootersClient struct {
	c *Client
}

type troubleshooterRef struct {
	c     *Client
	scope string
	name  string
}

func (r troubleshooterRef) request(method, suffix string) (*sdk.Request, error) {
	return r.c.newRequest(method, troubleshooterPath+suffix, r.scope, r.name)
}

// TroubleshootersCreateCall is PUT on a troubleshooter.
type TroubleshootersCreateCall struct {
	troubleshooterRef
	body TroubleshooterResource
}

// Create starts a session (200 or 201).
func (t *TroubleshootersClient) Create(scope, name string, body TroubleshooterResource) *TroubleshootersCreateCall {
	return &TroubleshootersCreateCall{troubleshooterRef: troubleshooterRef{t.c, scope, name}, body: body}
}

// Do sends the request.
func (call *TroubleshootersCreateCall) Do(ctx context.Context) (*sdk.Result[TroubleshooterResource], error) {
	req, err := call.request(http.MethodPut, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.DoResult[TroubleshooterResource](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// TroubleshootersGetCall is GET on a troubleshooter.
type TroubleshootersGetCall struct {
	troubleshooterRef
}

// Get returns a session with its steps so far.
func (t *TroubleshootersClient) Get(scope, name string) *TroubleshootersGetCall {
	return &TroubleshootersGetCall{troubleshooterRef{t.c, scope, name}}
}

// Do sends the request.
func (call *TroubleshootersGetCall) Do(ctx context.Context) (*TroubleshooterResource, error) {
	req, err := call.request(http.MethodGet, "")
	if err != nil {
		return nil, err
	}
	return sdk.Do[TroubleshooterResource](ctx, call.c.pipeline, req, http.StatusOK)
}

// TroubleshootersContinueCall is POST .../troubleshooters/{name}/continue.
type TroubleshootersContinueCall struct {
	troubleshooterRef
	body *ContinueRequestBody
}

// Continue answers the current step and moves to the next one.
func (t *TroubleshootersClient) Continue(scope, name string) *TroubleshootersContinueCall {
	return &TroubleshootersContinueCall{troubleshooterRef: troubleshooterRef{t.c, scope, name}}
}

// Body sets the answers for the current step.
func (call *TroubleshootersContinueCall) Body(body ContinueRequestBody) *TroubleshootersContinueCall {
	call.body = &body
	return call
}

// Do sends the request.
func (call *TroubleshootersContinueCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, "/continue")
	if err != nil {
		return err
	}
	if call.body != nil {
		if err := req.SetJSONBody(call.body); err != nil {
			return err
		}
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	return err
}

// TroubleshootersEndCall is POST .../troubleshooters/{name}/end.
type TroubleshootersEndCall struct {
	troubleshooterRef
}

// End finishes a session.
func (t *TroubleshootersClient) End(scope, name string) *TroubleshootersEndCall {
	return &TroubleshootersEndCall{troubleshooterRef{t.c, scope, name}}
}

// Do sends the request.
func (call *TroubleshootersEndCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, "/end")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	return err
}

// TroubleshootersRestartCall is POST .../troubleshooters/{name}/restart.
type TroubleshootersRestartCall struct {
	troubleshooterRef
}

// Restart starts a new session from the solution of this one.
func (t *TroubleshootersClient) Restart(scope, name string) *TroubleshootersRestartCall {
	return &TroubleshootersRestartCall{troubleshooterRef{t.c, scope, name}}
}

// Do sends the request. The response names the new troubleshooter.
func (call *TroubleshootersRestartCall) Do(ctx context.Context) (*RestartTroubleshooterResponse, error) {
	req, err := call.request(http.MethodPost, "/restart")
	if err != nil {
		return nil, err
	}
	return sdk.Do[RestartTroubleshooterResponse](ctx, call.c.pipeline, req, http.StatusOK)
}
