package billingbenefits

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// SavingsPlanOrderAliasesClient purchases savings plans through order aliases.
type SavingsPlanOrderAliasesClient struct {
	c *Client
}

// SavingsPlanOrderAliasesCreateCall is PUT on an order alias.
type SavingsPlanOrderAliasesCreateCall struct {
	c    *Client
	name string
	body SavingsPlanOrderAliasModel
}

// Create purchases a savings plan under the alias name (200 or 201).
func (a *SavingsPlanOrderAliasesClient) Create(name string, body SavingsPlanOrderAliasModel) *SavingsPlanOrderAliasesCreateCall {
	return &SavingsPlanOrderAliasesCreateCall{c: a.c, name: name, body: body}
}

// Do sends the request.
func (call *SavingsPlanOrderAliasesCreateCall) Do(ctx context.Context) (*sdk.Result[SavingsPlanOrderAliasModel], error) {
	req, err := call.c.newRequest(http.MethodPut, provider+"/savingsPlanOrderAliases/{savingsPlanOrderAliasName}", call.name)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.DoResult[SavingsPlanOrderAliasModel](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// SavingsPlanOrderAliasesGetCall is GET on an order alias.
type SavingsPlanOrderAliasesGetCall struct {
	c    *Client
	name string
}

// Get returns an order alias.
func (a *SavingsPlanOrderAliasesClient) Get(name string) *SavingsPlanOrderAliasesGetCall {
	return &SavingsPlanOrderAliasesGetCall{c: a.c, name: name}
}

// Do sends the request.
func (call *SavingsPlanOrderAliasesGetCall) Do(ctx context.Context) (*SavingsPlanOrderAliasModel, error) {
	req, err := call.c.newRequest(http.MethodGet, provider+"/savingsPlanOrderAliases/{savingsPlanOrderAliasName}", call.name)
	if err != nil {
		return nil, err
	}
	return sdk.Do[SavingsPlanOrderAliasModel](ctx, call.c.pipeline, req, http.StatusOK)
}

// ReservationOrderAliasesClient purchases reservations through order aliases.
type ReservationOrderAliasesClient struct {
	c *Client
}

// ReservationOrderAliasesCreateCall is PUT on a reservation order alias.
type ReservationOrderAliasesCreateCall struct {
	c    *Client
	name string
	body ReservationOrderAliasRequest
}

// Create purchases a reservation under the alias name (200 or 201).
func (a *ReservationOrderAliasesClient) Create(name string, body ReservationOrderAliasRequest) *ReservationOrderAliasesCreateCall {
	return &ReservationOrderAliasesCreateCall{c: a.c, name: name, body: body}
}

// Do sends the request.
func (call *ReservationOrderAliasesCreateCall) Do(ctx context.Context) (*sdk.Result[ReservationOrderAliasResponse], error) {
	req, err := call.c.newRequest(http.MethodPut, provider+"/reservationOrderAliases/{reservationOrderAliasName}", call.name)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.DoResult[ReservationOrderAliasResponse](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// ReservationOrderAliasesGetCall is GET on a reservation order alias.
type ReservationOrderAliasesGetCall struct {
	c    *Client
	name string
}

// Get returns a reservation order alias.
func (a *ReservationOrderAliasesClient) Get(name string) *ReservationOrderAliasesGetCall {
	return &ReservationOrderAliasesGetCall{c: a.c, name: name}
}

// Do sends the request.
func (call *ReservationOrderAliasesGetCall) Do(ctx context.Context) (*ReservationOrderAliasResponse, error) {
	req, err := call.c.newRequest(http.MethodGet, provider+"/reservationOrderAliases/{reservationOrderAliasName}", call.name)
	if err != nil {
		return nil, err
	}
	return sdk.Do[ReservationOrderAliasResponse](ctx, call.c.pipeline, req, http.StatusOK)
}
