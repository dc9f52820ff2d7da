package billingbenefits

import (
	"time"

	"github.com/yaroslav/azrest/models"
)

// Sku names the benefit SKU, e.g. "Compute_Savings_Plan".
type Sku struct {
	Name *string `json:"name,omitempty"`
}

// Price is an amount in a currency.
type Price struct {
	CurrencyCode *string  `json:"currencyCode,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
}

// Commitment is the hourly spend a savings plan commits to.
type Commitment struct {
	Price
	Grain *CommitmentGrain `json:"grain,omitempty"`
}

// AppliedScopeProperties narrow a Single or ManagementGroup applied scope.
type AppliedScopeProperties struct {
	TenantID          *string `json:"tenantId,omitempty"`
	ManagementGroupID *string `json:"managementGroupId,omitempty"`
	SubscriptionID    *string `json:"subscriptionId,omitempty"`
	ResourceGroupID   *string `json:"resourceGroupId,omitempty"`
	DisplayName       *string `json:"displayName,omitempty"`
}

// ExtendedStatusInfo explains a provisioning or payment status.
type ExtendedStatusInfo struct {
	StatusCode *string `json:"statusCode,omitempty"`
	Message    *string `json:"message,omitempty"`
}

// PaymentDetail is one scheduled or completed payment.
type PaymentDetail struct {
	DueDate              *string             `json:"dueDate,omitempty"`
	PaymentDate          *string             `json:"paymentDate,omitempty"`
	PricingCurrencyTotal *Price              `json:"pricingCurrencyTotal,omitempty"`
	BillingCurrencyTotal *Price              `json:"billingCurrencyTotal,omitempty"`
	Status               *PaymentStatus      `json:"status,omitempty"`
	ExtendedStatusInfo   *ExtendedStatusInfo `json:"extendedStatusInfo,omitempty"`
	BillingAccount       *string             `json:"billingAccount,omitempty"`
}

// BillingPlanInformation is the payment schedule of an order.
type BillingPlanInformation struct {
	PricingCurrencyTotal *Price          `json:"pricingCurrencyTotal,omitempty"`
	StartDate            *string         `json:"startDate,omitempty"`
	NextPaymentDueDate   *string         `json:"nextPaymentDueDate,omitempty"`
	Transactions         []PaymentDetail `json:"transactions,omitempty"`
}

// PricingCurrencyTotal is a price over a duration.
type PricingCurrencyTotal struct {
	Price
	Duration *PricingCurrencyDuration `json:"duration,omitempty"`
}

// PurchaseRequest describes a renewal purchase.
type PurchaseRequest struct {
	Sku        *Sku                       `json:"sku,omitempty"`
	Properties *PurchaseRequestProperties `json:"properties,omitempty"`
}

// PurchaseRequestProperties are the properties of a renewal purchase.
type PurchaseRequestProperties struct {
	DisplayName            *string                 `json:"displayName,omitempty"`
	BillingScopeID         *string                 `json:"billingScopeId,omitempty"`
	Term                   *Term                   `json:"term,omitempty"`
	BillingPlan            *BillingPlan            `json:"billingPlan,omitempty"`
	AppliedScopeType       *AppliedScopeType       `json:"appliedScopeType,omitempty"`
	Commitment             *Commitment             `json:"commitment,omitempty"`
	EffectiveDateTime      *time.Time              `json:"effectiveDateTime,omitempty"`
	Renew                  *bool                   `json:"renew,omitempty"`
	AppliedScopeProperties *AppliedScopeProperties `json:"appliedScopeProperties,omitempty"`
}

// RenewProperties hold the purchase made when a plan renews.
type RenewProperties struct {
	PurchaseProperties *PurchaseRequest `json:"purchaseProperties,omitempty"`
}

// SavingsPlanOrderAliasModel requests the purchase of a savings plan order.
type SavingsPlanOrderAliasModel struct {
	models.Resource

	Sku        Sku                              `json:"sku"`
	Kind       *string                          `json:"kind,omitempty"`
	Properties *SavingsPlanOrderAliasProperties `json:"properties,omitempty"`
}

// SavingsPlanOrderAliasProperties are the properties of an order alias.
type SavingsPlanOrderAliasProperties struct {
	DisplayName            *string                 `json:"displayName,omitempty"`
	SavingsPlanOrderID     *string                 `json:"savingsPlanOrderId,omitempty"`
	ProvisioningState      *ProvisioningState      `json:"provisioningState,omitempty"`
	BillingScopeID         *string                 `json:"billingScopeId,omitempty"`
	Term                   *Term                   `json:"term,omitempty"`
	BillingPlan            *BillingPlan            `json:"billingPlan,omitempty"`
	AppliedScopeType       *AppliedScopeType       `json:"appliedScopeType,omitempty"`
	AppliedScopeProperties *AppliedScopeProperties `json:"appliedScopeProperties,omitempty"`
	Commitment             *Commitment             `json:"commitment,omitempty"`
	Renew                  *bool                   `json:"renew,omitempty"`
}

// ProvisioningStateOf returns the provisioning state or an empty string.
func (m *SavingsPlanOrderAliasModel) ProvisioningStateOf() string {
	if m.Properties == nil || m.Properties.ProvisioningState == nil {
		return ""
	}
	return string(*m.Properties.ProvisioningState)
}

// SavingsPlanOrderModel is a purchased savings plan order.
type SavingsPlanOrderModel struct {
	models.Resource

	Sku        Sku                              `json:"sku"`
	Properties *SavingsPlanOrderModelProperties `json:"properties,omitempty"`
}

// SavingsPlanOrderModelProperties are the properties of an order.
type SavingsPlanOrderModelProperties struct {
	DisplayName        *string                 `json:"displayName,omitempty"`
	ProvisioningState  *ProvisioningState      `json:"provisioningState,omitempty"`
	BillingScopeID     *string                 `json:"billingScopeId,omitempty"`
	BillingProfileID   *string                 `json:"billingProfileId,omitempty"`
	CustomerID         *string                 `json:"customerId,omitempty"`
	BillingAccountID   *string                 `json:"billingAccountId,omitempty"`
	Term               *Term                   `json:"term,omitempty"`
	BillingPlan        *BillingPlan            `json:"billingPlan,omitempty"`
	ExpiryDateTime     *time.Time              `json:"expiryDateTime,omitempty"`
	BenefitStartTime   *time.Time              `json:"benefitStartTime,omitempty"`
	PlanInformation    *BillingPlanInformation `json:"planInformation,omitempty"`
	SavingsPlans       []string                `json:"savingsPlans,omitempty"`
	ExtendedStatusInfo *ExtendedStatusInfo     `json:"extendedStatusInfo,omitempty"`
}

// SavingsPlanOrderModelList is one page of orders.
type SavingsPlanOrderModelList struct {
	Value    []SavingsPlanOrderModel `json:"value,omitempty"`
	NextLink *string                 `json:"nextLink,omitempty"`
}

// RoleAssignmentEntity is the role assignment created by an order elevation.
type RoleAssignmentEntity struct {
	ID         *string                         `json:"id,omitempty"`
	Name       *string                         `json:"name,omitempty"`
	Properties *RoleAssignmentEntityProperties `json:"properties,omitempty"`
}

// RoleAssignmentEntityProperties are the properties of an elevation role assignment.
type RoleAssignmentEntityProperties struct {
	PrincipalID      *string `json:"principalId,omitempty"`
	RoleDefinitionID *string `json:"roleDefinitionId,omitempty"`
	Scope            *string `json:"scope,omitempty"`
}

// SavingsPlanModel is one savings plan of an order.
type SavingsPlanModel struct {
	models.Resource

	Sku        Sku                         `json:"sku"`
	Properties *SavingsPlanModelProperties `json:"properties,omitempty"`
}

// SavingsPlanModelProperties are the properties of a savings plan.
type SavingsPlanModelProperties struct {
	DisplayName                  *string                 `json:"displayName,omitempty"`
	ProvisioningState            *ProvisioningState      `json:"provisioningState,omitempty"`
	DisplayProvisioningState     *string                 `json:"displayProvisioningState,omitempty"`
	BillingScopeID               *string                 `json:"billingScopeId,omitempty"`
	BillingProfileID             *string                 `json:"billingProfileId,omitempty"`
	CustomerID                   *string                 `json:"customerId,omitempty"`
	BillingAccountID             *string                 `json:"billingAccountId,omitempty"`
	Term                         *Term                   `json:"term,omitempty"`
	BillingPlan                  *BillingPlan            `json:"billingPlan,omitempty"`
	AppliedScopeType             *AppliedScopeType       `json:"appliedScopeType,omitempty"`
	UserFriendlyAppliedScopeType *string                 `json:"userFriendlyAppliedScopeType,omitempty"`
	AppliedScopeProperties       *AppliedScopeProperties `json:"appliedScopeProperties,omitempty"`
	Commitment                   *Commitment             `json:"commitment,omitempty"`
	EffectiveDateTime            *time.Time              `json:"effectiveDateTime,omitempty"`
	ExpiryDateTime               *time.Time              `json:"expiryDateTime,omitempty"`
	PurchaseDateTime             *time.Time              `json:"purchaseDateTime,omitempty"`
	BenefitStartTime             *time.Time              `json:"benefitStartTime,omitempty"`
	ExtendedStatusInfo           *ExtendedStatusInfo     `json:"extendedStatusInfo,omitempty"`
	Renew                        *bool                   `json:"renew,omitempty"`
	Utilization                  *Utilization            `json:"utilization,omitempty"`
	RenewSource                  *string                 `json:"renewSource,omitempty"`
	RenewDestination             *string                 `json:"renewDestination,omitempty"`
	RenewProperties              *RenewProperties        `json:"renewProperties,omitempty"`
}

// Utilization is the usage trend of a savings plan.
type Utilization struct {
	Trend      *string                 `json:"trend,omitempty"`
	Aggregates []UtilizationAggregates `json:"aggregates,omitempty"`
}

// UtilizationAggregates is one utilization sample.
type UtilizationAggregates struct {
	Grain     *float64 `json:"grain,omitempty"`
	GrainUnit *string  `json:"grainUnit,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	ValueUnit *string  `json:"valueUnit,omitempty"`
}

// SavingsPlanModelList is one page of the plans of an order.
type SavingsPlanModelList struct {
	Value    []SavingsPlanModel `json:"value,omitempty"`
	NextLink *string            `json:"nextLink,omitempty"`
}

// SavingsPlanModelListResult is one page of every plan the caller can see,
// with per-state counts in AdditionalProperties.
type SavingsPlanModelListResult struct {
	Value                []SavingsPlanModel   `json:"value,omitempty"`
	NextLink             *string              `json:"nextLink,omitempty"`
	AdditionalProperties []SavingsPlanSummary `json:"additionalProperties,omitempty"`
}

// SavingsPlanSummary is a named set of plan counts.
type SavingsPlanSummary struct {
	Name  *string                  `json:"name,omitempty"`
	Value *SavingsPlanSummaryCount `json:"value,omitempty"`
}

// SavingsPlanSummaryCount counts plans by state.
type SavingsPlanSummaryCount struct {
	SucceededCount  *float64 `json:"succeededCount,omitempty"`
	FailedCount     *float64 `json:"failedCount,omitempty"`
	ExpiringCount   *float64 `json:"expiringCount,omitempty"`
	ExpiredCount    *float64 `json:"expiredCount,omitempty"`
	PendingCount    *float64 `json:"pendingCount,omitempty"`
	CancelledCount  *float64 `json:"cancelledCount,omitempty"`
	ProcessingCount *float64 `json:"processingCount,omitempty"`
	NoBenefitCount  *float64 `json:"noBenefitCount,omitempty"`
	WarningCount    *float64 `json:"warningCount,omitempty"`
}

// SavingsPlanUpdateRequest is the PATCH body of a savings plan.
type SavingsPlanUpdateRequest struct {
	Properties *SavingsPlanUpdateRequestProperties `json:"properties,omitempty"`
}

// SavingsPlanUpdateRequestProperties are the patchable properties of a plan.
type SavingsPlanUpdateRequestProperties struct {
	DisplayName            *string                 `json:"displayName,omitempty"`
	AppliedScopeType       *AppliedScopeType       `json:"appliedScopeType,omitempty"`
	AppliedScopeProperties *AppliedScopeProperties `json:"appliedScopeProperties,omitempty"`
	Renew                  *bool                   `json:"renew,omitempty"`
	RenewProperties        *RenewProperties        `json:"renewProperties,omitempty"`
}

// SavingsPlanUpdateValidateRequest validates one or more plan updates.
type SavingsPlanUpdateValidateRequest struct {
	Benefits []SavingsPlanUpdateRequestProperties `json:"benefits,omitempty"`
}

// SavingsPlanPurchaseValidateRequest validates one or more purchases.
type SavingsPlanPurchaseValidateRequest struct {
	Benefits []SavingsPlanOrderAliasModel `json:"benefits,omitempty"`
}

// SavingsPlanValidateResponse is the result of a validation.
type SavingsPlanValidateResponse struct {
	Benefits []SavingsPlanValidResponseProperty `json:"benefits,omitempty"`
	NextLink *string                            `json:"nextLink,omitempty"`
}

// SavingsPlanValidResponseProperty is the validation result of one benefit.
type SavingsPlanValidResponseProperty struct {
	Valid      *bool   `json:"valid,omitempty"`
	ReasonCode *string `json:"reasonCode,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

// ReservationOrderAliasRequest requests the purchase of a reservation order.
type ReservationOrderAliasRequest struct {
	models.Resource

	Sku        Sku                                     `json:"sku"`
	Location   *string                                 `json:"location,omitempty"`
	Properties *ReservationOrderAliasRequestProperties `json:"properties,omitempty"`
}

// ReservedResourceProperties tune the reserved resource.
type ReservedResourceProperties struct {
	InstanceFlexibility *InstanceFlexibility `json:"instanceFlexibility,omitempty"`
}

// ReservationOrderAliasRequestProperties are the properties of a reservation purchase.
type ReservationOrderAliasRequestProperties struct {
	DisplayName                *string                     `json:"displayName,omitempty"`
	BillingScopeID             *string                     `json:"billingScopeId,omitempty"`
	Term                       *Term                       `json:"term,omitempty"`
	BillingPlan                *BillingPlan                `json:"billingPlan,omitempty"`
	AppliedScopeType           *AppliedScopeType           `json:"appliedScopeType,omitempty"`
	AppliedScopeProperties     *AppliedScopeProperties     `json:"appliedScopeProperties,omitempty"`
	Quantity                   *int32                      `json:"quantity,omitempty"`
	Renew                      *bool                       `json:"renew,omitempty"`
	ReservedResourceType       *ReservedResourceType       `json:"reservedResourceType,omitempty"`
	ReviewDateTime             *time.Time                  `json:"reviewDateTime,omitempty"`
	ReservedResourceProperties *ReservedResourceProperties `json:"reservedResourceProperties,omitempty"`
}

// ReservationOrderAliasResponse is a reservation order alias.
type ReservationOrderAliasResponse struct {
	models.Resource

	Sku        Sku                                      `json:"sku"`
	Location   *string                                  `json:"location,omitempty"`
	Properties *ReservationOrderAliasResponseProperties `json:"properties,omitempty"`
}

// ReservationOrderAliasResponseProperties are the properties of a reservation order alias.
type ReservationOrderAliasResponseProperties struct {
	DisplayName                *string                     `json:"displayName,omitempty"`
	ReservationOrderID         *string                     `json:"reservationOrderId,omitempty"`
	ProvisioningState          *ProvisioningState          `json:"provisioningState,omitempty"`
	BillingScopeID             *string                     `json:"billingScopeId,omitempty"`
	Term                       *Term                       `json:"term,omitempty"`
	BillingPlan                *BillingPlan                `json:"billingPlan,omitempty"`
	AppliedScopeType           *AppliedScopeType           `json:"appliedScopeType,omitempty"`
	AppliedScopeProperties     *AppliedScopeProperties     `json:"appliedScopeProperties,omitempty"`
	Quantity                   *int32                      `json:"quantity,omitempty"`
	Renew                      *bool                       `json:"renew,omitempty"`
	ReservedResourceType       *ReservedResourceType       `json:"reservedResourceType,omitempty"`
	ReviewDateTime             *time.Time                  `json:"reviewDateTime,omitempty"`
	ReservedResourceProperties *ReservedResourceProperties `json:"reservedResourceProperties,omitempty"`
}
