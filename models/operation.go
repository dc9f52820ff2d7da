package models

// Origin is the intended executor of an operation.
type Origin string

const (
	OriginUser       Origin = "user"
	OriginSystem     Origin = "system"
	OriginUserSystem Origin = "user,system"
)

// PossibleOriginValues returns the known values for Origin.
func PossibleOriginValues() []Origin {
	return []Origin{OriginUser, OriginSystem, OriginUserSystem}
}

// ActionType marks operations that are for internal use only.
type ActionType string

const (
	ActionTypeInternal ActionType = "Internal"
)

// PossibleActionTypeValues returns the known values for ActionType.
func PossibleActionTypeValues() []ActionType {
	return []ActionType{ActionTypeInternal}
}

// Operation describes one REST operation a resource provider exposes.
type Operation struct {
	// Name is "{provider}/{resource}/{operation}"
	Name *string `json:"name,omitempty"`

	// IsDataAction is true for data-plane operations
	IsDataAction *bool `json:"isDataAction,omitempty"`

	// Display is the localized display information
	Display *OperationDisplay `json:"display,omitempty"`

	// Origin is the intended executor
	Origin *Origin `json:"origin,omitempty"`

	// ActionType is set for internal-only operations
	ActionType *ActionType `json:"actionType,omitempty"`
}

// OperationDisplay is the localized display information for an Operation.
type OperationDisplay struct {
	Provider    *string `json:"provider,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Operation   *string `json:"operation,omitempty"`
	Description *string `json:"description,omitempty"`
}

// OperationListResult is one page of provider operations.
type OperationListResult struct {
	// Value is the list of operations on this page
	Value []Operation `json:"value,omitempty"`

	// NextLink is the URL of the next page; absent on the last page
	NextLink *string `json:"nextLink,omitempty"`
}

// NextPageLink returns the continuation link or an empty string.
func (r OperationListResult) NextPageLink() string {
	if r.NextLink == nil {
		return ""
	}
	return *r.NextLink
}
