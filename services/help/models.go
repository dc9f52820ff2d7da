package help

import (
	"encoding/json"

	"github.com/yaroslav/azrest/models"
)

// CheckNameAvailabilityRequest asks whether a resource name is free under a scope.
type CheckNameAvailabilityRequest struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// CheckNameAvailabilityResponse is the answer to a CheckNameAvailabilityRequest.
type CheckNameAvailabilityResponse struct {
	NameAvailable *bool   `json:"nameAvailable,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	Message       *string `json:"message,omitempty"`
}

// DiagnosticResource runs one or more insight diagnostics against a scope.
type DiagnosticResource struct {
	models.ProxyResource

	Properties *DiagnosticResourceProperties `json:"properties,omitempty"`
}

// DiagnosticResourceProperties are the properties of a diagnostic resource.
type DiagnosticResourceProperties struct {
	GlobalParameters  map[string]string      `json:"globalParameters,omitempty"`
	Insights          []DiagnosticInvocation `json:"insights,omitempty"`
	AcceptedAt        *string                `json:"acceptedAt,omitempty"`
	ProvisioningState *ProvisioningState     `json:"provisioningState,omitempty"`
	Diagnostics       []Diagnostic           `json:"diagnostics,omitempty"`
}

// ProvisioningStateOf returns the provisioning state or an empty string.
func (d *DiagnosticResource) ProvisioningStateOf() string {
	if d.Properties == nil || d.Properties.ProvisioningState == nil {
		return ""
	}
	return string(*d.Properties.ProvisioningState)
}

// DiagnosticInvocation names one diagnostic to run.
type DiagnosticInvocation struct {
	SolutionID           *string           `json:"solutionId,omitempty"`
	AdditionalParameters map[string]string `json:"additionalParameters,omitempty"`
}

// Diagnostic is the result of one diagnostic.
type Diagnostic struct {
	SolutionID *string           `json:"solutionId,omitempty"`
	Status     *DiagnosticStatus `json:"status,omitempty"`
	Insights   []Insight         `json:"insights,omitempty"`
	Error      *Error            `json:"error,omitempty"`
}

// Error is a diagnostic failure.
type Error struct {
	Code    *string `json:"code,omitempty"`
	Type    *string `json:"type,omitempty"`
	Message *string `json:"message,omitempty"`
	Details []Error `json:"details,omitempty"`
}

// ErrorDetail is a troubleshooter step failure.
type ErrorDetail struct {
	Code           *string               `json:"code,omitempty"`
	Message        *string               `json:"message,omitempty"`
	Target         *string               `json:"target,omitempty"`
	Details        []ErrorDetail         `json:"details,omitempty"`
	AdditionalInfo []ErrorAdditionalInfo `json:"additionalInfo,omitempty"`
}

// ErrorAdditionalInfo is typed extra data attached to an ErrorDetail.
type ErrorAdditionalInfo struct {
	Type *string         `json:"type,omitempty"`
	Info json.RawMessage `json:"info,omitempty"`
}

// Insight is a finding produced by a diagnostic.
type Insight struct {
	ID              *string          `json:"id,omitempty"`
	Title           *string          `json:"title,omitempty"`
	Results         *string          `json:"results,omitempty"`
	ImportanceLevel *ImportanceLevel `json:"importanceLevel,omitempty"`
}

// DiscoveryResponse is one page of solutions discovered for a scope.
type DiscoveryResponse struct {
	Value    []SolutionMetadataResource `json:"value,omitempty"`
	NextLink *string                    `json:"nextLink,omitempty"`
}

// SolutionMetadataResource is a discovered solution.
type SolutionMetadataResource struct {
	models.ProxyResource

	Properties *Solutions `json:"properties,omitempty"`
}

// Solutions lists the solution metadata of a discovery result.
type Solutions struct {
	Solutions []SolutionMetadataProperties `json:"solutions,omitempty"`
}

// SolutionMetadataProperties describe a discoverable solution.
type SolutionMetadataProperties struct {
	SolutionID     *string       `json:"solutionId,omitempty"`
	SolutionType   *SolutionType `json:"solutionType,omitempty"`
	Description    *string       `json:"description,omitempty"`
	RequiredInputs []string      `json:"requiredInputs,omitempty"`
}

// SolutionResource is a solution instantiated for a scope.
type SolutionResource struct {
	ID         *string                     `json:"id,omitempty"`
	Type       *string                     `json:"type,omitempty"`
	Name       *string                     `json:"name,omitempty"`
	Properties *SolutionResourceProperties `json:"properties,omitempty"`
}

// SolutionResourceProperties are the properties of a solution.
type SolutionResourceProperties struct {
	TriggerCriteria   []TriggerCriterion `json:"triggerCriteria,omitempty"`
	Parameters        map[string]string  `json:"parameters,omitempty"`
	SolutionID        *string            `json:"solutionId,omitempty"`
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`
	Title             *string            `json:"title,omitempty"`
	Content           *string            `json:"content,omitempty"`
	ReplacementMaps   *ReplacementMaps   `json:"replacementMaps,omitempty"`
	Sections          []Section          `json:"sections,omitempty"`
}

// SolutionPatchRequestBody is the PATCH body of a solution.
type SolutionPatchRequestBody struct {
	Properties *SolutionResourceProperties `json:"properties,omitempty"`
}

// TriggerCriterion selects the solution to render.
type TriggerCriterion struct {
	Name  *TriggerCriterionName `json:"name,omitempty"`
	Value *string               `json:"value,omitempty"`
}

// Section is a titled part of a solution.
type Section struct {
	Title           *string          `json:"title,omitempty"`
	Content         *string          `json:"content,omitempty"`
	ReplacementMaps *ReplacementMaps `json:"replacementMaps,omitempty"`
}

// ReplacementMaps hold the dynamic content spliced into solution markdown.
type ReplacementMaps struct {
	WebResults         []WebResult                `json:"webResults,omitempty"`
	Diagnostics        []SolutionsDiagnostic      `json:"diagnostics,omitempty"`
	Troubleshooters    []SolutionsTroubleshooters `json:"troubleshooters,omitempty"`
	MetricsBasedCharts []MetricsBasedChart        `json:"metricsBasedCharts,omitempty"`
	Videos             []Video                    `json:"videos,omitempty"`
	VideoGroups        []VideoGroup               `json:"videoGroups,omitempty"`
}

// WebResult is a set of search results for a replacement key.
type WebResult struct {
	ReplacementKey *string        `json:"replacementKey,omitempty"`
	SearchResults  []SearchResult `json:"searchResults,omitempty"`
}

// SearchResult is one article or community answer.
type SearchResult struct {
	SolutionID *string     `json:"solutionId,omitempty"`
	Content    *string     `json:"content,omitempty"`
	Title      *string     `json:"title,omitempty"`
	Confidence *Confidence `json:"confidence,omitempty"`
	Source     *string     `json:"source,omitempty"`
	ResultType *ResultType `json:"resultType,omitempty"`
	Rank       *int32      `json:"rank,omitempty"`
	Link       *string     `json:"link,omitempty"`
}

// SolutionsDiagnostic is a diagnostic embedded in a solution.
type SolutionsDiagnostic struct {
	SolutionID         *string           `json:"solutionId,omitempty"`
	Status             *DiagnosticStatus `json:"status,omitempty"`
	StatusDetails      *string           `json:"statusDetails,omitempty"`
	ReplacementKey     *string           `json:"replacementKey,omitempty"`
	RequiredParameters []string          `json:"requiredParameters,omitempty"`
	Insights           []Insight         `json:"insights,omitempty"`
}

// SolutionsTroubleshooters is a troubleshooter linked from a solution.
type SolutionsTroubleshooters struct {
	SolutionID *string `json:"solutionId,omitempty"`
	Title      *string `json:"title,omitempty"`
	Summary    *string `json:"summary,omitempty"`
}

// MetricsBasedChart is a chart embedded in a solution.
type MetricsBasedChart struct {
	Name             *string          `json:"name,omitempty"`
	AggregationType  *AggregationType `json:"aggregationType,omitempty"`
	TimeSpanDuration *string          `json:"timeSpanDuration,omitempty"`
	Title            *string          `json:"title,omitempty"`
	FilterGroup      *FilterGroup     `json:"filterGroup,omitempty"`
	ReplacementKey   *string          `json:"replacementKey,omitempty"`
}

// FilterGroup is a set of chart filters.
type FilterGroup struct {
	Filter []Filter `json:"filter,omitempty"`
}

// Filter is one chart filter.
type Filter struct {
	Name     *string `json:"name,omitempty"`
	Values   *string `json:"values,omitempty"`
	Operator *string `json:"operator,omitempty"`
}

// VideoGroupVideo is a video link.
type VideoGroupVideo struct {
	Src   *string `json:"src,omitempty"`
	Title *string `json:"title,omitempty"`
}

// Video is a video with its replacement key.
type Video struct {
	VideoGroupVideo

	ReplacementKey *string `json:"replacementKey,omitempty"`
}

// VideoGroup is a set of videos for one replacement key.
type VideoGroup struct {
	Videos         []VideoGroupVideo `json:"videos,omitempty"`
	ReplacementKey *string           `json:"replacementKey,omitempty"`
}

// TroubleshooterResource is a guided troubleshooting session.
type TroubleshooterResource struct {
	models.ProxyResource

	Properties *TroubleshooterInstanceProperties `json:"properties,omitempty"`
}

// TroubleshooterInstanceProperties are the properties of a troubleshooter.
type TroubleshooterInstanceProperties struct {
	SolutionID        *string            `json:"solutionId,omitempty"`
	Parameters        map[string]string  `json:"parameters,omitempty"`
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`
	Steps             []Step             `json:"steps,omitempty"`
}

// CurrentStep returns the last step of the session, or nil before the first.
func (t *TroubleshooterResource) CurrentStep() *Step {
	if t.Properties == nil || len(t.Properties.Steps) == 0 {
		return nil
	}
	return &t.Properties.Steps[len(t.Properties.Steps)-1]
}

// Step is one step of a troubleshooter.
type Step struct {
	ID                         *string               `json:"id,omitempty"`
	Title                      *string               `json:"title,omitempty"`
	Description                *string               `json:"description,omitempty"`
	Guidance                   *string               `json:"guidance,omitempty"`
	ExecutionStatus            *ExecutionStatus      `json:"executionStatus,omitempty"`
	ExecutionStatusDescription *string               `json:"executionStatusDescription,omitempty"`
	Type                       *StepType             `json:"type,omitempty"`
	IsLastStep                 *bool                 `json:"isLastStep,omitempty"`
	Inputs                     []StepInput           `json:"inputs,omitempty"`
	AutomatedCheckResults      *AutomatedCheckResult `json:"automatedCheckResults,omitempty"`
	Insights                   []Insight             `json:"insights,omitempty"`
	Error                      *ErrorDetail          `json:"error,omitempty"`
}

// StepInput is a question asked by a step.
type StepInput struct {
	QuestionID                   *string                       `json:"questionId,omitempty"`
	QuestionType                 *string                       `json:"questionType,omitempty"`
	QuestionContent              *string                       `json:"questionContent,omitempty"`
	QuestionContentType          *QuestionContentType          `json:"questionContentType,omitempty"`
	ResponseHint                 *string                       `json:"responseHint,omitempty"`
	RecommendedOption            *string                       `json:"recommendedOption,omitempty"`
	SelectedOptionValue          *string                       `json:"selectedOptionValue,omitempty"`
	ResponseValidationProperties *ResponseValidationProperties `json:"responseValidationProperties,omitempty"`
	ResponseOptions              []ResponseOption              `json:"responseOptions,omitempty"`
}

// ResponseOption is a selectable answer.
type ResponseOption struct {
	Key   *string `json:"key,omitempty"`
	Value *string `json:"value,omitempty"`
}

// ResponseValidationProperties constrain a free-text answer.
type ResponseValidationProperties struct {
	Regex                  *string `json:"regex,omitempty"`
	IsRequired             *bool   `json:"isRequired,omitempty"`
	ValidationErrorMessage *string `json:"validationErrorMessage,omitempty"`
	MaxLength              *int64  `json:"maxLength,omitempty"`
}

// AutomatedCheckResult is the outcome of an automated step.
type AutomatedCheckResult struct {
	Result *string                   `json:"result,omitempty"`
	Type   *AutomatedCheckResultType `json:"type,omitempty"`
}

// ContinueRequestBody answers the questions of the current step.
type ContinueRequestBody struct {
	StepID    *string                  `json:"stepId,omitempty"`
	Responses []TroubleshooterResponse `json:"responses,omitempty"`
}

// TroubleshooterResponse is one answer.
type TroubleshooterResponse struct {
	QuestionID   *string       `json:"questionId,omitempty"`
	QuestionType *QuestionType `json:"questionType,omitempty"`
	Response     *string       `json:"response,omitempty"`
}

// RestartTroubleshooterResponse names the troubleshooter created by a restart.
type RestartTroubleshooterResponse struct {
	TroubleshooterResourceName *string `json:"troubleshooterResourceName,omitempty"`
}
