package help

// DiagnosticStatus is the outcome of one insight diagnostic.
type DiagnosticStatus string

const (
	DiagnosticStatusFailed        DiagnosticStatus = "Failed"
	DiagnosticStatusMissingInputs DiagnosticStatus = "MissingInputs"
	DiagnosticStatusRunning       DiagnosticStatus = "Running"
	DiagnosticStatusSucceeded     DiagnosticStatus = "Succeeded"
	DiagnosticStatusTimeout       DiagnosticStatus = "Timeout"
)

// PossibleDiagnosticStatusValues returns the known values for DiagnosticStatus.
func PossibleDiagnosticStatusValues() []DiagnosticStatus {
	return []DiagnosticStatus{
		DiagnosticStatusFailed,
		DiagnosticStatusMissingInputs,
		DiagnosticStatusRunning,
		DiagnosticStatusSucceeded,
		DiagnosticStatusTimeout,
	}
}

// ProvisioningState is the provisioning state of a diagnostic, solution or troubleshooter.
type ProvisioningState string

const (
	ProvisioningStateSucceeded       ProvisioningState = "Succeeded"
	ProvisioningStatePartialComplete ProvisioningState = "PartialComplete"
	ProvisioningStateFailed          ProvisioningState = "Failed"
	ProvisioningStateCanceled        ProvisioningState = "Canceled"
	ProvisioningStateRunning         ProvisioningState = "Running"
	ProvisioningStateAutoContinue    ProvisioningState = "AutoContinue"
)

// PossibleProvisioningStateValues returns the known values for ProvisioningState.
func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateSucceeded,
		ProvisioningStatePartialComplete,
		ProvisioningStateFailed,
		ProvisioningStateCanceled,
		ProvisioningStateRunning,
		ProvisioningStateAutoContinue,
	}
}

// SolutionType distinguishes diagnostic solutions from guided ones.
type SolutionType string

const (
	SolutionTypeDiagnostics SolutionType = "Diagnostics"
	SolutionTypeSolutions   SolutionType = "Solutions"
)

// PossibleSolutionTypeValues returns the known values for SolutionType.
func PossibleSolutionTypeValues() []SolutionType {
	return []SolutionType{
		SolutionTypeDiagnostics,
		SolutionTypeSolutions,
	}
}

// ImportanceLevel ranks an insight.
type ImportanceLevel string

const (
	ImportanceLevelCritical    ImportanceLevel = "Critical"
	ImportanceLevelWarning     ImportanceLevel = "Warning"
	ImportanceLevelInformation ImportanceLevel = "Information"
)

// PossibleImportanceLevelValues returns the known values for ImportanceLevel.
func PossibleImportanceLevelValues() []ImportanceLevel {
	return []ImportanceLevel{
		ImportanceLevelCritical,
		ImportanceLevelWarning,
		ImportanceLevelInformation,
	}
}

// AggregationType is the aggregation of a metrics chart.
type AggregationType string

const (
	AggregationTypeSum   AggregationType = "Sum"
	AggregationTypeAvg   AggregationType = "Avg"
	AggregationTypeCount AggregationType = "Count"
	AggregationTypeMin   AggregationType = "Min"
	AggregationTypeMax   AggregationType = "Max"
)

// PossibleAggregationTypeValues returns the known values for AggregationType.
func PossibleAggregationTypeValues() []AggregationType {
	return []AggregationType{
		AggregationTypeSum,
		AggregationTypeAvg,
		AggregationTypeCount,
		AggregationTypeMin,
		AggregationTypeMax,
	}
}

// StepType is the kind of a troubleshooter step.
type StepType string

const (
	StepTypeDecision       StepType = "Decision"
	StepTypeSolution       StepType = "Solution"
	StepTypeInsight        StepType = "Insight"
	StepTypeAutomatedCheck StepType = "AutomatedCheck"
)

// PossibleStepTypeValues returns the known values for StepType.
func PossibleStepTypeValues() []StepType {
	return []StepType{
		StepTypeDecision,
		StepTypeSolution,
		StepTypeInsight,
		StepTypeAutomatedCheck,
	}
}

// ExecutionStatus is the outcome of a troubleshooter step.
type ExecutionStatus string

const (
	ExecutionStatusSuccess ExecutionStatus = "Success"
	ExecutionStatusRunning ExecutionStatus = "Running"
	ExecutionStatusFailed  ExecutionStatus = "Failed"
	ExecutionStatusWarning ExecutionStatus = "Warning"
)

// PossibleExecutionStatusValues returns the known values for ExecutionStatus.
func PossibleExecutionStatusValues() []ExecutionStatus {
	return []ExecutionStatus{
		ExecutionStatusSuccess,
		ExecutionStatusRunning,
		ExecutionStatusFailed,
		ExecutionStatusWarning,
	}
}

// QuestionType is the input control of a troubleshooter question.
type QuestionType string

const (
	QuestionTypeRadioButton      QuestionType = "RadioButton"
	QuestionTypeDropdown         QuestionType = "Dropdown"
	QuestionTypeTextInput        QuestionType = "TextInput"
	QuestionTypeMultiLineInfoBox QuestionType = "MultiLineInfoBox"
)

// PossibleQuestionTypeValues returns the known values for QuestionType.
func PossibleQuestionTypeValues() []QuestionType {
	return []QuestionType{
		QuestionTypeRadioButton,
		QuestionTypeDropdown,
		QuestionTypeTextInput,
		QuestionTypeMultiLineInfoBox,
	}
}

// QuestionContentType is the markup of a question.
type QuestionContentType string

const (
	QuestionContentTypeText     QuestionContentType = "Text"
	QuestionContentTypeHtml     QuestionContentType = "Html"
	QuestionContentTypeMarkdown QuestionContentType = "Markdown"
)

// PossibleQuestionContentTypeValues returns the known values for QuestionContentType.
func PossibleQuestionContentTypeValues() []QuestionContentType {
	return []QuestionContentType{
		QuestionContentTypeText,
		QuestionContentTypeHtml,
		QuestionContentTypeMarkdown,
	}
}

// TriggerCriterionName is the key a solution is triggered by.
type TriggerCriterionName string

const (
	TriggerCriterionNameSolutionID              TriggerCriterionName = "SolutionId"
	TriggerCriterionNameProblemClassificationID TriggerCriterionName = "ProblemClassificationId"
	TriggerCriterionNameReplacementKey          TriggerCriterionName = "ReplacementKey"
)

// PossibleTriggerCriterionNameValues returns the known values for TriggerCriterionName.
func PossibleTriggerCriterionNameValues() []TriggerCriterionName {
	return []TriggerCriterionName{
		TriggerCriterionNameSolutionID,
		TriggerCriterionNameProblemClassificationID,
		TriggerCriterionNameReplacementKey,
	}
}

// Confidence is the confidence of a search result.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// PossibleConfidenceValues returns the known values for Confidence.
func PossibleConfidenceValues() []Confidence {
	return []Confidence{
		ConfidenceLow,
		ConfidenceMedium,
		ConfidenceHigh,
	}
}

// ResultType is the source of a search result.
type ResultType string

const (
	ResultTypeCommunity     ResultType = "Community"
	ResultTypeDocumentation ResultType = "Documentation"
)

// PossibleResultTypeValues returns the known values for ResultType.
func PossibleResultTypeValues() []ResultType {
	return []ResultType{
		ResultTypeCommunity,
		ResultTypeDocumentation,
	}
}

// AutomatedCheckResultType is the outcome of an automated check.
type AutomatedCheckResultType string

const (
	AutomatedCheckResultTypeSuccess     AutomatedCheckResultType = "Success"
	AutomatedCheckResultTypeWarning     AutomatedCheckResultType = "Warning"
	AutomatedCheckResultTypeError       AutomatedCheckResultType = "Error"
	AutomatedCheckResultTypeInformation AutomatedCheckResultType = "Information"
)

// PossibleAutomatedCheckResultTypeValues returns the known values for AutomatedCheckResultType.
func PossibleAutomatedCheckResultTypeValues() []AutomatedCheckResultType {
	return []AutomatedCheckResultType{
		AutomatedCheckResultTypeSuccess,
		AutomatedCheckResultTypeWarning,
		AutomatedCheckResultTypeError,
		AutomatedCheckResultTypeInformation,
	}
}
