package billingbenefits

// Term is the length of a benefit commitment.
type Term string

const (
	TermP1Y Term = "P1Y"
	TermP3Y Term = "P3Y"
	TermP5Y Term = "P5Y"
)

// PossibleTermValues returns the known values for Term.
func PossibleTermValues() []Term {
	return []Term{TermP1Y, TermP3Y, TermP5Y}
}

// BillingPlan is how often a benefit is billed.
type BillingPlan string

const BillingPlanP1M BillingPlan = "P1M"

// PossibleBillingPlanValues returns the known values for BillingPlan.
func PossibleBillingPlanValues() []BillingPlan {
	return []BillingPlan{BillingPlanP1M}
}

// AppliedScopeType is the scope a benefit applies to.
type AppliedScopeType string

const (
	AppliedScopeTypeSingle          AppliedScopeType = "Single"
	AppliedScopeTypeShared          AppliedScopeType = "Shared"
	AppliedScopeTypeManagementGroup AppliedScopeType = "ManagementGroup"
)

// PossibleAppliedScopeTypeValues returns the known values for AppliedScopeType.
func PossibleAppliedScopeTypeValues() []AppliedScopeType {
	return []AppliedScopeType{AppliedScopeTypeSingle, AppliedScopeTypeShared, AppliedScopeTypeManagementGroup}
}

// ProvisioningState is the provisioning state of orders, plans and aliases.
type ProvisioningState string

const (
	ProvisioningStateCreating         ProvisioningState = "Creating"
	ProvisioningStatePendingBilling   ProvisioningState = "PendingBilling"
	ProvisioningStateConfirmedBilling ProvisioningState = "ConfirmedBilling"
	ProvisioningStateCreated          ProvisioningState = "Created"
	ProvisioningStateSucceeded        ProvisioningState = "Succeeded"
	ProvisioningStateCancelled        ProvisioningState = "Cancelled"
	ProvisioningStateExpired          ProvisioningState = "Expired"
	ProvisioningStateFailed           ProvisioningState = "Failed"
)

// PossibleProvisioningStateValues returns the known values for ProvisioningState.
func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateCreating,
		ProvisioningStatePendingBilling,
		ProvisioningStateConfirmedBilling,
		ProvisioningStateCreated,
		ProvisioningStateSucceeded,
		ProvisioningStateCancelled,
		ProvisioningStateExpired,
		ProvisioningStateFailed,
	}
}

// CommitmentGrain is the unit of a commitment amount.
type CommitmentGrain string

const CommitmentGrainHourly CommitmentGrain = "Hourly"

// PossibleCommitmentGrainValues returns the known values for CommitmentGrain.
func PossibleCommitmentGrainValues() []CommitmentGrain {
	return []CommitmentGrain{CommitmentGrainHourly}
}

// PaymentStatus is the status of one billing plan payment.
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "Succeeded"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusScheduled PaymentStatus = "Scheduled"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

// PossiblePaymentStatusValues returns the known values for PaymentStatus.
func PossiblePaymentStatusValues() []PaymentStatus {
	return []PaymentStatus{PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusScheduled, PaymentStatusCancelled}
}

// PricingCurrencyDuration is the period a pricing total covers.
type PricingCurrencyDuration string

const (
	PricingCurrencyDurationP1M PricingCurrencyDuration = "P1M"
	PricingCurrencyDurationP1Y PricingCurrencyDuration = "P1Y"
	PricingCurrencyDurationP3Y PricingCurrencyDuration = "P3Y"
)

// PossiblePricingCurrencyDurationValues returns the known values for PricingCurrencyDuration.
func PossiblePricingCurrencyDurationValues() []PricingCurrencyDuration {
	return []PricingCurrencyDuration{PricingCurrencyDurationP1M, PricingCurrencyDurationP1Y, PricingCurrencyDurationP3Y}
}

// InstanceFlexibility turns instance size flexibility on or off for a reservation.
type InstanceFlexibility string

const (
	InstanceFlexibilityOn  InstanceFlexibility = "On"
	InstanceFlexibilityOff InstanceFlexibility = "Off"
)

// PossibleInstanceFlexibilityValues returns the known values for InstanceFlexibility.
func PossibleInstanceFlexibilityValues() []InstanceFlexibility {
	return []InstanceFlexibility{InstanceFlexibilityOn, InstanceFlexibilityOff}
}

// ReservedResourceType is the kind of resource a reservation covers.
type ReservedResourceType string

const (
	ReservedResourceTypeVirtualMachines        ReservedResourceType = "VirtualMachines"
	ReservedResourceTypeSQLDatabases           ReservedResourceType = "SqlDatabases"
	ReservedResourceTypeSuseLinux              ReservedResourceType = "SuseLinux"
	ReservedResourceTypeCosmosDB               ReservedResourceType = "CosmosDb"
	ReservedResourceTypeRedHat                 ReservedResourceType = "RedHat"
	ReservedResourceTypeSQLDataWarehouse       ReservedResourceType = "SqlDataWarehouse"
	ReservedResourceTypeVMwareCloudSimple      ReservedResourceType = "VMwareCloudSimple"
	ReservedResourceTypeRedHatOsa              ReservedResourceType = "RedHatOsa"
	ReservedResourceTypeDatabricks             ReservedResourceType = "Databricks"
	ReservedResourceTypeAppService             ReservedResourceType = "AppService"
	ReservedResourceTypeManagedDisk            ReservedResourceType = "ManagedDisk"
	ReservedResourceTypeBlockBlob              ReservedResourceType = "BlockBlob"
	ReservedResourceTypeRedisCache             ReservedResourceType = "RedisCache"
	ReservedResourceTypeAzureDataExplorer      ReservedResourceType = "AzureDataExplorer"
	ReservedResourceTypeMySQL                  ReservedResourceType = "MySql"
	ReservedResourceTypeMariaDB                ReservedResourceType = "MariaDb"
	ReservedResourceTypePostgreSQL             ReservedResourceType = "PostgreSql"
	ReservedResourceTypeDedicatedHost          ReservedResourceType = "DedicatedHost"
	ReservedResourceTypeSapHana                ReservedResourceType = "SapHana"
	ReservedResourceTypeSQLAzureHybridBenefit  ReservedResourceType = "SqlAzureHybridBenefit"
	ReservedResourceTypeAVS                    ReservedResourceType = "AVS"
	ReservedResourceTypeDataFactory            ReservedResourceType = "DataFactory"
	ReservedResourceTypeNetAppStorage          ReservedResourceType = "NetAppStorage"
	ReservedResourceTypeAzureFiles             ReservedResourceType = "AzureFiles"
	ReservedResourceTypeSQLEdge                ReservedResourceType = "SqlEdge"
	ReservedResourceTypeVirtualMachineSoftware ReservedResourceType = "VirtualMachineSoftware"
)

// PossibleReservedResourceTypeValues returns the known values for ReservedResourceType.
func PossibleReservedResourceTypeValues() []ReservedResourceType {
	return []ReservedResourceType{
		ReservedResourceTypeVirtualMachines,
		ReservedResourceTypeSQLDatabases,
		ReservedResourceTypeSuseLinux,
		ReservedResourceTypeCosmosDB,
		ReservedResourceTypeRedHat,
		ReservedResourceTypeSQLDataWarehouse,
		ReservedResourceTypeVMwareCloudSimple,
		ReservedResourceTypeRedHatOsa,
		ReservedResourceTypeDatabricks,
		ReservedResourceTypeAppService,
		ReservedResourceTypeManagedDisk,
		ReservedResourceTypeBlockBlob,
		ReservedResourceTypeRedisCache,
		ReservedResourceTypeAzureDataExplorer,
		ReservedResourceTypeMySQL,
		ReservedResourceTypeMariaDB,
		ReservedResourceTypePostgreSQL,
		ReservedResourceTypeDedicatedHost,
		ReservedResourceTypeSapHana,
		ReservedResourceTypeSQLAzureHybridBenefit,
		ReservedResourceTypeAVS,
		ReservedResourceTypeDataFactory,
		ReservedResourceTypeNetAppStorage,
		ReservedResourceTypeAzureFiles,
		ReservedResourceTypeSQLEdge,
		ReservedResourceTypeVirtualMachineSoftware,
	}
}
