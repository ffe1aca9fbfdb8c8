/*
Copyright 2019 Alexander Eldeib.
*/

package computeschedule

import (
	"github.com/alexeldeib/azmodels/pkg/openenum"
)

// ActionType - Extensible enum. Indicates the action type. "Internal" refers to actions that are for internal only APIs.
type ActionType string

const (
	ActionTypeInternal ActionType = "Internal"
)

var actionTypeValues = openenum.New("ActionType", []ActionType{
	ActionTypeInternal,
})

// PossibleActionTypeValues returns the possible values for the ActionType const type.
func PossibleActionTypeValues() []ActionType {
	return actionTypeValues.Values()
}

func (v ActionType) MarshalJSON() ([]byte, error) {
	return actionTypeValues.Marshal(v)
}

func (v *ActionType) UnmarshalJSON(b []byte) error {
	return actionTypeValues.Unmarshal(b, v)
}

// DeadlineType - The types of deadlines supported by ScheduledActions.
type DeadlineType string

const (
	// DeadlineTypeUnknown - Default value of Unknown.
	DeadlineTypeUnknown DeadlineType = "Unknown"
	// DeadlineTypeInitiateAt - Initiate the operation at the given deadline.
	DeadlineTypeInitiateAt DeadlineType = "InitiateAt"
	// DeadlineTypeCompleteBy - Complete the operation by the given deadline.
	DeadlineTypeCompleteBy DeadlineType = "CompleteBy"
)

var deadlineTypeValues = openenum.New("DeadlineType", []DeadlineType{
	DeadlineTypeUnknown,
	DeadlineTypeInitiateAt,
	DeadlineTypeCompleteBy,
}, openenum.Default("Unknown"))

// PossibleDeadlineTypeValues returns the possible values for the DeadlineType const type.
func PossibleDeadlineTypeValues() []DeadlineType {
	return deadlineTypeValues.Values()
}

func (v DeadlineType) MarshalJSON() ([]byte, error) {
	return deadlineTypeValues.Marshal(v)
}

func (v *DeadlineType) UnmarshalJSON(b []byte) error {
	return deadlineTypeValues.Unmarshal(b, v)
}

// OperationState - Values that define the states of operations in Scheduled Actions.
type OperationState string

const (
	OperationStateUnknown           OperationState = "Unknown"
	OperationStatePendingScheduling OperationState = "PendingScheduling"
	OperationStateScheduled         OperationState = "Scheduled"
	OperationStatePendingExecution  OperationState = "PendingExecution"
	OperationStateExecuting         OperationState = "Executing"
	OperationStateSucceeded         OperationState = "Succeeded"
	OperationStateFailed            OperationState = "Failed"
	OperationStateCancelled         OperationState = "Cancelled"
	OperationStateBlocked           OperationState = "Blocked"
)

var operationStateValues = openenum.New("OperationState", []OperationState{
	OperationStateUnknown,
	OperationStatePendingScheduling,
	OperationStateScheduled,
	OperationStatePendingExecution,
	OperationStateExecuting,
	OperationStateSucceeded,
	OperationStateFailed,
	OperationStateCancelled,
	OperationStateBlocked,
}, openenum.Default("Unknown"))

// PossibleOperationStateValues returns the possible values for the OperationState const type.
func PossibleOperationStateValues() []OperationState {
	return operationStateValues.Values()
}

func (v OperationState) MarshalJSON() ([]byte, error) {
	return operationStateValues.Marshal(v)
}

func (v *OperationState) UnmarshalJSON(b []byte) error {
	return operationStateValues.Unmarshal(b, v)
}

// Terminal reports whether the operation will not change state again.
func (v OperationState) Terminal() bool {
	switch v {
	case OperationStateSucceeded, OperationStateFailed, OperationStateCancelled:
		return true
	}
	return false
}

// OptimizationPreference - The preferences customers can select to optimize their requests to ScheduledActions.
type OptimizationPreference string

const (
	OptimizationPreferenceCost                     OptimizationPreference = "Cost"
	OptimizationPreferenceAvailability             OptimizationPreference = "Availability"
	OptimizationPreferenceCostAvailabilityBalanced OptimizationPreference = "CostAvailabilityBalanced"
)

var optimizationPreferenceValues = openenum.New("OptimizationPreference", []OptimizationPreference{
	OptimizationPreferenceCost,
	OptimizationPreferenceAvailability,
	OptimizationPreferenceCostAvailabilityBalanced,
})

// PossibleOptimizationPreferenceValues returns the possible values for the OptimizationPreference const type.
func PossibleOptimizationPreferenceValues() []OptimizationPreference {
	return optimizationPreferenceValues.Values()
}

func (v OptimizationPreference) MarshalJSON() ([]byte, error) {
	return optimizationPreferenceValues.Marshal(v)
}

func (v *OptimizationPreference) UnmarshalJSON(b []byte) error {
	return optimizationPreferenceValues.Unmarshal(b, v)
}

// Origin - The intended executor of the operation; as in Resource Based Access Control (RBAC) and audit logs UX. Default
// value is "user,system"
type Origin string

const (
	OriginUser       Origin = "user"
	OriginSystem     Origin = "system"
	OriginUserSystem Origin = "user,system"
)

var originValues = openenum.New("Origin", []Origin{
	OriginUser,
	OriginSystem,
	OriginUserSystem,
})

// PossibleOriginValues returns the possible values for the Origin const type.
func PossibleOriginValues() []Origin {
	return originValues.Values()
}

func (v Origin) MarshalJSON() ([]byte, error) {
	return originValues.Marshal(v)
}

func (v *Origin) UnmarshalJSON(b []byte) error {
	return originValues.Unmarshal(b, v)
}

// ResourceOperationType - Type of operation performed on the resources.
type ResourceOperationType string

const (
	ResourceOperationTypeUnknown    ResourceOperationType = "Unknown"
	ResourceOperationTypeStart      ResourceOperationType = "Start"
	ResourceOperationTypeDeallocate ResourceOperationType = "Deallocate"
	ResourceOperationTypeHibernate  ResourceOperationType = "Hibernate"
)

var resourceOperationTypeValues = openenum.New("ResourceOperationType", []ResourceOperationType{
	ResourceOperationTypeUnknown,
	ResourceOperationTypeStart,
	ResourceOperationTypeDeallocate,
	ResourceOperationTypeHibernate,
}, openenum.Default("Unknown"))

// PossibleResourceOperationTypeValues returns the possible values for the ResourceOperationType const type.
func PossibleResourceOperationTypeValues() []ResourceOperationType {
	return resourceOperationTypeValues.Values()
}

func (v ResourceOperationType) MarshalJSON() ([]byte, error) {
	return resourceOperationTypeValues.Marshal(v)
}

func (v *ResourceOperationType) UnmarshalJSON(b []byte) error {
	return resourceOperationTypeValues.Unmarshal(b, v)
}

// Enums indexes every enumeration declared by this package.
var Enums = openenum.NewCatalog(
	actionTypeValues,
	deadlineTypeValues,
	operationStateValues,
	optimizationPreferenceValues,
	originValues,
	resourceOperationTypeValues,
)
