/*
Copyright 2019 Alexander Eldeib.
*/

// Package computeschedule contains the request and response models of the
// Microsoft.ComputeSchedule scheduled actions API.
package computeschedule

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// APIVersion is the service version these models describe.
const APIVersion = "2024-08-15-preview"

// ExecutionParameters - Extra details needed to run the user's request.
type ExecutionParameters struct {
	// Details that could optimize the user's request.
	OptimizationPreference *OptimizationPreference `json:"optimizationPreference,omitempty"`

	// Retry policy the user can pass.
	RetryPolicy *RetryPolicy `json:"retryPolicy,omitempty"`
}

// RetryPolicy - The retry policy for the user request.
type RetryPolicy struct {
	// Retry count for user request.
	RetryCount *int32 `json:"retryCount,omitempty"`

	// Retry window in minutes for user request.
	RetryWindowInMinutes *int32 `json:"retryWindowInMinutes,omitempty"`
}

// Schedule - The schedule details for the user request.
type Schedule struct {
	// REQUIRED; The deadline for the operation.
	DeadLine *date.Time `json:"deadLine,omitempty"`

	// REQUIRED; The deadlinetype of the operation, this can either be InitiateAt or CompleteBy.
	DeadlineType *DeadlineType `json:"deadlineType,omitempty"`

	// REQUIRED; The timezone for the operation.
	TimeZone *string `json:"timeZone,omitempty"`
}

// NewSchedule returns a Schedule with its required fields set.
func NewSchedule(deadline date.Time, timeZone string, deadlineType DeadlineType) *Schedule {
	return &Schedule{
		DeadLine:     &deadline,
		TimeZone:     &timeZone,
		DeadlineType: &deadlineType,
	}
}

// Resources - The resources needed for the user request.
type Resources struct {
	// REQUIRED; The resource ids used for the request.
	IDs []*string `json:"ids,omitempty"`
}

// NewResources returns Resources listing ids.
func NewResources(ids ...string) *Resources {
	return &Resources{IDs: stringPtrs(ids)}
}

// SubmitDeallocateRequest - The deallocate request for resources.
type SubmitDeallocateRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The execution parameters for the request.
	ExecutionParameters *ExecutionParameters `json:"executionParameters,omitempty"`

	// REQUIRED; The resources for the request.
	Resources *Resources `json:"resources,omitempty"`

	// REQUIRED; The schedule for the request.
	Schedule *Schedule `json:"schedule,omitempty"`
}

// NewSubmitDeallocateRequest returns a SubmitDeallocateRequest with its required fields set.
func NewSubmitDeallocateRequest(schedule *Schedule, params *ExecutionParameters, resources *Resources, correlationID string) *SubmitDeallocateRequest {
	return &SubmitDeallocateRequest{
		Schedule:            schedule,
		ExecutionParameters: params,
		Resources:           resources,
		Correlationid:       &correlationID,
	}
}

// SubmitHibernateRequest - This is the request for hibernate.
type SubmitHibernateRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The execution parameters for the request.
	ExecutionParameters *ExecutionParameters `json:"executionParameters,omitempty"`

	// REQUIRED; The resources for the request.
	Resources *Resources `json:"resources,omitempty"`

	// REQUIRED; The schedule for the request.
	Schedule *Schedule `json:"schedule,omitempty"`
}

// NewSubmitHibernateRequest returns a SubmitHibernateRequest with its required fields set.
func NewSubmitHibernateRequest(schedule *Schedule, params *ExecutionParameters, resources *Resources, correlationID string) *SubmitHibernateRequest {
	return &SubmitHibernateRequest{
		Schedule:            schedule,
		ExecutionParameters: params,
		Resources:           resources,
		Correlationid:       &correlationID,
	}
}

// SubmitStartRequest - This is the request for start.
type SubmitStartRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The execution parameters for the request.
	ExecutionParameters *ExecutionParameters `json:"executionParameters,omitempty"`

	// REQUIRED; The resources for the request.
	Resources *Resources `json:"resources,omitempty"`

	// REQUIRED; The schedule for the request.
	Schedule *Schedule `json:"schedule,omitempty"`
}

// NewSubmitStartRequest returns a SubmitStartRequest with its required fields set.
func NewSubmitStartRequest(schedule *Schedule, params *ExecutionParameters, resources *Resources, correlationID string) *SubmitStartRequest {
	return &SubmitStartRequest{
		Schedule:            schedule,
		ExecutionParameters: params,
		Resources:           resources,
		Correlationid:       &correlationID,
	}
}

// ExecuteDeallocateRequest - The ExecuteDeallocateRequest request for executeDeallocate operations.
type ExecuteDeallocateRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The execution parameters for the request.
	ExecutionParameters *ExecutionParameters `json:"executionParameters,omitempty"`

	// REQUIRED; The resources for the request.
	Resources *Resources `json:"resources,omitempty"`
}

// NewExecuteDeallocateRequest returns an ExecuteDeallocateRequest with its required fields set.
func NewExecuteDeallocateRequest(params *ExecutionParameters, resources *Resources, correlationID string) *ExecuteDeallocateRequest {
	return &ExecuteDeallocateRequest{
		ExecutionParameters: params,
		Resources:           resources,
		Correlationid:       &correlationID,
	}
}

// ExecuteHibernateRequest - The ExecuteHibernateRequest request for executeHibernate operations.
type ExecuteHibernateRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The execution parameters for the request.
	ExecutionParameters *ExecutionParameters `json:"executionParameters,omitempty"`

	// REQUIRED; The resources for the request.
	Resources *Resources `json:"resources,omitempty"`
}

// NewExecuteHibernateRequest returns an ExecuteHibernateRequest with its required fields set.
func NewExecuteHibernateRequest(params *ExecutionParameters, resources *Resources, correlationID string) *ExecuteHibernateRequest {
	return &ExecuteHibernateRequest{
		ExecutionParameters: params,
		Resources:           resources,
		Correlationid:       &correlationID,
	}
}

// ExecuteStartRequest - The ExecuteStartRequest request for executeStart operations.
type ExecuteStartRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The execution parameters for the request.
	ExecutionParameters *ExecutionParameters `json:"executionParameters,omitempty"`

	// REQUIRED; The resources for the request.
	Resources *Resources `json:"resources,omitempty"`
}

// NewExecuteStartRequest returns an ExecuteStartRequest with its required fields set.
func NewExecuteStartRequest(params *ExecutionParameters, resources *Resources, correlationID string) *ExecuteStartRequest {
	return &ExecuteStartRequest{
		ExecutionParameters: params,
		Resources:           resources,
		Correlationid:       &correlationID,
	}
}

// CancelOperationsRequest - This is the request to cancel running operations in scheduled actions using the operation ids.
type CancelOperationsRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The list of operation ids to cancel operations on
	OperationIDs []*string `json:"operationIds,omitempty"`
}

// NewCancelOperationsRequest returns a CancelOperationsRequest with its required fields set.
func NewCancelOperationsRequest(operationIDs []string, correlationID string) *CancelOperationsRequest {
	return &CancelOperationsRequest{
		OperationIDs:  stringPtrs(operationIDs),
		Correlationid: &correlationID,
	}
}

// CancelOperationsResponse - This is the response from a cancel operations request.
type CancelOperationsResponse struct {
	// REQUIRED; An array of resource operations that were successfully cancelled
	Results []*ResourceOperation `json:"results,omitempty"`
}

// GetOperationStatusRequest - This is the request to get operation status using operationids.
type GetOperationStatusRequest struct {
	// REQUIRED; CorrelationId item
	Correlationid *string `json:"correlationid,omitempty"`

	// REQUIRED; The list of operation ids to get the status of
	OperationIDs []*string `json:"operationIds,omitempty"`
}

// NewGetOperationStatusRequest returns a GetOperationStatusRequest with its required fields set.
func NewGetOperationStatusRequest(operationIDs []string, correlationID string) *GetOperationStatusRequest {
	return &GetOperationStatusRequest{
		OperationIDs:  stringPtrs(operationIDs),
		Correlationid: &correlationID,
	}
}

// GetOperationStatusResponse - This is the response from a get operations status request.
type GetOperationStatusResponse struct {
	// REQUIRED; An array of resource operations based on their operation ids
	Results []*ResourceOperation `json:"results,omitempty"`
}

// GetOperationErrorsRequest - This is the request to get errors per vm operations.
type GetOperationErrorsRequest struct {
	// REQUIRED; The list of operation ids to query errors of
	OperationIDs []*string `json:"operationIds,omitempty"`
}

// NewGetOperationErrorsRequest returns a GetOperationErrorsRequest with its required fields set.
func NewGetOperationErrorsRequest(operationIDs []string) *GetOperationErrorsRequest {
	return &GetOperationErrorsRequest{OperationIDs: stringPtrs(operationIDs)}
}

// GetOperationErrorsResponse - This is the response from a get operations errors request.
type GetOperationErrorsResponse struct {
	// REQUIRED; An array of operationids and their corresponding errors if any
	Results []*OperationErrorsResult `json:"results,omitempty"`
}

// ResourceOperation - High level response from an operation on a resource.
type ResourceOperation struct {
	// Resource level error code if it exists
	ErrorCode *string `json:"errorCode,omitempty"`

	// Resource level error details if they exist
	ErrorDetails *string `json:"errorDetails,omitempty"`

	// Details of the operation performed on a resource
	Operation *ResourceOperationDetails `json:"operation,omitempty"`

	// Unique identifier for the resource involved in the operation, eg ArmId
	ResourceID *string `json:"resourceId,omitempty"`
}

// ResourceOperationDetails - The details of a response from an operation on a resource.
type ResourceOperationDetails struct {
	// REQUIRED; Deadline for the operation
	Deadline *date.Time `json:"deadline,omitempty"`

	// REQUIRED; Type of deadline of the operation
	DeadlineType *DeadlineType `json:"deadlineType,omitempty"`

	// REQUIRED; Type of operation performed on the resources
	OpType *ResourceOperationType `json:"opType,omitempty"`

	// REQUIRED; Operation identifier for the unique operation
	OperationID *string `json:"operationId,omitempty"`

	// REQUIRED; Unique identifier for the resource involved in the operation, eg ArmId
	ResourceID *string `json:"resourceId,omitempty"`

	// REQUIRED; Current state of the operation
	State *OperationState `json:"state,omitempty"`

	// REQUIRED; Subscription id attached to the request
	SubscriptionID *string `json:"subscriptionId,omitempty"`

	// Time the operation was complete if errors are null
	CompletedAt *date.Time `json:"completedAt,omitempty"`

	// Operation level errors if they exist
	ResourceOperationError *ResourceOperationError `json:"resourceOperationError,omitempty"`

	// Retry policy the user can pass
	RetryPolicy *RetryPolicy `json:"retryPolicy,omitempty"`

	// Timezone for the operation
	TimeZone *string `json:"timeZone,omitempty"`
}

// ResourceOperationError - These describe errors that occur at the resource level.
type ResourceOperationError struct {
	// REQUIRED; Code for the error eg 404, 500
	ErrorCode *string `json:"errorCode,omitempty"`

	// REQUIRED; Detailed message about the error
	ErrorDetails *string `json:"errorDetails,omitempty"`
}

// NewResourceOperationError returns a ResourceOperationError with its required fields set.
func NewResourceOperationError(code, details string) *ResourceOperationError {
	return &ResourceOperationError{ErrorCode: &code, ErrorDetails: &details}
}

// OperationErrorDetails - This defines a list of operation errors associated with a unique operationId.
type OperationErrorDetails struct {
	// REQUIRED; The compute operationid of the Start/Deallocate/Hibernate request
	CrpOperationID *string `json:"crpOperationId,omitempty"`

	// REQUIRED; The error code of the operation
	ErrorCode *string `json:"errorCode,omitempty"`

	// REQUIRED; The error details of the operation. The service schema types this as a timestamp.
	ErrorDetails *date.Time `json:"errorDetails,omitempty"`

	// REQUIRED; The timestamp of the error occurence
	TimeStamp *date.Time `json:"timeStamp,omitempty"`
}

// OperationErrorsResult - This is the first level of operation errors from the request when clients get errors per vm operation.
type OperationErrorsResult struct {
	// The activationTime of the operation if any
	ActivationTime *date.Time `json:"activationTime,omitempty"`

	// The completedAt of the operation if any
	CompletedAt *date.Time `json:"completedAt,omitempty"`

	// The creationTime of the operation
	CreationTime *date.Time `json:"creationTime,omitempty"`

	// A list of errors associated with the operationid
	OperationErrors []*OperationErrorDetails `json:"operationErrors,omitempty"`

	// The operationId identifying a vm operation
	OperationID *string `json:"operationId,omitempty"`

	// Request level error code
	RequestErrorCode *string `json:"requestErrorCode,omitempty"`

	// Request level error details
	RequestErrorDetails *string `json:"requestErrorDetails,omitempty"`
}

// DeallocateResourceOperationResponse - The response from a deallocate request.
type DeallocateResourceOperationResponse struct {
	// REQUIRED; The description of the operation response
	Description *string `json:"description,omitempty"`

	// REQUIRED; The location of the deallocate request eg westus
	Location *string `json:"location,omitempty"`

	// REQUIRED; The type of resources used in the deallocate request eg virtual machines
	Type *string `json:"type,omitempty"`

	// The results from the deallocate request if no errors exist
	Results []*ResourceOperation `json:"results,omitempty"`
}

// HibernateResourceOperationResponse - The response from a Hibernate request.
type HibernateResourceOperationResponse struct {
	// REQUIRED; The description of the operation response
	Description *string `json:"description,omitempty"`

	// REQUIRED; The location of the hibernate request eg westus
	Location *string `json:"location,omitempty"`

	// REQUIRED; The type of resources used in the hibernate request eg virtual machines
	Type *string `json:"type,omitempty"`

	// The results from the hibernate request if no errors exist
	Results []*ResourceOperation `json:"results,omitempty"`
}

// StartResourceOperationResponse - The response from a start request.
type StartResourceOperationResponse struct {
	// REQUIRED; The description of the operation response
	Description *string `json:"description,omitempty"`

	// REQUIRED; The location of the start request eg westus
	Location *string `json:"location,omitempty"`

	// REQUIRED; The type of resources used in the start request eg virtual machines
	Type *string `json:"type,omitempty"`

	// The results from the start request if no errors exist
	Results []*ResourceOperation `json:"results,omitempty"`
}

// Operation - Details of a REST API operation, returned from the Resource Provider Operations API.
type Operation struct {
	// Localized display information for this particular operation.
	Display *OperationDisplay `json:"display,omitempty"`

	// READ-ONLY; Enum. Indicates the action type. "Internal" refers to actions that are for internal only APIs.
	ActionType *ActionType `json:"actionType,omitempty"`

	// READ-ONLY; Whether the operation applies to data-plane.
	IsDataAction *bool `json:"isDataAction,omitempty"`

	// READ-ONLY; The name of the operation, as per Resource-Based Access Control (RBAC).
	Name *string `json:"name,omitempty"`

	// READ-ONLY; The intended executor of the operation.
	Origin *Origin `json:"origin,omitempty"`
}

// OperationDisplay - Localized display information for this particular operation.
type OperationDisplay struct {
	// READ-ONLY; The short, localized friendly description of the operation.
	Description *string `json:"description,omitempty"`

	// READ-ONLY; The concise, localized friendly name for the operation.
	Operation *string `json:"operation,omitempty"`

	// READ-ONLY; The localized friendly form of the resource provider name.
	Provider *string `json:"provider,omitempty"`

	// READ-ONLY; The localized friendly name of the resource type related to this operation.
	Resource *string `json:"resource,omitempty"`
}

// OperationListResult - A list of REST API operations supported by an Azure Resource Provider.
type OperationListResult struct {
	// READ-ONLY; URL to get the next set of operation list results (if there are any).
	NextLink *string `json:"nextLink,omitempty"`

	// READ-ONLY; List of operations supported by the resource provider
	Value []*Operation `json:"value,omitempty"`
}

// Continuation returns the link to the next page, if any.
func (r OperationListResult) Continuation() (string, bool) {
	if r.NextLink == nil || *r.NextLink == "" {
		return "", false
	}
	return *r.NextLink, true
}

// ErrorResponse - Common error response for all Azure Resource Manager APIs to return error details for failed operations.
type ErrorResponse struct {
	// The error object.
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail - The error detail.
type ErrorDetail struct {
	// READ-ONLY; The error additional info.
	AdditionalInfo []*ErrorAdditionalInfo `json:"additionalInfo,omitempty"`

	// READ-ONLY; The error code.
	Code *string `json:"code,omitempty"`

	// READ-ONLY; The error details.
	Details []*ErrorDetail `json:"details,omitempty"`

	// READ-ONLY; The error message.
	Message *string `json:"message,omitempty"`

	// READ-ONLY; The error target.
	Target *string `json:"target,omitempty"`
}

// ErrorAdditionalInfo - The resource management error additional info.
type ErrorAdditionalInfo struct {
	// READ-ONLY; The additional info.
	Info any `json:"info,omitempty"`

	// READ-ONLY; The additional info type.
	Type *string `json:"type,omitempty"`
}

func stringPtrs(in []string) []*string {
	out := make([]*string, 0, len(in))
	for _, s := range in {
		s := s
		out = append(out, &s)
	}
	return out
}
