/*
Copyright 2019 Alexander Eldeib.
*/

package computeschedule

import (
	"github.com/alexeldeib/azmodels/pkg/registry"
)

var (
	// RegistryBuilder collects the kinds and enumerations of this package.
	RegistryBuilder = registry.NewBuilder(addKnownKinds)

	// AddToRegistry adds the kinds and enumerations of this package to a registry.
	AddToRegistry = RegistryBuilder.AddToRegistry
)

// Scheduled actions payloads are not ARM resources, so documents name them by
// kind rather than by resource type.
func addKnownKinds(r *registry.Registry) error {
	kinds := []registry.Kind{
		registry.KindFor[SubmitDeallocateRequest]("SubmitDeallocateRequest", ""),
		registry.KindFor[SubmitHibernateRequest]("SubmitHibernateRequest", ""),
		registry.KindFor[SubmitStartRequest]("SubmitStartRequest", ""),
		registry.KindFor[ExecuteDeallocateRequest]("ExecuteDeallocateRequest", ""),
		registry.KindFor[ExecuteHibernateRequest]("ExecuteHibernateRequest", ""),
		registry.KindFor[ExecuteStartRequest]("ExecuteStartRequest", ""),
		registry.KindFor[CancelOperationsRequest]("CancelOperationsRequest", ""),
		registry.KindFor[CancelOperationsResponse]("CancelOperationsResponse", ""),
		registry.KindFor[GetOperationStatusRequest]("GetOperationStatusRequest", ""),
		registry.KindFor[GetOperationStatusResponse]("GetOperationStatusResponse", ""),
		registry.KindFor[GetOperationErrorsRequest]("GetOperationErrorsRequest", ""),
		registry.KindFor[GetOperationErrorsResponse]("GetOperationErrorsResponse", ""),
		registry.KindFor[DeallocateResourceOperationResponse]("DeallocateResourceOperationResponse", ""),
		registry.KindFor[HibernateResourceOperationResponse]("HibernateResourceOperationResponse", ""),
		registry.KindFor[StartResourceOperationResponse]("StartResourceOperationResponse", ""),
		registry.KindFor[OperationListResult]("OperationListResult", ""),
		registry.KindFor[ErrorResponse]("ErrorResponse", ""),
	}
	for i := range kinds {
		kinds[i] = kinds[i].At(APIVersion)
	}
	if err := r.Register(kinds...); err != nil {
		return err
	}
	return r.AddEnums(Enums)
}
