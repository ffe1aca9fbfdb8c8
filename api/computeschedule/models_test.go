/*
Copyright 2019 Alexander Eldeib.
*/

package computeschedule_test

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/Azure/go-autorest/autorest/to"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/api/computeschedule"
	"github.com/alexeldeib/azmodels/pkg/registry"
)

func canonical(b []byte) any {
	var out any
	ExpectWithOffset(1, json.Unmarshal(b, &out)).To(Succeed())
	return out
}

var _ = Describe("Models", func() {
	It("should round trip an operation status response", func() {
		raw, err := os.ReadFile("testdata/status.json")
		Expect(err).NotTo(HaveOccurred())

		var resp computeschedule.GetOperationStatusResponse
		Expect(json.Unmarshal(raw, &resp)).To(Succeed())
		Expect(resp.Results).To(HaveLen(2))

		first := resp.Results[0].Operation
		Expect(*first.OpType).To(Equal(computeschedule.ResourceOperationTypeDeallocate))
		Expect(*first.State).To(Equal(computeschedule.OperationStateSucceeded))
		Expect(*first.RetryPolicy.RetryCount).To(Equal(int32(4)))

		second := resp.Results[1].Operation
		Expect(*second.OpType).To(Equal(computeschedule.ResourceOperationType("Reboot")))
		Expect(*second.State).To(Equal(computeschedule.OperationState("SomeBrandNewStateNotYetKnown")))
		Expect(*second.ResourceOperationError.ErrorCode).To(Equal("VMNotFound"))

		out, err := json.Marshal(&resp)
		Expect(err).NotTo(HaveOccurred())
		Expect(canonical(out)).To(Equal(canonical(raw)))
	})

	It("should build a submit request with required fields", func() {
		deadline := date.Time{Time: time.Date(2024, 11, 1, 18, 0, 0, 0, time.UTC)}
		req := computeschedule.NewSubmitDeallocateRequest(
			computeschedule.NewSchedule(deadline, "UTC", computeschedule.DeadlineTypeInitiateAt),
			&computeschedule.ExecutionParameters{
				OptimizationPreference: func() *computeschedule.OptimizationPreference {
					p := computeschedule.OptimizationPreferenceCostAvailabilityBalanced
					return &p
				}(),
				RetryPolicy: &computeschedule.RetryPolicy{RetryCount: to.Int32Ptr(2)},
			},
			computeschedule.NewResources("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm"),
			"b211f086-4b91-4686-a453-2f5c012e4d80",
		)

		out, err := json.Marshal(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(canonical(out)).To(Equal(canonical([]byte(`{
			"schedule": {"deadLine": "2024-11-01T18:00:00Z", "timeZone": "UTC", "deadlineType": "InitiateAt"},
			"executionParameters": {"optimizationPreference": "CostAvailabilityBalanced", "retryPolicy": {"retryCount": 2}},
			"resources": {"ids": ["/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm"]},
			"correlationid": "b211f086-4b91-4686-a453-2f5c012e4d80"
		}`))))
	})

	It("should not alias caller slices", func() {
		ids := []string{"a", "b"}
		req := computeschedule.NewCancelOperationsRequest(ids, "c")
		ids[0] = "z"
		Expect(*req.OperationIDs[0]).To(Equal("a"))
	})

	It("should report list continuations", func() {
		var list computeschedule.OperationListResult
		_, ok := list.Continuation()
		Expect(ok).To(BeFalse())

		list.NextLink = to.StringPtr("https://management.azure.com/ops?page=2")
		next, ok := list.Continuation()
		Expect(ok).To(BeTrue())
		Expect(next).To(HaveSuffix("page=2"))
	})

	It("should register request kinds by name", func() {
		r := registry.New()
		Expect(computeschedule.AddToRegistry(r)).To(Succeed())
		k, ok := r.ForName("SubmitStartRequest")
		Expect(ok).To(BeTrue())
		Expect(k.New()).To(BeAssignableToTypeOf(&computeschedule.SubmitStartRequest{}))
		Expect(r.Enums().Len()).To(Equal(6))
	})
})
