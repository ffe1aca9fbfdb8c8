// Package convert maps the models in api/compute to and from the
// azure-sdk-for-go 2019-07-01 compute models.
//
// Enum values cross as plain strings, so values unknown to either side
// survive the trip. The SDK stores enums by value, which means an empty enum
// string and an absent one cannot be told apart once converted. Fields that
// 2019-07-01 does not define, such as securityProfile, extendedLocation and
// networkApiVersion, are dropped by ToSDK.
package convert

import (
	"github.com/Azure/go-autorest/autorest/to"
)

// enumTo converts an optional enum to the SDK's by-value representation.
func enumTo[D ~string, S ~string](v *S) D {
	if v == nil {
		return ""
	}
	return D(*v)
}

// enumFrom converts an SDK enum back to an optional one; empty becomes nil.
func enumFrom[D ~string, S ~string](v S) *D {
	if v == "" {
		return nil
	}
	d := D(v)
	return &d
}

func stringsTo(in []*string) *[]string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, to.String(s))
	}
	return &out
}

func stringsFrom(in *[]string) []*string {
	if in == nil {
		return nil
	}
	out := make([]*string, 0, len(*in))
	for _, s := range *in {
		out = append(out, to.StringPtr(s))
	}
	return out
}

func copyTags(in map[string]*string) map[string]*string {
	if in == nil {
		return nil
	}
	out := make(map[string]*string, len(in))
	for k, v := range in {
		if v == nil {
			out[k] = nil
			continue
		}
		out[k] = to.StringPtr(*v)
	}
	return out
}

// sliceTo converts a slice of optional items to the SDK's pointer-to-slice
// form. Nil items are skipped.
func sliceTo[S any, D any](in []*S, conv func(*S) D) *[]D {
	if in == nil {
		return nil
	}
	out := make([]D, 0, len(in))
	for _, item := range in {
		if item == nil {
			continue
		}
		out = append(out, conv(item))
	}
	return &out
}

func sliceFrom[S any, D any](in *[]S, conv func(*S) *D) []*D {
	if in == nil {
		return nil
	}
	out := make([]*D, 0, len(*in))
	for i := range *in {
		out = append(out, conv(&(*in)[i]))
	}
	return out
}
