package openenum_test

import (
	"encoding/json"
	"reflect"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/pkg/openenum"
)

type provisioningState string

const (
	provisioningStateCreating  provisioningState = "Creating"
	provisioningStateSucceeded provisioningState = "Succeeded"
	provisioningStateFailed    provisioningState = "Failed"
)

var provisioningStates = openenum.New("ProvisioningState", []provisioningState{
	provisioningStateCreating,
	provisioningStateSucceeded,
	provisioningStateFailed,
}, openenum.Default("Creating"))

func (p provisioningState) MarshalJSON() ([]byte, error) { return provisioningStates.Marshal(p) }
func (p *provisioningState) UnmarshalJSON(b []byte) error {
	return provisioningStates.Unmarshal(b, p)
}

type skuName string

const (
	skuNameStandardLRS    skuName = "Standard_LRS"
	skuNameStandardSSDZRS skuName = "StandardSSD_ZRS"
	skuNameUltraSSDLRS    skuName = "UltraSSD_LRS"
)

var skuNames = openenum.New("SkuName", []skuName{skuNameStandardLRS, skuNameStandardSSDZRS, skuNameUltraSSDLRS})

type caching string

var cachings = openenum.New("Caching", []caching{"None", "ReadOnly", "ReadWrite"}, openenum.Closed())

func (c caching) MarshalJSON() ([]byte, error) { return cachings.Marshal(c) }
func (c *caching) UnmarshalJSON(b []byte) error {
	return cachings.Unmarshal(b, c)
}

type disk struct {
	State   *provisioningState `json:"state,omitempty"`
	Caching *caching           `json:"caching,omitempty"`
}

var _ = Describe("Table", func() {
	It("should decode a known value", func() {
		v := provisioningStates.Decode("Succeeded")
		Expect(v.Known()).To(BeTrue())
		Expect(v.Get()).To(Equal(provisioningStateSucceeded))
		Expect(provisioningStates.Encode(v.Get())).To(Equal("Succeeded"))
	})

	It("should keep an unknown value verbatim", func() {
		v := provisioningStates.Decode("SomeBrandNewStateNotYetKnown")
		Expect(v.Known()).To(BeFalse())
		Expect(v.Raw()).To(Equal("SomeBrandNewStateNotYetKnown"))
		Expect(provisioningStates.Encode(v.Get())).To(Equal("SomeBrandNewStateNotYetKnown"))
		Expect(v.String()).To(Equal(`unknown("SomeBrandNewStateNotYetKnown")`))
	})

	It("should decode the empty string to the fallback", func() {
		v := provisioningStates.Decode("")
		Expect(v.Known()).To(BeFalse())
		Expect(v.Raw()).To(Equal(""))
		Expect(provisioningStates.Encode(v.Get())).To(Equal(""))
	})

	It("should match case-sensitively", func() {
		for _, in := range []string{"succeeded", "SUCCEEDED", " Succeeded", "Succeeded ", "Succeeded\n"} {
			v := provisioningStates.Decode(in)
			Expect(v.Known()).To(BeFalse(), in)
			Expect(provisioningStates.Encode(v.Get())).To(Equal(in))
		}
	})

	It("should preserve underscore brand tokens exactly", func() {
		for _, in := range []string{"Standard_LRS", "StandardSSD_ZRS", "UltraSSD_LRS"} {
			v := skuNames.Decode(in)
			Expect(v.Known()).To(BeTrue(), in)
			Expect(skuNames.Encode(v.Get())).To(Equal(in))
		}
		Expect(skuNames.Encode(skuNameStandardSSDZRS)).To(Equal("StandardSSD_ZRS"))
		Expect(skuNames.Decode("Standard_Lrs").Known()).To(BeFalse())
		Expect(skuNames.Decode("StandardLRS").Known()).To(BeFalse())
	})

	It("should round trip every known value", func() {
		for _, v := range skuNames.Values() {
			Expect(skuNames.Decode(skuNames.Encode(v)).Get()).To(Equal(v))
			Expect(skuNames.Decode(skuNames.Encode(v)).Known()).To(BeTrue())
		}
	})

	It("should round trip arbitrary strings", func() {
		for _, in := range []string{"", " ", "\t", "ünïcödé", "Premium_LRS", "a,b", `"quoted"`, "2020-11-01"} {
			Expect(skuNames.Encode(skuNames.Decode(in).Get())).To(Equal(in))
		}
	})

	It("should report values in declaration order", func() {
		Expect(provisioningStates.Values()).To(Equal([]provisioningState{
			provisioningStateCreating, provisioningStateSucceeded, provisioningStateFailed,
		}))
		Expect(provisioningStates.Wire()).To(Equal([]string{"Creating", "Succeeded", "Failed"}))

		values := provisioningStates.Values()
		values[0] = "mutated"
		Expect(provisioningStates.Values()[0]).To(Equal(provisioningStateCreating))
	})

	It("should expose defaults", func() {
		def, ok := provisioningStates.Default()
		Expect(ok).To(BeTrue())
		Expect(def).To(Equal(provisioningStateCreating))

		_, ok = skuNames.Default()
		Expect(ok).To(BeFalse())
	})

	It("should describe its Go type", func() {
		Expect(skuNames.Type()).To(Equal(reflect.TypeOf(skuName(""))))
		Expect(skuNames.Name()).To(Equal("SkuName"))
	})

	It("should panic on duplicate values", func() {
		Expect(func() {
			openenum.New("Dup", []skuName{"A", "A"})
		}).To(Panic())
	})

	It("should panic on an unknown default", func() {
		Expect(func() {
			openenum.New("BadDefault", []skuName{"A"}, openenum.Default("B"))
		}).To(Panic())
	})

	Context("closed families", func() {
		It("should still decode totally", func() {
			v := cachings.Decode("WriteBack")
			Expect(v.Known()).To(BeFalse())
			Expect(v.Raw()).To(Equal("WriteBack"))
		})

		It("should reject unknown values in Parse", func() {
			_, err := cachings.Parse("WriteBack")
			Expect(err).To(HaveOccurred())
			Expect(openenum.IsUnknownValue(err)).To(BeTrue())
			Expect(err.Error()).To(Equal(`"WriteBack" is not a valid Caching`))

			v, err := cachings.Parse("ReadOnly")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(caching("ReadOnly")))
		})

		It("should accept anything in Parse for open families", func() {
			v, err := provisioningStates.Parse("Whatever")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(provisioningState("Whatever")))
		})
	})
})

var _ = Describe("JSON", func() {
	It("should round trip known and unknown values", func() {
		in := `{"state":"Succeeded"}`
		var d disk
		Expect(json.Unmarshal([]byte(in), &d)).To(Succeed())
		Expect(*d.State).To(Equal(provisioningStateSucceeded))
		out, err := json.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(in))

		in = `{"state":"Migrating"}`
		Expect(json.Unmarshal([]byte(in), &d)).To(Succeed())
		Expect(provisioningStates.Known(*d.State)).To(BeFalse())
		out, err = json.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(in))
	})

	It("should keep an empty string present", func() {
		in := `{"state":""}`
		var d disk
		Expect(json.Unmarshal([]byte(in), &d)).To(Succeed())
		Expect(d.State).NotTo(BeNil())
		out, err := json.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(in))
	})

	It("should reject non-string JSON", func() {
		var d disk
		Expect(json.Unmarshal([]byte(`{"state":3}`), &d)).NotTo(Succeed())
	})

	It("should leave values untouched on null", func() {
		var flat struct {
			State   provisioningState `json:"state"`
			Caching caching           `json:"caching"`
		}
		Expect(json.Unmarshal([]byte(`{"state":null,"caching":null}`), &flat)).To(Succeed())
		Expect(flat.State).To(BeEmpty())
		Expect(flat.Caching).To(BeEmpty())

		flat.State, flat.Caching = "Migrating", "ReadOnly"
		Expect(json.Unmarshal([]byte(`{"state":null,"caching":null}`), &flat)).To(Succeed())
		Expect(flat.State).To(Equal(provisioningState("Migrating")))
		Expect(flat.Caching).To(Equal(caching("ReadOnly")))

		state := provisioningStateFailed
		Expect(provisioningStates.Unmarshal([]byte(" null "), &state)).To(Succeed())
		Expect(state).To(Equal(provisioningStateFailed))
	})

	It("should keep absent pointers absent on null", func() {
		var d disk
		Expect(json.Unmarshal([]byte(`{"state":null,"caching":null}`), &d)).To(Succeed())
		Expect(d.State).To(BeNil())
		Expect(d.Caching).To(BeNil())
		out, err := json.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{}`))
	})

	It("should reject unknown values of closed families", func() {
		var d disk
		err := json.Unmarshal([]byte(`{"caching":"WriteBack"}`), &d)
		Expect(err).To(HaveOccurred())
		Expect(openenum.IsUnknownValue(err)).To(BeTrue())

		Expect(json.Unmarshal([]byte(`{"caching":"ReadWrite"}`), &d)).To(Succeed())
		Expect(*d.Caching).To(Equal(caching("ReadWrite")))
	})
})

var _ = Describe("Catalog", func() {
	It("should index families by name and type", func() {
		c := openenum.NewCatalog(provisioningStates, skuNames)
		f, ok := c.Lookup("SkuName")
		Expect(ok).To(BeTrue())
		Expect(f.IsKnown("Standard_LRS")).To(BeTrue())

		f, ok = c.ForType(reflect.TypeOf(provisioningState("")))
		Expect(ok).To(BeTrue())
		Expect(f.Name()).To(Equal("ProvisioningState"))

		_, ok = c.Lookup("Missing")
		Expect(ok).To(BeFalse())
	})

	It("should merge catalogs and sort by name", func() {
		merged := openenum.NewCatalog(skuNames).Merge(openenum.NewCatalog(provisioningStates, cachings))
		Expect(merged.Len()).To(Equal(3))
		var names []string
		for _, f := range merged.Families() {
			names = append(names, f.Name())
		}
		Expect(names).To(Equal([]string{"Caching", "ProvisioningState", "SkuName"}))
	})

	It("should refuse duplicate families", func() {
		Expect(func() {
			openenum.NewCatalog(skuNames).Merge(openenum.NewCatalog(skuNames))
		}).To(Panic())
	})
})
