package rate_test

import (
	"math"

	"code.cloudfoundry.org/throughput/pkg/rate"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("ByteRate", func() {
	table.DescribeTable("String",
		func(r rate.ByteRate, expected string) {
			Expect(r.String()).To(Equal(expected))
		},
		table.Entry("zero", rate.ByteRate(0), "0.00 B/s"),
		table.Entry("one", rate.ByteRate(1), "1.00 B/s"),
		table.Entry("top of B/s band", rate.ByteRate(1023), "1023.00 B/s"),
		table.Entry("one KiB/s", rate.ByteRate(1024), "1.00 KiB/s"),
		table.Entry("top of KiB/s band", rate.ByteRate(1_048_575), "1024.00 KiB/s"),
		table.Entry("one MiB/s", rate.ByteRate(1_048_576), "1.00 MiB/s"),
		table.Entry("one GiB/s", rate.ByteRate(1_073_741_824), "1.00 GiB/s"),
		table.Entry("one TiB/s", rate.ByteRate(1_099_511_627_776), "1.00 TiB/s"),
	)

	It("formats partial magnitudes with two fractional digits", func() {
		Expect(rate.ByteRate(1536).String()).To(Equal("1.50 KiB/s"))
		Expect(rate.ByteRate(2_621_440).String()).To(Equal("2.50 MiB/s"))
	})

	It("formats the top of the uint64 range as TiB/s", func() {
		Expect(rate.ByteRate(math.MaxUint64).String()).To(HaveSuffix(" TiB/s"))
	})

	It("leaves no value without a band", func() {
		boundaries := []rate.ByteRate{
			0, 1023, 1024,
			1_048_575, 1_048_576,
			1_073_741_823, 1_073_741_824,
			1_099_511_627_775, 1_099_511_627_776,
			math.MaxUint64,
		}

		for _, b := range boundaries {
			Expect(b.String()).To(MatchRegexp(`^\d+\.\d{2} (B|KiB|MiB|GiB|TiB)/s$`))
		}
	})
})
