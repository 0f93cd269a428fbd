package store_test

import (
	"time"

	"code.cloudfoundry.org/throughput/pkg/rate"
	"code.cloudfoundry.org/throughput/pkg/store"
	"github.com/benbjohnson/clock"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Aggregator", func() {
	var mock *clock.Mock

	BeforeEach(func() {
		mock = clock.NewMock()
		mock.Set(time.Unix(1000, 0))
	})

	Describe("Observations", func() {
		It("stores each reported rate with its timestamp", func() {
			a := store.NewAggregator(store.WithAggregatorClock(mock))

			a.OnRate(100)
			mock.Add(time.Second)
			a.OnRate(200)

			Expect(a.Observations()).To(Equal(store.Observations{
				{Timestamp: 1000, BytesPerSec: 100},
				{Timestamp: 1001, BytesPerSec: 200},
			}))
		})

		It("prunes older observations", func() {
			a := store.NewAggregator(
				store.WithAggregatorClock(mock),
				store.WithMaxBuckets(2),
			)

			for i := 0; i < 5; i++ {
				a.OnRate(rate.ByteRate(i))
				mock.Add(time.Second)
			}

			Expect(a.Observations()).To(HaveLen(2))
			Expect(a.Observations()[1].BytesPerSec).To(Equal(rate.ByteRate(4)))
		})
	})

	Describe("Latest", func() {
		It("returns the most recent observation", func() {
			a := store.NewAggregator(store.WithAggregatorClock(mock))

			a.OnRate(100)
			a.OnRate(300)

			o, err := a.Latest()
			Expect(err).ToNot(HaveOccurred())
			Expect(o.BytesPerSec).To(Equal(rate.ByteRate(300)))
		})

		It("returns an error before anything has been reported", func() {
			a := store.NewAggregator(store.WithAggregatorClock(mock))

			_, err := a.Latest()
			Expect(err).To(MatchError("no observations"))
		})
	})
})
