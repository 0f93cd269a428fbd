package rate_test

import (
	"time"

	"code.cloudfoundry.org/throughput/pkg/rate"
	"github.com/benbjohnson/clock"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sampler", func() {
	var (
		mock *clock.Mock
		spy  *spySink
	)

	BeforeEach(func() {
		mock = clock.NewMock()
		spy = &spySink{}
	})

	It("reports nothing before the window elapses", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock))

		s.Record(100)
		mock.Add(999 * time.Millisecond)
		s.Record(100)

		Expect(spy.rates).To(BeEmpty())
	})

	It("reports the accumulated rate once the window elapses", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock))

		s.Record(100)
		mock.Add(time.Second)
		s.Record(156)

		Expect(spy.rates).To(ConsistOf(rate.ByteRate(256)))
	})

	It("fires exactly at the window boundary", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock), rate.WithWindow(100*time.Millisecond))

		mock.Add(100 * time.Millisecond)
		s.Record(50)

		Expect(spy.rates).To(HaveLen(1))
	})

	It("divides by fractional elapsed seconds, truncating", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock))

		mock.Add(2 * time.Second)
		s.Record(1001)

		Expect(spy.rates).To(ConsistOf(rate.ByteRate(500)))
	})

	It("resets the accumulator after each report", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock))

		mock.Add(time.Second)
		s.Record(1000)

		s.Record(4000)
		Expect(spy.rates).To(HaveLen(1))

		mock.Add(time.Second)
		s.Record(0)

		Expect(spy.rates).To(Equal([]rate.ByteRate{1000, 4000}))
	})

	It("reports at most once per window regardless of zero-byte records", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock))

		mock.Add(time.Second)
		for i := 0; i < 10; i++ {
			s.Record(0)
		}

		Expect(spy.rates).To(HaveLen(1))
		Expect(spy.rates[0]).To(Equal(rate.ByteRate(0)))
	})

	It("reports on every record with a non-positive window", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock), rate.WithWindow(0))

		mock.Add(time.Millisecond)
		s.Record(10)
		mock.Add(time.Millisecond)
		s.Record(10)

		Expect(spy.rates).To(HaveLen(2))
	})

	It("never reports over zero elapsed time", func() {
		s := rate.NewSampler(spy, rate.WithClock(mock), rate.WithWindow(0))

		s.Record(10)
		s.Record(10)

		Expect(spy.rates).To(BeEmpty())
	})

	It("reads the window from a WindowConfig at construction", func() {
		cfg := rate.NewWindowConfig()
		cfg.Set(10 * time.Millisecond)

		s := rate.NewSampler(spy, rate.WithClock(mock), rate.WithWindowConfig(cfg))

		cfg.Set(time.Hour)
		mock.Add(10 * time.Millisecond)
		s.Record(1)

		Expect(spy.rates).To(HaveLen(1))
	})
})

var _ = Describe("WindowConfig", func() {
	It("defaults to one second", func() {
		Expect(rate.NewWindowConfig().Get()).To(Equal(time.Second))
	})

	It("is isolated per pipeline", func() {
		a := rate.NewWindowConfig()
		b := rate.NewWindowConfig()

		a.Set(100 * time.Millisecond)

		Expect(a.Get()).To(Equal(100 * time.Millisecond))
		Expect(b.Get()).To(Equal(time.Second))
	})
})

type spySink struct {
	rates []rate.ByteRate
}

func (s *spySink) OnRate(r rate.ByteRate) {
	s.rates = append(s.rates, r)
}
