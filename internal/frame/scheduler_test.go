package frame_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/This-Is-Prince/learning-physics/internal/frame"
)

// scriptedHost delivers refreshes at caller-chosen timestamps.
type scriptedHost struct {
	now      float64
	pending  []func()
	requests int
}

func (h *scriptedHost) Now() float64 { return h.now }

func (h *scriptedHost) RequestTick(fn func()) {
	h.requests++
	h.pending = append(h.pending, fn)
}

func (h *scriptedHost) refreshAt(t float64) {
	h.now = t
	batch := h.pending
	h.pending = nil
	for _, fn := range batch {
		fn()
	}
}

var _ = Describe("Scheduler", func() {
	var (
		host   *scriptedHost
		deltas []float64
		record frame.Callback
	)

	BeforeEach(func() {
		host = &scriptedHost{now: 1000}
		deltas = nil
		record = func(dt float64) { deltas = append(deltas, dt) }
	})

	Describe("lifecycle", func() {
		It("starts idle", func() {
			s := frame.New(host, record, 0)
			Expect(s.State()).To(Equal(frame.Idle))
			Expect(s.Active()).To(BeFalse())
			Expect(host.requests).To(BeZero())
		})

		It("requests exactly one tick on start", func() {
			s := frame.New(host, record, 0)
			s.Start()
			Expect(s.State()).To(Equal(frame.Active))
			Expect(host.requests).To(Equal(1))
		})

		It("ignores a second start while active", func() {
			s := frame.New(host, record, 0)
			s.Start()
			s.Start()
			Expect(host.requests).To(Equal(1))
			Expect(host.pending).To(HaveLen(1))

			host.refreshAt(1016)
			Expect(deltas).To(HaveLen(1))
		})

		It("names its states", func() {
			Expect(frame.Idle.String()).To(Equal("idle"))
			Expect(frame.Active.String()).To(Equal("active"))
			Expect(frame.State(7).String()).To(Equal("unknown"))
		})
	})

	Describe("uncapped mode", func() {
		It("fires once per refresh with elapsed seconds", func() {
			s := frame.New(host, record, 0)
			s.Start()

			for _, t := range []float64{1016, 1040, 1041, 1100} {
				host.refreshAt(t)
			}

			Expect(deltas).To(HaveLen(4))
			Expect(deltas[0]).To(BeNumerically("~", 0.016, 1e-12))
			Expect(deltas[1]).To(BeNumerically("~", 0.024, 1e-12))
			Expect(deltas[2]).To(BeNumerically("~", 0.001, 1e-12))
			Expect(deltas[3]).To(BeNumerically("~", 0.059, 1e-12))
			Expect(host.requests).To(Equal(5))
		})

		It("measures the first delta from start time", func() {
			host.now = 250
			s := frame.New(host, record, 0)
			s.Start()
			host.refreshAt(300)
			Expect(deltas).To(ConsistOf(BeNumerically("~", 0.05, 1e-12)))
		})

		It("reports zero minimum interval", func() {
			Expect(frame.New(host, record, 0).MinInterval()).To(BeZero())
			Expect(frame.New(host, record, -5).MinInterval()).To(BeZero())
		})
	})

	Describe("capped mode", func() {
		It("derives the interval as 1000/maxFPS", func() {
			s := frame.New(host, record, 30)
			Expect(s.MinInterval()).To(BeNumerically("~", 33.333, 0.001))
		})

		It("skips refreshes that arrive too early but keeps re-arming", func() {
			host.now = 0
			s := frame.New(host, record, 50)
			s.Start()

			for i := 1; i <= 10; i++ {
				host.refreshAt(float64(i * 10))
			}

			Expect(deltas).To(HaveLen(5))
			for _, dt := range deltas {
				Expect(dt).To(BeNumerically("~", 0.02, 1e-12))
			}
			Expect(host.requests).To(Equal(11))
		})

		It("passes the full accumulated delta when refreshes are late", func() {
			host.now = 0
			s := frame.New(host, record, 50)
			s.Start()
			host.refreshAt(5)
			host.refreshAt(45)
			Expect(deltas).To(ConsistOf(BeNumerically("~", 0.045, 1e-12)))
		})
	})

	Describe("stopping", func() {
		It("does not re-arm after stop from inside the callback", func() {
			var s *frame.Scheduler
			calls := 0
			s = frame.New(host, func(float64) {
				calls++
				if calls == 2 {
					s.Stop()
				}
			}, 0)
			s.Start()

			host.refreshAt(1010)
			host.refreshAt(1020)
			requests := host.requests

			host.refreshAt(1030)
			Expect(calls).To(Equal(2))
			Expect(host.requests).To(Equal(requests))
			Expect(host.pending).To(BeEmpty())
			Expect(s.State()).To(Equal(frame.Idle))
		})

		It("terminates a pending tick delivered after stop", func() {
			s := frame.New(host, record, 0)
			s.Start()
			s.Stop()

			host.refreshAt(1016)
			Expect(deltas).To(BeEmpty())
			Expect(host.requests).To(Equal(1))
			Expect(host.pending).To(BeEmpty())
		})

		It("keeps a single chain across a stop/start cycle", func() {
			s := frame.New(host, record, 0)
			s.Start()
			s.Stop()
			host.now = 1010
			s.Start()
			Expect(host.pending).To(HaveLen(2))

			host.refreshAt(1020)
			Expect(deltas).To(ConsistOf(BeNumerically("~", 0.01, 1e-12)))
			Expect(host.pending).To(HaveLen(1))
		})

		It("lets a callback panic escape without re-arming", func() {
			s := frame.New(host, func(float64) { panic("boom") }, 0)
			s.Start()

			Expect(func() { host.refreshAt(1016) }).To(PanicWith("boom"))
			Expect(host.pending).To(BeEmpty())
			Expect(s.Active()).To(BeTrue())
		})
	})
})
