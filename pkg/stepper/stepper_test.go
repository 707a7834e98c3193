package stepper

import (
	"time"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mudassir0002/CD-Project/pkg/tac"
)

var _ = Describe("Stepper", func() {
	var (
		mockCtrl *gomock.Controller
		listener *MockListener
		prog     tac.Program
		s        *Stepper
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		listener = NewMockListener(mockCtrl)

		prog = tac.Program{
			{Num: 1, Text: "if (a<5) goto 3"},
			{Num: 2, Text: "goto 5"},
			{Num: 3, Text: "T1=b+d"},
			{Num: 4, Text: "c=T1"},
			{Num: 5, Text: "END"},
		}
		s = New(prog)
		s.SetListener(listener)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start on the first instruction", func() {
		ins, ok := s.Current()
		Expect(ok).To(BeTrue())
		Expect(ins).To(Equal(prog[0]))
		Expect(s.Pos()).To(Equal(0))
		Expect(s.Playing()).To(BeFalse())
	})

	It("should advance and notify on Next", func() {
		listener.EXPECT().OnStep(prog[1], 1)

		s.Next()

		Expect(s.Pos()).To(Equal(1))
	})

	It("should saturate at the end and finish exactly once", func() {
		listener.EXPECT().OnStep(gomock.Any(), gomock.Any()).Times(4)
		listener.EXPECT().OnFinished().Times(1)

		for i := 0; i < 8; i++ {
			s.Next()
		}

		Expect(s.Pos()).To(Equal(4))
		Expect(s.Done()).To(BeTrue())
	})

	It("should stop playback when the end is reached", func() {
		listener.EXPECT().OnStep(gomock.Any(), gomock.Any()).AnyTimes()
		listener.EXPECT().OnFinished()

		s.Play()
		for i := 0; i < 6; i++ {
			s.Next()
		}

		Expect(s.Playing()).To(BeFalse())
	})

	It("should saturate Prev at the start", func() {
		s.Prev()

		Expect(s.Pos()).To(Equal(0))
	})

	It("should step backward after stepping forward", func() {
		listener.EXPECT().OnStep(prog[1], 1)
		listener.EXPECT().OnStep(prog[2], 2)
		listener.EXPECT().OnStep(prog[1], 1)

		s.Next()
		s.Next()
		s.Prev()

		Expect(s.Pos()).To(Equal(1))
	})

	It("should return to the first instruction on Reset", func() {
		listener.EXPECT().OnStep(gomock.Any(), gomock.Any()).Times(2)
		listener.EXPECT().OnStep(prog[0], 0)

		s.Next()
		s.Next()
		s.Play()
		s.Reset()

		Expect(s.Pos()).To(Equal(0))
		Expect(s.Playing()).To(BeFalse())
	})

	It("should allow stepping again after finishing and moving back", func() {
		listener.EXPECT().OnStep(gomock.Any(), gomock.Any()).AnyTimes()
		listener.EXPECT().OnFinished().Times(2)

		for i := 0; i < 5; i++ {
			s.Next()
		}
		s.Prev()
		s.Next()
		s.Next()
	})

	It("should not start playback on the final instruction", func() {
		listener.EXPECT().OnStep(gomock.Any(), gomock.Any()).AnyTimes()
		listener.EXPECT().OnFinished().AnyTimes()

		for i := 0; i < 5; i++ {
			s.Next()
		}
		s.Play()

		Expect(s.Playing()).To(BeFalse())
	})

	Describe("timed playback", func() {
		It("should advance once per elapsed delay", func() {
			listener.EXPECT().OnStep(prog[1], 1)

			start := time.Unix(0, 0)
			s.SetDelay(200 * time.Millisecond)
			s.Play()

			s.Tick(start)                             // arms the clock
			s.Tick(start.Add(100 * time.Millisecond)) // too early
			Expect(s.Pos()).To(Equal(0))

			s.Tick(start.Add(250 * time.Millisecond))
			Expect(s.Pos()).To(Equal(1))
		})

		It("should not advance while paused", func() {
			start := time.Unix(0, 0)
			s.Play()
			s.Tick(start)
			s.Pause()

			s.Tick(start.Add(time.Hour))

			Expect(s.Pos()).To(Equal(0))
		})

		It("should clamp the delay to the minimum", func() {
			s.SetDelay(time.Nanosecond)

			Expect(s.Delay()).To(Equal(MinDelay))
		})
	})

	Describe("empty program", func() {
		BeforeEach(func() {
			s = New(nil)
			s.SetListener(listener)
		})

		It("should report no current instruction", func() {
			_, ok := s.Current()
			Expect(ok).To(BeFalse())
			Expect(s.Done()).To(BeTrue())
		})

		It("should ignore navigation", func() {
			s.Next()
			s.Prev()
			s.Reset()

			Expect(s.Pos()).To(Equal(0))
		})
	})
})
