package frame

// State is the scheduler's lifecycle state.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Scheduler invokes a callback once per host refresh, optionally capped to
// a maximum rate. It is not safe for concurrent use; all calls are expected
// on the host's tick goroutine or before the host starts delivering.
type Scheduler struct {
	host          Host
	callback      Callback
	state         State
	lastTimestamp float64
	minInterval   float64
	// generation identifies the current tick chain. A tick armed by an
	// earlier Start terminates without firing.
	generation uint64
}

// New creates an idle scheduler. maxFPS <= 0 means uncapped.
func New(host Host, callback Callback, maxFPS float64) *Scheduler {
	s := &Scheduler{
		host:     host,
		callback: callback,
	}
	if maxFPS > 0 {
		s.minInterval = 1000 / maxFPS
	}
	return s
}

// Start activates the scheduler and requests the first tick. It is a
// no-op while already active.
func (s *Scheduler) Start() {
	if s.state == Active {
		return
	}
	s.state = Active
	s.generation++
	s.lastTimestamp = s.host.Now()
	s.arm()
}

// Stop deactivates the scheduler. A tick already running completes but
// does not re-arm.
func (s *Scheduler) Stop() {
	s.state = Idle
}

func (s *Scheduler) State() State { return s.state }

func (s *Scheduler) Active() bool { return s.state == Active }

// MinInterval returns the minimum milliseconds between callbacks, 0 when
// uncapped.
func (s *Scheduler) MinInterval() float64 { return s.minInterval }

func (s *Scheduler) arm() {
	gen := s.generation
	s.host.RequestTick(func() { s.tick(gen) })
}

func (s *Scheduler) tick(gen uint64) {
	if s.state != Active || gen != s.generation {
		return
	}

	now := s.host.Now()
	delta := now - s.lastTimestamp

	if s.minInterval == 0 || delta >= s.minInterval {
		s.lastTimestamp = now
		s.callback(delta / 1000)
	}

	if s.state == Active && gen == s.generation {
		s.arm()
	}
}
