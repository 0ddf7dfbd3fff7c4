// Package frame schedules per-frame callbacks on a host's display refresh.
//
// A [Scheduler] is a two-state machine:
//
//	Idle   --Start-->  Active
//	Active --tick--->  Active   (re-arms on the host)
//	Active --Stop--->  Idle     (the in-flight tick completes, then the chain ends)
//
// The host is anything that implements [Host]: it supplies a monotonic
// millisecond clock and delivers one tick per refresh. [StepHost] is a
// deterministic virtual host for headless runs and tests; [TickerHost]
// drives refreshes from wall-clock time.
//
// # Rate limiting
//
// With a positive max FPS the callback fires only when at least
// 1000/maxFPS milliseconds elapsed since the previous invocation. Skipped
// refreshes still re-arm.
//
//	host := frame.NewStepHost(1000.0 / 60)
//	s := frame.New(host, func(dt float64) { step(dt) }, 30)
//	s.Start()
//	host.Advance(120) // 120 refreshes, ~60 callbacks
package frame
