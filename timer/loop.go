package timer

import (
	"sync"
	"time"

	"honnef.co/go/gestures/mem"
)

var _ Scheduler = (*Loop)(nil)

// Loop is a wall-clock Scheduler for hosts with their own event loop, such as a Gio window. Deadlines are
// tracked by runtime timers, but callbacks only run when the host calls Run from its event goroutine. Wakeup
// is called, from an arbitrary goroutine, whenever a timer has fired and Run should be called soon. For a Gio
// window that is [app.Window.Invalidate].
type Loop struct {
	Wakeup func()

	once  sync.Once
	start time.Time

	mu    sync.Mutex
	last  Handle
	live  map[Handle]*loopTimer
	fired mem.DoubleBufferedSlice[firing]
}

type loopTimer struct {
	f        Func
	interval time.Duration
	t        *time.Timer
}

type firing struct {
	h   Handle
	now time.Duration
}

func (l *Loop) init() {
	l.once.Do(func() {
		l.start = time.Now()
	})
}

func (l *Loop) Now() time.Duration {
	l.init()
	return time.Since(l.start)
}

func (l *Loop) AfterFunc(d time.Duration, f Func) Handle {
	return l.add(d, 0, f)
}

func (l *Loop) Every(interval time.Duration, f Func) Handle {
	return l.add(interval, interval, f)
}

func (l *Loop) add(d, interval time.Duration, f Func) Handle {
	l.init()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.live == nil {
		l.live = make(map[Handle]*loopTimer)
	}
	l.last++
	h := l.last
	lt := &loopTimer{f: f, interval: interval}
	lt.t = time.AfterFunc(d, func() { l.post(h) })
	l.live[h] = lt
	return h
}

// post runs on the runtime timer's goroutine.
func (l *Loop) post(h Handle) {
	now := l.Now()
	l.mu.Lock()
	lt, ok := l.live[h]
	if !ok {
		l.mu.Unlock()
		return
	}
	l.fired.Back = append(l.fired.Back, firing{h: h, now: now})
	if lt.interval > 0 {
		lt.t.Reset(lt.interval)
	}
	wakeup := l.Wakeup
	l.mu.Unlock()

	if wakeup != nil {
		wakeup()
	}
}

func (l *Loop) Cancel(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lt, ok := l.live[h]; ok {
		lt.t.Stop()
		delete(l.live, h)
	}
}

// Run calls the callbacks of all timers that fired since the last call and returns how many it called. It must
// be called from the goroutine that delivers input events. Timers cancelled after firing but before Run are
// skipped.
func (l *Loop) Run() int {
	l.mu.Lock()
	l.fired.Swap()
	l.mu.Unlock()

	n := 0
	for _, fr := range l.fired.Front {
		l.mu.Lock()
		lt, ok := l.live[fr.h]
		if ok && lt.interval == 0 {
			delete(l.live, fr.h)
		}
		l.mu.Unlock()
		if ok {
			lt.f(fr.now)
			n++
		}
	}
	return n
}
