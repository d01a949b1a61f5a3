package engine

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// TerminationSignals end the animation abnormally
var TerminationSignals = []os.Signal{
	syscall.SIGHUP,
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGABRT,
	syscall.SIGQUIT,
}

// WatchSignals handles the first termination signal: flags state aborted, runs release, then calls onSignal
// The handler fires once; later signals get the default disposition
// The returned stop function detaches the watcher if no signal arrived
func WatchSignals(state *SessionState, release func(), onSignal func(os.Signal)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	signal.Notify(sigCh, TerminationSignals...)

	go func() {
		defer close(doneCh)
		select {
		case sig := <-sigCh:
			signal.Stop(sigCh)
			signal.Reset(TerminationSignals...)
			state.Abort()
			release()
			if onSignal != nil {
				onSignal(sig)
			}
		case <-stopCh:
			signal.Stop(sigCh)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
			<-doneCh
		})
	}
}
