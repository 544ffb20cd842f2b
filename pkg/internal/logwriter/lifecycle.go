package logwriter

import (
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// startTimer launches the periodic flush goroutine. No-op when one is already
// running.
func (lw *LogWriter) startTimer() {
	lw.timerLock.Lock()
	defer lw.timerLock.Unlock()
	if lw.timerCancel != nil {
		return
	}
	cancel := make(chan struct{})
	lw.timerCancel = cancel
	lw.timerDone.Add(1)
	go func() {
		defer lw.timerDone.Done()
		for {
			lw.configLock.Lock()
			interval := lw.flushInterval
			lw.configLock.Unlock()
			select {
			case <-cancel:
				return
			case <-time.After(interval):
				lw.Flush()
			}
		}
	}()
}

// stopTimer halts the periodic flush goroutine and waits for it to exit.
func (lw *LogWriter) stopTimer() {
	lw.timerLock.Lock()
	cancel := lw.timerCancel
	lw.timerCancel = nil
	lw.timerLock.Unlock()
	if cancel == nil {
		return
	}
	close(cancel)
	lw.timerDone.Wait()
}

// Stop halts the timer, runs one final best-effort flush, and releases the
// attached clients. Safe to call more than once.
func (lw *LogWriter) Stop() error {
	lw.stopOnce.Do(func() {
		lw.stopTimer()
		lw.Flush()
		if client := lw.getPushClient(); client != nil {
			if err := client.Close(); err != nil {
				lw.NotifyLoggers(types.WarnLevel, "push client close failed",
					"component", lw.componentMetadata, "error", err)
			}
		}
		if sink := lw.getMirrorSink(); sink != nil {
			if err := sink.Close(); err != nil {
				lw.NotifyLoggers(types.WarnLevel, "mirror sink close failed",
					"component", lw.componentMetadata, "error", err)
			}
		}
		lw.NotifyLoggers(types.InfoLevel, "writer stopped",
			"component", lw.componentMetadata, "queued", lw.QueueDepth())
	})
	return nil
}
