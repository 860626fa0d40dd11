package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects fx hooks instead of running them, so tests can
// invoke OnStart and OnStop directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when Shutdown is requested. The send is
// non-blocking so repeated shutdown calls never wedge a test.
type ShutdownerStub struct {
	Called chan struct{}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called == nil {
		return nil
	}
	select {
	case s.Called <- struct{}{}:
	default:
	}
	return nil
}
