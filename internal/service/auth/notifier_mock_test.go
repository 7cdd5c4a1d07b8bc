package auth

import (
	"context"
	"sync"

	"github.com/tillyhacks/registration-backend/internal/notify"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	EmitFunc func(ctx context.Context, ev notify.Event)

	calls struct {
		Emit []struct {
			Ctx context.Context
			Ev  notify.Event
		}
	}
	lockEmit sync.RWMutex
}

func (mock *notifierMock) Emit(ctx context.Context, ev notify.Event) {
	if mock.EmitFunc == nil {
		// Emission is best-effort; an unset mock simply records the call.
		mock.lockEmit.Lock()
		mock.calls.Emit = append(mock.calls.Emit, struct {
			Ctx context.Context
			Ev  notify.Event
		}{Ctx: ctx, Ev: ev})
		mock.lockEmit.Unlock()
		return
	}
	callInfo := struct {
		Ctx context.Context
		Ev  notify.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockEmit.Lock()
	mock.calls.Emit = append(mock.calls.Emit, callInfo)
	mock.lockEmit.Unlock()
	mock.EmitFunc(ctx, ev)
}

func (mock *notifierMock) EmitCalls() []struct {
	Ctx context.Context
	Ev  notify.Event
} {
	mock.lockEmit.RLock()
	calls := mock.calls.Emit
	mock.lockEmit.RUnlock()
	return calls
}
