package registration

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/notify"
)

//go:generate moq -out mocks_test.go -pkg registration . profileRepo attendeeRepo parentRepo waiverRepo notifier

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	CreateFunc  func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Profile
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Profile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ attendeeRepo = &attendeeRepoMock{}

type attendeeRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.AttendeeForm, error)
	UpsertFunc      func(ctx context.Context, form *domain.AttendeeForm) (*domain.AttendeeForm, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx  context.Context
			Form *domain.AttendeeForm
		}
	}
	lockGetByUserID sync.RWMutex
	lockUpsert      sync.RWMutex
}

func (mock *attendeeRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AttendeeForm, error) {
	if mock.GetByUserIDFunc == nil {
		panic("attendeeRepoMock.GetByUserIDFunc: method is nil but attendeeRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *attendeeRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *attendeeRepoMock) Upsert(ctx context.Context, form *domain.AttendeeForm) (*domain.AttendeeForm, error) {
	if mock.UpsertFunc == nil {
		panic("attendeeRepoMock.UpsertFunc: method is nil but attendeeRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Form *domain.AttendeeForm
	}{Ctx: ctx, Form: form}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, form)
}

func (mock *attendeeRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Form *domain.AttendeeForm
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ parentRepo = &parentRepoMock{}

type parentRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.ParentForm, error)
	UpsertFunc      func(ctx context.Context, form *domain.ParentForm) (*domain.ParentForm, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx  context.Context
			Form *domain.ParentForm
		}
	}
	lockGetByUserID sync.RWMutex
	lockUpsert      sync.RWMutex
}

func (mock *parentRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ParentForm, error) {
	if mock.GetByUserIDFunc == nil {
		panic("parentRepoMock.GetByUserIDFunc: method is nil but parentRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *parentRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *parentRepoMock) Upsert(ctx context.Context, form *domain.ParentForm) (*domain.ParentForm, error) {
	if mock.UpsertFunc == nil {
		panic("parentRepoMock.UpsertFunc: method is nil but parentRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Form *domain.ParentForm
	}{Ctx: ctx, Form: form}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, form)
}

func (mock *parentRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Form *domain.ParentForm
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ waiverRepo = &waiverRepoMock{}

type waiverRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.WaiverForm, error)
	UpsertFunc      func(ctx context.Context, form *domain.WaiverForm) (*domain.WaiverForm, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx  context.Context
			Form *domain.WaiverForm
		}
	}
	lockGetByUserID sync.RWMutex
	lockUpsert      sync.RWMutex
}

func (mock *waiverRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.WaiverForm, error) {
	if mock.GetByUserIDFunc == nil {
		panic("waiverRepoMock.GetByUserIDFunc: method is nil but waiverRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *waiverRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *waiverRepoMock) Upsert(ctx context.Context, form *domain.WaiverForm) (*domain.WaiverForm, error) {
	if mock.UpsertFunc == nil {
		panic("waiverRepoMock.UpsertFunc: method is nil but waiverRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Form *domain.WaiverForm
	}{Ctx: ctx, Form: form}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, form)
}

func (mock *waiverRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Form *domain.WaiverForm
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

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
	callInfo := struct {
		Ctx context.Context
		Ev  notify.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockEmit.Lock()
	mock.calls.Emit = append(mock.calls.Emit, callInfo)
	mock.lockEmit.Unlock()
	if mock.EmitFunc != nil {
		mock.EmitFunc(ctx, ev)
	}
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
