package admin

import (
	"context"
	"sync"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg admin . attendeeLister parentLister waiverLister

var _ attendeeLister = &attendeeListerMock{}

type attendeeListerMock struct {
	ListWithProfilesFunc func(ctx context.Context) ([]domain.AttendeeSubmission, error)

	calls struct {
		ListWithProfiles []struct {
			Ctx context.Context
		}
	}
	lockListWithProfiles sync.RWMutex
}

func (mock *attendeeListerMock) ListWithProfiles(ctx context.Context) ([]domain.AttendeeSubmission, error) {
	if mock.ListWithProfilesFunc == nil {
		panic("attendeeListerMock.ListWithProfilesFunc: method is nil but attendeeLister.ListWithProfiles was just called")
	}
	mock.lockListWithProfiles.Lock()
	mock.calls.ListWithProfiles = append(mock.calls.ListWithProfiles, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockListWithProfiles.Unlock()
	return mock.ListWithProfilesFunc(ctx)
}

func (mock *attendeeListerMock) ListWithProfilesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListWithProfiles.RLock()
	calls := mock.calls.ListWithProfiles
	mock.lockListWithProfiles.RUnlock()
	return calls
}

var _ parentLister = &parentListerMock{}

type parentListerMock struct {
	ListWithProfilesFunc func(ctx context.Context) ([]domain.ParentSubmission, error)

	calls struct {
		ListWithProfiles []struct {
			Ctx context.Context
		}
	}
	lockListWithProfiles sync.RWMutex
}

func (mock *parentListerMock) ListWithProfiles(ctx context.Context) ([]domain.ParentSubmission, error) {
	if mock.ListWithProfilesFunc == nil {
		panic("parentListerMock.ListWithProfilesFunc: method is nil but parentLister.ListWithProfiles was just called")
	}
	mock.lockListWithProfiles.Lock()
	mock.calls.ListWithProfiles = append(mock.calls.ListWithProfiles, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockListWithProfiles.Unlock()
	return mock.ListWithProfilesFunc(ctx)
}

func (mock *parentListerMock) ListWithProfilesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListWithProfiles.RLock()
	calls := mock.calls.ListWithProfiles
	mock.lockListWithProfiles.RUnlock()
	return calls
}

var _ waiverLister = &waiverListerMock{}

type waiverListerMock struct {
	ListWithProfilesFunc func(ctx context.Context) ([]domain.WaiverSubmission, error)

	calls struct {
		ListWithProfiles []struct {
			Ctx context.Context
		}
	}
	lockListWithProfiles sync.RWMutex
}

func (mock *waiverListerMock) ListWithProfiles(ctx context.Context) ([]domain.WaiverSubmission, error) {
	if mock.ListWithProfilesFunc == nil {
		panic("waiverListerMock.ListWithProfilesFunc: method is nil but waiverLister.ListWithProfiles was just called")
	}
	mock.lockListWithProfiles.Lock()
	mock.calls.ListWithProfiles = append(mock.calls.ListWithProfiles, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockListWithProfiles.Unlock()
	return mock.ListWithProfilesFunc(ctx)
}

func (mock *waiverListerMock) ListWithProfilesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListWithProfiles.RLock()
	calls := mock.calls.ListWithProfiles
	mock.lockListWithProfiles.RUnlock()
	return calls
}
