package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

var _ credentialRepo = &credentialRepoMock{}

type credentialRepoMock struct {
	GetByProfileAndMethodFunc func(ctx context.Context, profileID uuid.UUID, method domain.CredentialMethod) (*domain.Credential, error)
	GetByProviderFunc         func(ctx context.Context, method domain.CredentialMethod, providerID string) (*domain.Credential, error)
	CreateFunc                func(ctx context.Context, c *domain.Credential) (*domain.Credential, error)

	calls struct {
		GetByProfileAndMethod []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			Method    domain.CredentialMethod
		}
		GetByProvider []struct {
			Ctx        context.Context
			Method     domain.CredentialMethod
			ProviderID string
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Credential
		}
	}
	lockGetByProfileAndMethod sync.RWMutex
	lockGetByProvider         sync.RWMutex
	lockCreate                sync.RWMutex
}

func (mock *credentialRepoMock) GetByProfileAndMethod(ctx context.Context, profileID uuid.UUID, method domain.CredentialMethod) (*domain.Credential, error) {
	if mock.GetByProfileAndMethodFunc == nil {
		panic("credentialRepoMock.GetByProfileAndMethodFunc: method is nil but credentialRepo.GetByProfileAndMethod was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		Method    domain.CredentialMethod
	}{Ctx: ctx, ProfileID: profileID, Method: method}
	mock.lockGetByProfileAndMethod.Lock()
	mock.calls.GetByProfileAndMethod = append(mock.calls.GetByProfileAndMethod, callInfo)
	mock.lockGetByProfileAndMethod.Unlock()
	return mock.GetByProfileAndMethodFunc(ctx, profileID, method)
}

func (mock *credentialRepoMock) GetByProfileAndMethodCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	Method    domain.CredentialMethod
} {
	mock.lockGetByProfileAndMethod.RLock()
	calls := mock.calls.GetByProfileAndMethod
	mock.lockGetByProfileAndMethod.RUnlock()
	return calls
}

func (mock *credentialRepoMock) GetByProvider(ctx context.Context, method domain.CredentialMethod, providerID string) (*domain.Credential, error) {
	if mock.GetByProviderFunc == nil {
		panic("credentialRepoMock.GetByProviderFunc: method is nil but credentialRepo.GetByProvider was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Method     domain.CredentialMethod
		ProviderID string
	}{Ctx: ctx, Method: method, ProviderID: providerID}
	mock.lockGetByProvider.Lock()
	mock.calls.GetByProvider = append(mock.calls.GetByProvider, callInfo)
	mock.lockGetByProvider.Unlock()
	return mock.GetByProviderFunc(ctx, method, providerID)
}

func (mock *credentialRepoMock) GetByProviderCalls() []struct {
	Ctx        context.Context
	Method     domain.CredentialMethod
	ProviderID string
} {
	mock.lockGetByProvider.RLock()
	calls := mock.calls.GetByProvider
	mock.lockGetByProvider.RUnlock()
	return calls
}

func (mock *credentialRepoMock) Create(ctx context.Context, c *domain.Credential) (*domain.Credential, error) {
	if mock.CreateFunc == nil {
		panic("credentialRepoMock.CreateFunc: method is nil but credentialRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Credential
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *credentialRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Credential
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
