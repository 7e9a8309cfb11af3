package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuthRepo counts calls so tests can assert which remote operations ran.
type fakeAuthRepo struct {
	loginFn    func(ctx context.Context, email, password string) (*repository.AuthResult, error)
	registerFn func(ctx context.Context, input repository.RegisterInput) (*repository.AuthResult, error)
	logoutFn   func(ctx context.Context) error
	userInfoFn func(ctx context.Context) (*entity.User, error)
	forgotFn   func(ctx context.Context, email string) error
	resetFn    func(ctx context.Context, token, newPassword string) error

	calls map[string]int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{calls: make(map[string]int)}
}

func (f *fakeAuthRepo) Login(ctx context.Context, email, password string) (*repository.AuthResult, error) {
	f.calls["login"]++

	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthRepo) Register(ctx context.Context, input repository.RegisterInput) (*repository.AuthResult, error) {
	f.calls["register"]++

	return f.registerFn(ctx, input)
}

func (f *fakeAuthRepo) Logout(ctx context.Context) error {
	f.calls["logout"]++
	if f.logoutFn == nil {
		return nil
	}

	return f.logoutFn(ctx)
}

func (f *fakeAuthRepo) UserInfo(ctx context.Context) (*entity.User, error) {
	f.calls["userInfo"]++

	return f.userInfoFn(ctx)
}

func (f *fakeAuthRepo) ForgotPassword(ctx context.Context, email string) error {
	f.calls["forgotPassword"]++
	if f.forgotFn == nil {
		return nil
	}

	return f.forgotFn(ctx, email)
}

func (f *fakeAuthRepo) ResetPassword(ctx context.Context, token, newPassword string) error {
	f.calls["resetPassword"]++
	if f.resetFn == nil {
		return nil
	}

	return f.resetFn(ctx, token, newPassword)
}

func (f *fakeAuthRepo) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}

	return total
}

// memCredStore is an in-memory CredentialStore with injectable failures.
type memCredStore struct {
	mu    sync.Mutex
	cred  entity.Credential
	found bool

	loadErr error
	saveErr error
}

var _ service.CredentialStore = (*memCredStore)(nil)

func (s *memCredStore) Load(context.Context) (entity.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return entity.Credential{}, false, s.loadErr
	}

	return s.cred, s.found, nil
}

func (s *memCredStore) Save(_ context.Context, cred entity.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.cred = cred
	s.found = true

	return nil
}

func (s *memCredStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = entity.Credential{}
	s.found = false

	return nil
}

func (s *memCredStore) stored() (entity.Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cred, s.found
}

// fakeInspector returns canned claims.
type fakeInspector struct {
	claims *service.TokenClaims
	err    error
}

func (f *fakeInspector) Inspect(string) (*service.TokenClaims, error) {
	return f.claims, f.err
}

type fakeAccountRepo struct {
	listFn   func(ctx context.Context) ([]entity.Account, error)
	createFn func(ctx context.Context, form repository.AccountForm) error
	updateFn func(ctx context.Context, id string, form repository.AccountForm) error
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeAccountRepo) List(ctx context.Context) ([]entity.Account, error) {
	return f.listFn(ctx)
}

func (f *fakeAccountRepo) Create(ctx context.Context, form repository.AccountForm) error {
	return f.createFn(ctx, form)
}

func (f *fakeAccountRepo) Update(ctx context.Context, id string, form repository.AccountForm) error {
	return f.updateFn(ctx, id, form)
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeTransactionRepo struct {
	listFn    func(ctx context.Context, accountID string) ([]entity.Transaction, error)
	createFn  func(ctx context.Context, form repository.TransactionForm) error
	updateFn  func(ctx context.Context, id string, form repository.TransactionForm) error
	deleteFn  func(ctx context.Context, id string) error
	summaryFn func(ctx context.Context) (*entity.TransactionSummary, error)
}

func (f *fakeTransactionRepo) List(ctx context.Context, accountID string) ([]entity.Transaction, error) {
	return f.listFn(ctx, accountID)
}

func (f *fakeTransactionRepo) Create(ctx context.Context, form repository.TransactionForm) error {
	return f.createFn(ctx, form)
}

func (f *fakeTransactionRepo) Update(ctx context.Context, id string, form repository.TransactionForm) error {
	return f.updateFn(ctx, id, form)
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeTransactionRepo) Summary(ctx context.Context) (*entity.TransactionSummary, error) {
	return f.summaryFn(ctx)
}
