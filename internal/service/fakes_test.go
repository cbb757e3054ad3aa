package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

var testAppConfig = config.App{
	TokenSignKey:       "test-sign-key",
	TokenIssuer:        "test-issuer",
	SessionDuration:    time.Hour,
	ResetTokenDuration: 24 * time.Hour,
	Version:            "test",
}

// ── passThroughTransactor ─────────────────────────────────────────────────────

// passThroughTransactor runs fn directly and records the scopes it opened.
// nested counts calls made while another scope was open.
type passThroughTransactor struct {
	calls  int
	nested int
	depth  int
}

func (p *passThroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	if p.depth > 0 {
		p.nested++
	}
	p.depth++
	defer func() { p.depth-- }()
	return fn(ctx)
}

// ── memoryCredentialStore ─────────────────────────────────────────────────────

type credentialRow struct {
	hash         string
	failed       int
	lockoutUntil *time.Time
}

// memoryCredentialStore is an in-memory store.CredentialStore with the same
// view semantics as the Postgres repository.
type memoryCredentialStore struct {
	mu         sync.Mutex
	ids        map[string]string // name -> id
	names      map[string]string // id -> name
	rows       map[string]*credentialRow
	failWrites error
}

var (
	_ store.CredentialStore    = (*memoryCredentialStore)(nil)
	_ store.PrincipalDirectory = (*memoryCredentialStore)(nil)
)

func newMemoryCredentialStore() *memoryCredentialStore {
	return &memoryCredentialStore{
		ids:   make(map[string]string),
		names: make(map[string]string),
		rows:  make(map[string]*credentialRow),
	}
}

func (s *memoryCredentialStore) addPrincipal(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("p-%d", len(s.ids)+1)
	s.ids[name] = id
	s.names[id] = name
	return id
}

func (s *memoryCredentialStore) addUser(t *testing.T, name, password string) string {
	t.Helper()

	id := s.addPrincipal(name)
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, s.SetPasswordHash(context.Background(), id, hash))
	return id
}

func (s *memoryCredentialStore) view(id string) *models.Credential {
	name, ok := s.names[id]
	if !ok {
		return nil
	}

	credential := &models.Credential{PrincipalID: id, UserName: name, LockoutEnabled: true}
	if row, ok := s.rows[id]; ok {
		credential.PasswordHash = row.hash
		credential.FailedAttemptCount = row.failed
		if row.lockoutUntil != nil {
			until := *row.lockoutUntil
			credential.LockoutUntil = &until
		}
	}
	return credential
}

func (s *memoryCredentialStore) row(id string) (*credentialRow, error) {
	if s.failWrites != nil {
		return nil, s.failWrites
	}
	if _, ok := s.names[id]; !ok {
		return nil, store.ErrMissingPrincipal
	}
	row, ok := s.rows[id]
	if !ok {
		row = &credentialRow{}
		s.rows[id] = row
	}
	return row, nil
}

func (s *memoryCredentialStore) FindPrincipalByName(_ context.Context, name string) (*models.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[name]
	if !ok {
		return nil, nil
	}
	return &models.Principal{ID: id, Name: name}, nil
}

func (s *memoryCredentialStore) FindPrincipalByID(_ context.Context, id string) (*models.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, ok := s.names[id]
	if !ok {
		return nil, nil
	}
	return &models.Principal{ID: id, Name: name}, nil
}

func (s *memoryCredentialStore) FindByName(_ context.Context, name string) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.ids[name]), nil
}

func (s *memoryCredentialStore) FindByID(_ context.Context, principalID string) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(principalID), nil
}

func (s *memoryCredentialStore) LockByName(ctx context.Context, name string) (*models.Credential, error) {
	return s.FindByName(ctx, name)
}

func (s *memoryCredentialStore) SetPasswordHash(_ context.Context, principalID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.row(principalID)
	if err != nil {
		return err
	}
	row.hash = hash
	return nil
}

func (s *memoryCredentialStore) RecordFailedAttempt(_ context.Context, principalID string, threshold int, lockoutUntil time.Time) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.row(principalID)
	if err != nil {
		return nil, err
	}
	row.failed++
	if row.failed >= threshold {
		row.failed = 0
		row.lockoutUntil = &lockoutUntil
	}
	return s.view(principalID), nil
}

func (s *memoryCredentialStore) ResetFailedAttempts(_ context.Context, principalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.row(principalID)
	if err != nil {
		return err
	}
	row.failed = 0
	return nil
}

func (s *memoryCredentialStore) SetLockoutEnd(_ context.Context, principalID string, end time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.row(principalID)
	if err != nil {
		return err
	}
	row.lockoutUntil = &end
	return nil
}

func (s *memoryCredentialStore) Save(_ context.Context, credential models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.row(credential.PrincipalID)
	if err != nil {
		return err
	}
	row.hash = credential.PasswordHash
	row.failed = credential.FailedAttemptCount
	row.lockoutUntil = credential.LockoutUntil
	return nil
}

func (s *memoryCredentialStore) CreateCredential(context.Context, models.Credential) error {
	return store.ErrUnsupported
}

func (s *memoryCredentialStore) DeleteCredential(context.Context, string) error {
	return store.ErrUnsupported
}

func (s *memoryCredentialStore) SetUserName(context.Context, string, string) error {
	return store.ErrUnsupported
}

// ── Other fakes ───────────────────────────────────────────────────────────────

type fakeClaimAuthorization struct {
	mu      sync.Mutex
	granted map[string]bool
}

func allowAll() *fakeClaimAuthorization {
	f := &fakeClaimAuthorization{granted: make(map[string]bool)}
	for _, claim := range models.DefaultAdminClaims() {
		f.granted[claim.Key()] = true
	}
	return f
}

func (f *fakeClaimAuthorization) IsAuthorized(_ context.Context, caller models.Caller, claim models.Claim) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !caller.IsAnonymous() && f.granted[claim.Key()], nil
}

func (f *fakeClaimAuthorization) Invalidate(context.Context) error {
	return nil
}

type fakePasswordRules struct {
	rules []models.PasswordStrengthRule
	err   error
}

func (f *fakePasswordRules) ListRules(context.Context) ([]models.PasswordStrengthRule, error) {
	return f.rules, f.err
}

type recordingSessionWriter struct {
	tokens     []models.Token
	persistent []bool
	cleared    int
}

func (w *recordingSessionWriter) WriteSession(token models.Token, persistent bool) {
	w.tokens = append(w.tokens, token)
	w.persistent = append(w.persistent, persistent)
}

func (w *recordingSessionWriter) ClearSession() {
	w.cleared++
}

type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// deliveryPluginFunc is a function-field DeliveryPlugin.
type deliveryPluginFunc struct {
	name string
	send func(ctx context.Context, userName string, info map[string]string, token string) error
}

func (p deliveryPluginFunc) Name() string {
	return p.name
}

func (p deliveryPluginFunc) SendPasswordResetToken(ctx context.Context, userName string, info map[string]string, token string) error {
	return p.send(ctx, userName, info, token)
}

var errBroker = errors.New("broker unreachable")

// ── authFixture ───────────────────────────────────────────────────────────────

type authFixture struct {
	svc         AuthenticationService
	transactor  *passThroughTransactor
	store       *memoryCredentialStore
	clock       *utils.FakeClock
	writer      *recordingSessionWriter
	authz       *fakeClaimAuthorization
	rules       *fakePasswordRules
	sessions    SessionManager
	resetTokens ResetTokenService
}

const testMaxFailedAttempts = 3

func newAuthFixture(t *testing.T, plugins ...DeliveryPlugin) *authFixture {
	t.Helper()

	f := &authFixture{
		store:  newMemoryCredentialStore(),
		clock:  utils.NewFakeClock(testNow),
		writer: &recordingSessionWriter{},
		authz:  allowAll(),
		rules:  &fakePasswordRules{},

		transactor: &passThroughTransactor{},
	}

	ids := &sequenceIDs{}
	f.sessions = NewSessionManager(testAppConfig, NewMemoryRevocationStore(time.Hour, f.clock), f.clock, ids, logger.Nop())
	f.resetTokens = NewResetTokenService(testAppConfig, f.clock, ids, logger.Nop())

	core := NewAuthenticationService(AuthenticationDependencies{
		Transactor:    f.transactor,
		Principals:    f.store,
		Credentials:   f.store,
		Authorization: f.authz,
		Policy:        NewPasswordPolicy(f.rules, config.PasswordPolicy{}, logger.Nop()),
		ResetTokens:   f.resetTokens,
		Sessions:      f.sessions,
		Plugins:       plugins,
		Clock:         f.clock,
	}, config.Auth{
		MaxFailedAttempts: testMaxFailedAttempts,
		LockoutDuration:   5 * time.Minute,
	}, logger.Nop())

	f.svc = NewAuthenticationServiceValidator(f.authz, logger.Nop()).Wrap(core)
	return f
}

// ctx returns a request context of an administrator with a session writer.
func (f *authFixture) ctx() context.Context {
	ctx := utils.WithCaller(context.Background(), models.Caller{PrincipalID: "admin-id", UserName: "admin", SessionID: "s-admin"})
	return WithSessionWriter(ctx, f.writer)
}

// anonymousCtx returns a request context without a caller.
func (f *authFixture) anonymousCtx() context.Context {
	return WithSessionWriter(context.Background(), f.writer)
}

func (f *authFixture) login(t *testing.T, name, password string) bool {
	t.Helper()

	ok, err := f.svc.Login(f.anonymousCtx(), name, password, false)
	require.NoError(t, err)
	return ok
}
