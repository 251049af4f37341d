package auth

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/filaleve/filaleve-web/app/models"
	"github.com/filaleve/filaleve-web/internal/pkg/upstream"
)

// revokedTTL matches the local session lifetime; a revoked backend
// credential older than this cannot belong to a live session anymore.
const revokedTTL = time.Hour

// Service is the single authority on authentication state. It owns all
// identity traffic to the backend; guards and controllers only read the
// results it hands back.
type Service struct {
	client *upstream.Client

	mu       sync.Mutex
	inflight map[string]struct{}
	revoked  map[string]time.Time
}

func NewService(client *upstream.Client) *Service {
	s := &Service{
		client:   client,
		inflight: make(map[string]struct{}),
		revoked:  make(map[string]time.Time),
	}
	client.SetOnUnauthorized(s.markRevoked)
	return s
}

func (s *Service) Client() *upstream.Client {
	return s.client
}

// Login signs the principal in and returns the adopted identity plus the
// opaque backend session credential. After a successful login the full
// identity is re-fetched; if that re-fetch fails the login payload is
// kept as a best-effort fallback.
func (s *Service) Login(ctx context.Context, cpf, password string) (*models.User, string, error) {
	user, credential, err := s.client.Login(ctx, cpf, password)
	if err != nil {
		return nil, "", err
	}

	if full, err := s.client.Me(ctx, credential); err == nil {
		user = full
	} else {
		log.Printf("login: identity re-fetch failed, keeping login payload: %v", err)
	}

	return user, credential, nil
}

// Register creates a new account at the backend.
func (s *Service) Register(ctx context.Context, name, cpf, password string) error {
	return s.client.Register(ctx, name, cpf, password)
}

// Logout invalidates the backend session best-effort. The caller always
// clears the local session afterwards, whatever happens here.
func (s *Service) Logout(ctx context.Context, credential string) {
	if credential == "" {
		return
	}
	if err := s.client.Logout(ctx, credential); err != nil {
		log.Printf("logout: backend invalidation failed, clearing local session anyway: %v", err)
	}
	s.markRevoked(credential)
}

// CheckAuthStatus is the explicit re-validation primitive: it probes the
// backend identity endpoint and reports whether the credential still
// names a valid session. At most one probe per credential is outstanding
// at any time; a caller arriving while one is in flight gets false
// without a second request and must re-check on its own.
func (s *Service) CheckAuthStatus(ctx context.Context, credential string) (*models.User, bool) {
	if credential == "" || s.IsRevoked(credential) {
		return nil, false
	}

	if !s.acquire(credential) {
		return nil, false
	}
	defer s.release(credential)

	user, err := s.client.Me(ctx, credential)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RefreshUserData re-fetches the identity behind an already-adopted
// session. No-op when nothing is adopted or a probe is already in
// flight; failures are logged and swallowed, expiry is caught by the
// next guard cycle instead.
func (s *Service) RefreshUserData(ctx context.Context, credential string, current *models.User) *models.User {
	if current == nil || credential == "" {
		return current
	}

	if !s.acquire(credential) {
		return current
	}
	defer s.release(credential)

	user, err := s.client.Me(ctx, credential)
	if err != nil {
		log.Printf("refresh: identity re-fetch failed, keeping current data: %v", err)
		return current
	}
	return user
}

// ChangePassword forwards the change; the backend session mechanism
// decides what it implies for the credential.
func (s *Service) ChangePassword(ctx context.Context, credential, currentPassword, newPassword string) error {
	return s.client.ChangePassword(ctx, credential, currentPassword, newPassword)
}

// IsRevoked reports whether the backend answered 401 for this credential
// since it was issued. Guards consult this so the request after an
// expiry observes a cleared session.
func (s *Service) IsRevoked(credential string) bool {
	if credential == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.revoked[credential]
	if !ok {
		return false
	}
	if time.Since(at) > revokedTTL {
		delete(s.revoked, credential)
		return false
	}
	return true
}

func (s *Service) markRevoked(credential string) {
	if credential == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for cred, at := range s.revoked {
		if now.Sub(at) > revokedTTL {
			delete(s.revoked, cred)
		}
	}
	s.revoked[credential] = now
}

func (s *Service) acquire(credential string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[credential]; busy {
		return false
	}
	s.inflight[credential] = struct{}{}
	return true
}

func (s *Service) release(credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, credential)
}
