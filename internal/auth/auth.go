// Package auth mediates between the remote identity provider and the
// session held in the store. The provider itself is an external
// collaborator; this package adds the demo-account bypass on top of it.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rahmasleam/Neux-Mena-V5/internal/config"
	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

// ErrProviderUnavailable is returned by the unconfigured provider.
var ErrProviderUnavailable = errors.New("identity provider unavailable")

// Provider is the remote identity provider boundary.
type Provider interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	ResetPassword(ctx context.Context, email string) error
	Logout(ctx context.Context) error
}

// Session is the slice of the store this package needs.
type Session interface {
	SetRemoteUser(user *model.User)
	SetLocalFallbackUser(user *model.User)
	Logout()
}

type Service struct {
	provider Provider
	session  Session
	demo     []config.DemoAccount
}

func NewService(provider Provider, session Session, demo []config.DemoAccount) *Service {
	return &Service{provider: provider, session: session, demo: demo}
}

// Login authenticates against the remote provider. When that fails and the
// email matches a configured demo account, a local-fallback session is
// silently created instead of propagating the failure. Any other failure is
// returned to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.provider.Login(ctx, email, password)
	if err == nil {
		s.session.SetRemoteUser(user)
		return user, nil
	}

	slog.Warn("remote login failed", "email", email, "error", err)

	for _, acct := range s.demo {
		if acct.Email != email {
			continue
		}

		fallback := &model.User{
			ID:          demoID(acct),
			Name:        acct.Name,
			Email:       acct.Email,
			Favorites:   []string{},
			Preferences: model.Preferences{Notifications: true, Regions: []string{model.RegionGlobal}},
		}
		s.session.SetLocalFallbackUser(fallback)
		return fallback, nil
	}

	return nil, err
}

func demoID(acct config.DemoAccount) string {
	if acct.Admin {
		return "admin-demo-bypass"
	}
	return "guest-demo-bypass"
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	user, err := s.provider.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.session.SetRemoteUser(user)
	return user, nil
}

func (s *Service) ResetPassword(ctx context.Context, email string) error {
	return s.provider.ResetPassword(ctx, email)
}

// Logout signs out remotely (best effort) and always clears the session.
func (s *Service) Logout(ctx context.Context) {
	if err := s.provider.Logout(ctx); err != nil {
		slog.Error("error signing out of identity provider", "error", err)
	}
	s.session.Logout()
}

// UnavailableProvider rejects every operation. It stands in when no real
// identity provider is configured, leaving only the demo accounts usable.
type UnavailableProvider struct{}

func (UnavailableProvider) Login(context.Context, string, string) (*model.User, error) {
	return nil, ErrProviderUnavailable
}

func (UnavailableProvider) Register(context.Context, string, string, string) (*model.User, error) {
	return nil, ErrProviderUnavailable
}

func (UnavailableProvider) ResetPassword(context.Context, string) error {
	return ErrProviderUnavailable
}

func (UnavailableProvider) Logout(context.Context) error {
	return nil
}
