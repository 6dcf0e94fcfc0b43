package repository

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

// ResolveSession settles the initial Authenticating state once the identity
// provider has answered. A remote user wins; otherwise a previously
// persisted local-fallback record is restored; otherwise the session is
// unauthenticated.
func (s *Store) ResolveSession(remote *model.User) {
	if remote != nil {
		s.SetRemoteUser(remote)
		return
	}

	stored, err := s.fallback.Load()
	if err != nil {
		slog.Warn("error loading local fallback user", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if stored != nil {
		s.user = stored
		s.state = model.SessionLocalFallback
		s.savedAnalyses = copySlice(stored.SavedAnalyses)
		return
	}

	s.user = nil
	s.state = model.SessionUnauthenticated
	s.savedAnalyses = nil
}

func (s *Store) SetRemoteUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.state = model.SessionRemote
}

// SetLocalFallbackUser installs and persists a demo-account session.
func (s *Store) SetLocalFallbackUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.state = model.SessionLocalFallback
	s.persistFallbackLocked()
}

// Logout clears the session, favorites, saved analyses and the persisted
// fallback record.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.state = model.SessionUnauthenticated
	s.favorites = make(map[string]struct{})
	s.savedAnalyses = nil

	if err := s.fallback.Clear(); err != nil {
		slog.Error("error removing local fallback user", "error", err)
	}
}

func (s *Store) SessionState() model.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// IsAdmin reports whether the session is privileged. The check is by email
// only; provenance (remote or local fallback) does not matter.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Email == s.adminEmail
}

// ---- favorites ------------------------------------------------------------

// ToggleFavorite flips membership of id and returns whether it is now set.
// Toggling twice restores the original set.
func (s *Store) ToggleFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[id]; ok {
		delete(s.favorites, id)
		return false
	}
	s.favorites[id] = struct{}{}
	return true
}

func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		out = append(out, id)
	}
	return out
}

func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[id]
	return ok
}

// ---- saved chats ----------------------------------------------------------

func (s *Store) SaveChat(messages []model.ChatMessage) *model.SavedChat {
	if len(messages) == 0 {
		return nil
	}

	title := messages[0].Content
	if len(title) > 20 {
		title = title[:20]
	}

	chat := model.SavedChat{
		ID:       uuid.NewString(),
		Title:    "Chat " + time.Now().Format("2006-01-02") + " - " + title + "...",
		Messages: copySlice(messages),
		Date:     time.Now().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedChats = append([]model.SavedChat{chat}, s.savedChats...)
	return &chat
}

func (s *Store) SavedChats() []model.SavedChat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.savedChats)
}

// ---- saved analyses -------------------------------------------------------

func (s *Store) SaveAnalysis(a model.PodcastAnalysis) model.PodcastAnalysis {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.savedAnalyses = append([]model.PodcastAnalysis{a}, s.savedAnalyses...)
	s.persistFallbackLocked()
	return a
}

func (s *Store) DeleteAnalysis(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	s.savedAnalyses, ok = deleteByKey(s.savedAnalyses, id, func(a model.PodcastAnalysis) string { return a.ID })
	if ok {
		s.persistFallbackLocked()
	}
	return ok
}

func (s *Store) SavedAnalyses() []model.PodcastAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.savedAnalyses)
}

// persistFallbackLocked writes the fallback record (with current analyses)
// whenever a local-fallback session is active. Caller holds s.mu.
func (s *Store) persistFallbackLocked() {
	if s.state != model.SessionLocalFallback || s.user == nil {
		return
	}

	record := *s.user
	record.SavedAnalyses = copySlice(s.savedAnalyses)
	if err := s.fallback.Save(&record); err != nil {
		slog.Error("error persisting local fallback user", "error", err)
	}
}
