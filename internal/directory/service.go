package directory

import (
	"context"
	"errors"
	"log/slog"
)

// Service implements the lookup algorithm over an API: try the input as an
// exact key first, fall back to a starts-with search only when the key does
// not exist. Transport and auth failures propagate instead of being conflated
// with not-found.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService builds a lookup service over the given Graph API.
func NewService(api API, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: api, logger: logger}
}

// LookupUser resolves query as an object ID or UPN; on not-found it returns
// all prefix matches instead. Exactly one of exact/matches is meaningful:
// exact != nil for a direct hit, otherwise matches (possibly empty).
func (s *Service) LookupUser(ctx context.Context, query string) (exact *User, matches []User, err error) {
	u, err := s.api.UserByID(ctx, query)
	if err == nil {
		return u, nil, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, nil, err
	}
	s.logger.Debug("direct user lookup missed, searching", "query", query)
	matches, err = s.api.SearchUsers(ctx, query)
	return nil, matches, err
}

// LookupGroup resolves query as a group object ID, falling back to search.
func (s *Service) LookupGroup(ctx context.Context, query string) (exact *Group, matches []Group, err error) {
	g, err := s.api.GroupByID(ctx, query)
	if err == nil {
		return g, nil, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, nil, err
	}
	s.logger.Debug("direct group lookup missed, searching", "query", query)
	matches, err = s.api.SearchGroups(ctx, query)
	return nil, matches, err
}

// LookupServicePrincipals always searches; there is no direct-by-key attempt.
func (s *Service) LookupServicePrincipals(ctx context.Context, query string) ([]ServicePrincipal, error) {
	return s.api.SearchServicePrincipals(ctx, query)
}

// LookupApplications always searches; there is no direct-by-key attempt.
func (s *Service) LookupApplications(ctx context.Context, query string) ([]Application, error) {
	return s.api.SearchApplications(ctx, query)
}

// UserManager resolves a user (direct hit, else first search match) and then
// fetches that user's manager. resolved is nil when no user matched; manager
// is nil when the resolved user has no manager assigned.
func (s *Service) UserManager(ctx context.Context, query string) (resolved *User, manager *User, err error) {
	exact, matches, err := s.LookupUser(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	resolved = exact
	if resolved == nil {
		if len(matches) == 0 {
			return nil, nil, nil
		}
		resolved = &matches[0]
	}

	manager, err = s.api.ManagerOf(ctx, resolved.ID)
	if errors.Is(err, ErrNotFound) {
		return resolved, nil, nil
	}
	if err != nil {
		return resolved, nil, err
	}
	return resolved, manager, nil
}
