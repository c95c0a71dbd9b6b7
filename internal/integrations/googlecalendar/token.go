package googlecalendar

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

const tokenStoreTimeout = 3 * time.Second

// persistingTokenSource сохраняет токен в БД, если oauth2 его обновил
type persistingTokenSource struct {
	base       oauth2.TokenSource
	businessID int64
	calendarID string
	store      TokenStore
	log        Logger

	mu   sync.Mutex
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	changed := tok.AccessToken != s.last
	s.last = tok.AccessToken
	s.mu.Unlock()

	if changed && s.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), tokenStoreTimeout)
		defer cancel()

		creds := &domain.CalendarCredentials{
			AccessToken:  tok.AccessToken,
			RefreshToken: tok.RefreshToken,
			Expiry:       tok.Expiry,
			CalendarID:   s.calendarID,
		}
		if err := s.store.UpdateCalendarToken(ctx, s.businessID, creds); err != nil {
			// токен все равно валиден для текущего запроса
			s.log.Warn("Token: failed to persist refreshed token for business id=%d: %v", s.businessID, err)
		} else {
			s.log.Info("Token: refreshed token persisted for business id=%d", s.businessID)
		}
	}

	return tok, nil
}

func tokenFromCredentials(creds *domain.CalendarCredentials) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       creds.Expiry,
	}
}
