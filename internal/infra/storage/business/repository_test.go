package business

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

func TestCalendarTokenUpdate(t *testing.T) {
	expiry := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		creds     *domain.CalendarCredentials
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name:      "with refresh token",
			creds:     &domain.CalendarCredentials{AccessToken: "access", RefreshToken: "refresh", Expiry: expiry},
			wantQuery: "UPDATE businesses SET google_access_token = $1, google_token_expiry = $2, updated_at = NOW(), google_refresh_token = $3 WHERE id = $4",
			wantArgs:  []interface{}{"access", expiry, "refresh", int64(7)},
		},
		{
			name:      "keeps stored refresh token when empty",
			creds:     &domain.CalendarCredentials{AccessToken: "access", Expiry: expiry},
			wantQuery: "UPDATE businesses SET google_access_token = $1, google_token_expiry = $2, updated_at = NOW() WHERE id = $3",
			wantArgs:  []interface{}{"access", expiry, int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := calendarTokenUpdate(7, tt.creds).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
