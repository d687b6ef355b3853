package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewClient builds a read-only calendar client authenticated as a service
// account. The account must be shared on the target calendar.
func NewClient(ctx context.Context, clientEmail, privateKey, calendarID string) (*CalendarClient, error) {
	if clientEmail == "" || privateKey == "" {
		return nil, fmt.Errorf("google service account credentials are not configured")
	}

	conf := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{calendar.CalendarReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Calendar client: %w", err)
	}
	return NewCalendarClient(srv, calendarID), nil
}
