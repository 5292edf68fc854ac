package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// TokenSvcFacade issues and validates session tokens. Tokens are stateless
// claims carrying the subject id and role only; there is no refresh mechanism
// or revocation list, expiry forces re-authentication.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed session token for the account.
	GenerateAccessToken(ctx context.Context, subjectID string, role domain.Role) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google OAuth code exchange and ID
// token validation used by customer sign-in.
type GoogleOAuthHandlerSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token received from Google and
	// returns the payload if valid.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
