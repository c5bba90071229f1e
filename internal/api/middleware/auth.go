package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clearview/jobtracker/internal/api/metrics"
	"github.com/clearview/jobtracker/internal/core/domain"
	"github.com/clearview/jobtracker/internal/core/ports"
)

// Authenticate resolves the bearer token of each request into a principal and
// stores it in the request context. It never rejects: a missing, invalid or
// stale token leaves the request anonymous, and handlers that need an
// identity reject it themselves.
func Authenticate(codec ports.TokenCodec, directory ports.AccountDirectory, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			principal := resolvePrincipal(req.Context(), req.Header.Get(echo.HeaderAuthorization), codec, directory, log)
			c.SetRequest(req.WithContext(domain.WithPrincipal(req.Context(), principal)))
			return next(c)
		}
	}
}

func resolvePrincipal(
	ctx context.Context,
	header string,
	codec ports.TokenCodec,
	directory ports.AccountDirectory,
	log zerolog.Logger,
) domain.Principal {
	token, ok := bearerToken(header)
	if !ok {
		return domain.Anonymous()
	}

	subject, err := codec.Validate(token)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		log.Debug().Err(err).Msg("ignoring invalid bearer token")
		return domain.Anonymous()
	}

	account, err := directory.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.TokenValidationsTotal.WithLabelValues("unknown_subject").Inc()
			log.Debug().Str("subject", subject).Msg("token subject no longer exists")
		} else {
			metrics.TokenValidationsTotal.WithLabelValues("lookup_error").Inc()
			log.Error().Err(err).Str("subject", subject).Msg("principal lookup failed")
		}
		return domain.Anonymous()
	}

	metrics.TokenValidationsTotal.WithLabelValues("authenticated").Inc()
	return domain.Authenticated(*account)
}

// bearerToken extracts the credential of an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
