package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"table-booking/internal/handler/httperr"
	"table-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ManageTokenValidator interface {
	ValidateManageToken(tokenString string) (*jwt.ManageClaims, error)
}

const (
	ctxReservationIDKey = "reservation_id"
	manageTokenQuery    = "token"
)

var errManageTokenMismatch = errors.New("manage token does not match reservation")

type ManageAuthMiddleware struct {
	validator ManageTokenValidator
}

func NewManageAuthMiddleware(validator ManageTokenValidator) *ManageAuthMiddleware {
	return &ManageAuthMiddleware{validator: validator}
}

// RequireManageToken admits a request whose token was issued for the :code in the path.
// The token may come as a Bearer header or a ?token= query parameter (links in emails).
func (m *ManageAuthMiddleware) RequireManageToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query(manageTokenQuery)
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Manage token required",
				httperr.Reason("token_required"))
			return
		}

		claims, err := m.validator.ValidateManageToken(token)
		if err != nil {
			slog.Warn("Manage token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired manage token",
				httperr.Reason("invalid_token"))
			return
		}

		if !strings.EqualFold(strings.TrimSpace(c.Param("code")), claims.Code) {
			httperr.AbortWithError(c, http.StatusForbidden, errManageTokenMismatch, "Token not valid for this reservation",
				httperr.Reason("token_mismatch"))
			return
		}

		c.Set(ctxReservationIDKey, claims.ReservationID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetReservationID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxReservationIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
