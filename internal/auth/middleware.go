package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tdhoang/careerledger/internal/dto"
)

const callerKey = "auth.caller"

// RequireCaller rejects requests without a valid bearer token and stashes
// the authenticated submitter address in the gin context.
func RequireCaller(tokens *TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		h := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		claims, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid bearer token"})
			return
		}
		ctx.Set(callerKey, claims.Address)
		ctx.Next()
	}
}

// CallerFromContext returns the authenticated submitter address, if any.
func CallerFromContext(ctx *gin.Context) (string, bool) {
	v, ok := ctx.Get(callerKey)
	if !ok {
		return "", false
	}
	addr, ok := v.(string)
	return addr, ok && addr != ""
}
