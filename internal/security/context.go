package security

import "github.com/gin-gonic/gin"

// ContextKeyClaims is the gin context key holding the validated AdminClaims
const ContextKeyClaims = "current_claims"

// SetClaims stores validated claims on the request context
func SetClaims(c *gin.Context, claims *AdminClaims) {
	c.Set(ContextKeyClaims, claims)
}

// GetClaims returns the claims stored by the auth middleware, or nil
func GetClaims(c *gin.Context) *AdminClaims {
	v, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, _ := v.(*AdminClaims)
	return claims
}
