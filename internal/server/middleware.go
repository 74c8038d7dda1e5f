package server

import (
	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/usercontext"
	"github.com/gin-gonic/gin"
)

const contextProfileIDKey = "profile_id"

// AuthRequired resolves the session cookie into the request context.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		auth, err := s.profileSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := usercontext.WithProfile(c.Request.Context(), snowflake.ID(auth.Profile.ID), auth.Profile.Admin)
		c.Request = c.Request.WithContext(ctx)
		c.Set(contextProfileIDKey, snowflake.ID(auth.Profile.ID).String())
		c.Next()
	}
}

// AdminRequired gates back-office routes. It must run after AuthRequired.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !usercontext.IsAdmin(c.Request.Context()) {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}
