package helpers

import (
	"context"
	"errors"
	"strings"
	"time"

	"portal/internal/configuration"
	"portal/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// NewChallengeToken creates the signed token returned by phase 1. It carries
// the conversation ID and intent; the challenge itself stays server-side.
func NewChallengeToken(jwtSecret string, conv *models.Conversation) (string, error) {
	claims := models.ConversationClaims{
		ConversationID: conv.ID,
		Username:       conv.Username,
		Intent:         conv.Intent,
		Aud:            configuration.AudienceChallenge,
		Issuer:         configuration.AppName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: &jwt.NumericDate{Time: time.Now()},
			ExpiresAt: &jwt.NumericDate{
				Time: time.Now().Add(time.Minute * configuration.ChallengeTokenExpiryMinutes),
			},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseChallengeToken parses and validates a challenge token from an
// Authorization header value. Signature, expiry, and audience are checked.
func ParseChallengeToken(jwtSecret string, tokenString string) (models.ConversationClaims, error) {
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return models.ConversationClaims{}, errors.New("invalid token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := &models.ConversationClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return models.ConversationClaims{}, errors.New("invalid token")
	}

	if claims.Aud != configuration.AudienceChallenge {
		return models.ConversationClaims{}, errors.New("invalid token audience")
	}

	return *claims, nil
}

// GetConversationClaims extracts the claims placed in the request context by
// the challenge-token middleware.
func GetConversationClaims(c context.Context) (models.ConversationClaims, error) {
	value, ok := c.Value(models.ConversationClaimKey{}).(models.ConversationClaims)
	if !ok {
		return models.ConversationClaims{}, errors.New("invalid conversation claims")
	}
	return value, nil
}
