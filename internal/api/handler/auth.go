package handler

import (
	"errors"
	"net/http"
	"os"
	"time"

	"tafseel/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	jwt "github.com/golang-jwt/jwt/v5"
)

// The builder has no real account system; editors get an anonymous identity
// backed by a short-lived JWT and the frontend treats holding one as "logged
// in".

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("tafseel-dev-secret")
}

// generateJWT issues a token carrying the anonymous editor ID.
func generateJWT(editorID string) (string, error) {
	claims := jwt.MapClaims{
		"editor_id": editorID,
		"exp":       time.Now().Add(config.EditorTokenTTL).Unix(),
		"iss":       config.TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// validateAndGetEditorID parses a bearer token and returns the editor ID.
func validateAndGetEditorID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	editorID, _ := claims["editor_id"].(string)
	if editorID == "" {
		return "", errors.New("missing editor_id claim")
	}
	return editorID, nil
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		return "", false
	}
	return authHeader[7:], true
}

// GetEditorToken creates an anonymous editor identity and returns its JWT.
func (h *Handler) GetEditorToken(c *gin.Context) {
	editorUUID, _ := uuid.NewRandom()
	editorID := editorUUID.String()

	token, err := generateJWT(editorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "editor_id": editorID})
}
