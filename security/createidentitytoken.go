package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TraineeIdentity struct {
	ID       int32
	Username string
}

// IdentityClaims includes Identity and standard JWT claims

type Identity struct {
	ID         int32  `json:"nameid"`
	UniqueName string `json:"unique_name"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

func CreateIdentityToken(identity *TraineeIdentity, secret []byte, expiresIn time.Duration) (string, error) {
	claims := IdentityClaims{
		Identity: Identity{
			ID:         identity.ID,
			UniqueName: identity.Username,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ojt-tracker",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
