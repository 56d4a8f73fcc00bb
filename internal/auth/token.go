package auth

import (
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

// TokenIssuer mints HS256 access/refresh pairs. Refresh tokens carry a jti so
// logout can blacklist one token instead of the whole account.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

func (i *TokenIssuer) IssueForOwner(adminID uuid.UUID) (TokenPair, error) {
	base := jwt.MapClaims{
		"sub":            adminID.String(),
		"principal_kind": middleware.PrincipalKindAdmin,
	}
	return i.issuePair(base)
}

func (i *TokenIssuer) IssueForStaff(employeeID, orgID uuid.UUID, roleCode string) (TokenPair, error) {
	base := jwt.MapClaims{
		"sub":             employeeID.String(),
		"principal_kind":  middleware.PrincipalKindEmployee,
		"organization_id": orgID.String(),
		"role_code":       roleCode,
	}
	return i.issuePair(base)
}

func (i *TokenIssuer) issuePair(base jwt.MapClaims) (TokenPair, error) {
	access, err := i.sign(base, tokenUseAccess, i.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := i.sign(base, tokenUseRefresh, i.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(i.accessTTL.Seconds()),
	}, nil
}

func (i *TokenIssuer) sign(base jwt.MapClaims, use string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"token_use": use,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	for k, v := range base {
		claims[k] = v
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// ParseRefresh validates a refresh token and returns its claims.
func (i *TokenIssuer) ParseRefresh(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if use, _ := claims["token_use"].(string); use != tokenUseRefresh {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
