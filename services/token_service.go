package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenVerification = errors.New("token verification failed")
	ErrTokenPayload      = errors.New("invalid token payload")
)

// Claims is the payload of an access token.
type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Generate(userID uint) (string, error)
	// Verify checks signature and expiry and returns the user id carried by
	// the token.
	Verify(tokenString string) (uint, error)
}

type tokenService struct {
	secret     []byte
	expiration time.Duration
}

func NewTokenService(secret string, expiration time.Duration) TokenService {
	return &tokenService{secret: []byte(secret), expiration: expiration}
}

func (s *tokenService) Generate(userID uint) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (s *tokenService) Verify(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrSignatureInvalid):
			return 0, ErrTokenInvalid
		default:
			return 0, ErrTokenVerification
		}
	}

	if !token.Valid {
		return 0, ErrTokenVerification
	}

	if claims.UserID == 0 {
		return 0, ErrTokenPayload
	}

	return claims.UserID, nil
}
