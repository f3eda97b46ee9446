package report

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrLinksDisabled = errors.New("report links are disabled")

type linkClaims struct {
	Report Input `json:"report"`
	jwt.RegisteredClaims
}

// Signer issues and verifies report links. The snapshot travels inside the
// token, so nothing is stored server-side.
type Signer struct {
	Key []byte
	TTL time.Duration
	now func() time.Time
}

func NewSigner(key []byte, ttl time.Duration) *Signer {
	return &Signer{Key: key, TTL: ttl, now: time.Now}
}

func (s *Signer) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Signer) Sign(in Input) (string, time.Time, error) {
	if s == nil || len(s.Key) == 0 {
		return "", time.Time{}, ErrLinksDisabled
	}
	now := s.clock()
	exp := now.Add(s.TTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, linkClaims{
		Report: in,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(s.Key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks signature and expiry and returns the embedded snapshot.
func (s *Signer) Verify(tokenString string) (Input, error) {
	if s == nil || len(s.Key) == 0 {
		return Input{}, ErrLinksDisabled
	}
	claims := &linkClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.Key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock))
	if err != nil {
		return Input{}, err
	}
	return claims.Report, nil
}
