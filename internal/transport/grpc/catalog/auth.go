package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/murkotick/menswear-storefront/internal/pkg/clock"
)

var errInvalidToken = errors.New("invalid token")

// Tokens issues and verifies HS256 bearer tokens for the admin API.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewTokens(secret string, ttl time.Duration, clk clock.Clock) *Tokens {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, clock: clk}
}

// Issue signs a token for user and returns it with its expiry.
func (t *Tokens) Issue(user string) (string, time.Time, error) {
	now := t.clock.Now()
	exp := now.Add(t.ttl)
	claims := jwt.StandardClaims{
		Subject:   user,
		IssuedAt:  now.Unix(),
		ExpiresAt: exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature and expiry and returns the subject.
func (t *Tokens) Verify(token string) (string, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// UnaryAuthInterceptor requires a valid "authorization: Bearer <token>"
// header on every method except Login.
func UnaryAuthInterceptor(tokens *Tokens) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if info.FullMethod == FullMethod(MethodLogin) {
			return handler(ctx, req)
		}
		md, _ := metadata.FromIncomingContext(ctx)
		var raw string
		if v := md.Get("authorization"); len(v) > 0 {
			raw = v[0]
		}
		token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}
		if _, err := tokens.Verify(token); err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return handler(ctx, req)
	}
}
