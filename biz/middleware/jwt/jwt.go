package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartparking/be/biz/config"
	rediscli "smartparking/be/biz/db/redis"
	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/util/encode"
	"smartparking/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hertz-contrib/sessions"
)

var (
	ErrJwtInvalid = errors.New("jwt is invalid")
	ErrJwtExpired = errors.New("jwt is expired")
)

type claimsKey struct{}

// ValidateMW accepts a request only when its Authorization token is signed,
// unexpired, bound to the caller's session and not revoked.
func ValidateMW() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwtConf := config.GetJWTConfig()
		jwtStr := extractJWT(c)
		if jwtStr == "" {
			hlog.CtxInfof(ctx, "authorization failed, token is empty")
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		claims, err := validateToken(jwtStr, jwtConf.AccessTokenSecret, jwtConf.Issuer)
		if err != nil {
			hlog.CtxInfof(ctx, "jwt invalid: %v", err)
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		sess := sessions.Default(c)
		if !claims.CheckSum(sess.ID()) {
			hlog.CtxInfof(ctx, "session not match")
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		exist, err := rediscli.GetRedisClient().Exists(ctx, tokenExistKey(claims.ID)).Result()
		if err != nil {
			hlog.CtxErrorf(ctx, "redis exists err: %v", err)
			resp.AbortWithErr(c, errs.ServerError)
			return
		}
		if exist == 0 {
			hlog.CtxInfof(ctx, "jwt token revoked or expired")
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		ctx = context.WithValue(ctx, claimsKey{}, claims)
		c.Next(ctx)
	}
}

type Payload struct {
	UserID uint64 `json:"user_id,omitempty"`
	Correo string `json:"correo,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims
	Payload

	Sum string `json:"sum,omitempty"`
}

func (c *Claims) CheckSum(sessID string) bool {
	return encode.Checksum(c.ID, sessID) == c.Sum
}

// GenerateToken signs a token bound to sessID and registers its id in redis.
// It returns the token and its unix expiry.
func GenerateToken(ctx context.Context, payload Payload, sessID string) (string, int64, error) {
	tokenID := uuid.New().String()

	jwtConf := config.GetJWTConfig()
	exp := accessExpiration(jwtConf)
	expAt := time.Now().Add(exp)

	jwtStr, err := generateToken(payload, expAt, tokenID, sessID, jwtConf.AccessTokenSecret, jwtConf.Issuer)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate access token err: %v", err)
		return "", 0, err
	}

	if err := rediscli.GetRedisClient().
		Set(ctx, tokenExistKey(tokenID), 1, exp).Err(); err != nil {
		hlog.CtxErrorf(ctx, "cache token id err: %v", err)
		return "", 0, err
	}

	return jwtStr, expAt.Unix(), nil
}

func GetPayload(ctx context.Context) Payload {
	if claims, ok := ctx.Value(claimsKey{}).(*Claims); ok {
		return claims.Payload
	}
	return Payload{}
}

// RemoveToken revokes the token validated for this request.
func RemoveToken(ctx context.Context, sessID string) error {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	if !ok || !claims.CheckSum(sessID) {
		return nil
	}
	return rediscli.GetRedisClient().Del(ctx, tokenExistKey(claims.ID)).Err()
}

func generateToken(payload Payload, expAt time.Time, tokenID, sessID, secret, issuer string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			ID:        tokenID,
		},
		Payload: payload,
		Sum:     encode.Checksum(tokenID, sessID),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func validateToken(tokenStr, secret, issuer string) (*Claims, error) {
	var claims Claims
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrJwtExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			// also covers a signing method other than HS256
			return nil, ErrJwtInvalid
		}
		return nil, err
	}
	if !token.Valid {
		return nil, ErrJwtInvalid
	}

	return &claims, nil
}

func tokenExistKey(tid string) string {
	return fmt.Sprintf("jwt_id_exist:%s", tid)
}

// extractJWT accepts both a bare token and the "Bearer <token>" form.
func extractJWT(c *app.RequestContext) string {
	auth := c.Request.Header.Get("Authorization")
	const bearer = "Bearer "
	if len(auth) > len(bearer) && auth[:len(bearer)] == bearer {
		return auth[len(bearer):]
	}
	return auth
}

func accessExpiration(conf config.JWTConf) time.Duration {
	if conf.AccessExpiration > 0 {
		return time.Duration(conf.AccessExpiration) * time.Second
	}

	return 30 * time.Minute
}
