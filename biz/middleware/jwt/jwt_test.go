package jwt

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"smartparking/be/biz/config"
	db_redis "smartparking/be/biz/db/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestJwt(t *testing.T) {
	secret := "secret"
	tokenId := uuid.NewString()
	sessId := uuid.NewString()

	jwtStr, err := generateToken(Payload{UserID: 7, Correo: "ana@x.com"},
		time.Now().Add(time.Second), tokenId, sessId, secret, "go test")
	assert.Nil(t, err)

	t.Run("success", func(t *testing.T) {
		claims, err := validateToken(jwtStr, secret, "go test")
		assert.Nil(t, err)
		assert.True(t, claims.CheckSum(sessId))
		assert.False(t, claims.CheckSum(sessId+"x"))
		assert.Equal(t, uint64(7), claims.UserID)
	})

	t.Run("secret key invalid", func(t *testing.T) {
		_, err := validateToken(jwtStr, secret+"123", "go test")
		assert.ErrorIs(t, err, ErrJwtInvalid)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		_, err := validateToken(jwtStr, secret, "someone else")
		assert.Error(t, err)
	})

	t.Run("signing method none", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.Nil(t, err)
		_, err = validateToken(unsigned, secret, "")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := generateToken(Payload{UserID: 7}, time.Now().Add(-time.Minute), tokenId, sessId, secret, "go test")
		assert.Nil(t, err)
		_, err = validateToken(expired, secret, "go test")
		assert.ErrorIs(t, err, ErrJwtExpired)
	})
}

func initConfig(t *testing.T) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "deploy.yml")
	conf := "jwt:\n  issuer: \"go test\"\n  access_token_secret: \"secret\"\n  access_expiration: 60\n"
	if err := os.WriteFile(p, []byte(conf), 0600); err != nil {
		t.Fatal(err)
	}
	config.Init(p)
}

func TestGenerateAndRemoveToken(t *testing.T) {
	initConfig(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	db_redis.SetRedisClient(rdb)

	ctx := context.Background()
	sessID := "sess-1"
	jwtStr, expAt, err := GenerateToken(ctx, Payload{UserID: 3, Correo: "a@b.c"}, sessID)
	assert.Nil(t, err)
	assert.Greater(t, expAt, time.Now().Unix())

	jwtConf := config.GetJWTConfig()
	claims, err := validateToken(jwtStr, jwtConf.AccessTokenSecret, jwtConf.Issuer)
	assert.Nil(t, err)
	assert.True(t, mr.Exists(tokenExistKey(claims.ID)))

	ctx = context.WithValue(ctx, claimsKey{}, claims)
	assert.Equal(t, uint64(3), GetPayload(ctx).UserID)

	// a different session cannot revoke the token
	assert.Nil(t, RemoveToken(ctx, "other"))
	assert.True(t, mr.Exists(tokenExistKey(claims.ID)))

	assert.Nil(t, RemoveToken(ctx, sessID))
	assert.False(t, mr.Exists(tokenExistKey(claims.ID)))
}

func TestGetPayloadAndRemoveToken(t *testing.T) {
	t.Run("GetPayload default empty", func(t *testing.T) {
		assert.Equal(t, Payload{}, GetPayload(context.Background()))
	})

	t.Run("RemoveToken without claims is noop", func(t *testing.T) {
		assert.Nil(t, RemoveToken(context.Background(), ""))
	})
}
