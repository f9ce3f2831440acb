package services

import (
	"time"

	"jobportal/config"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/context"
	"github.com/kataras/iris/v12/middleware/jwt"
)

var JWTServices JWT

type JWT struct {
	Signer           *jwt.Signer
	Verifier         *jwt.Verifier
	VerifyMiddleware context.Handler
	Signature        jwt.Alg
}

func (j *JWT) Init(conf config.JWTConfiguration) {
	key := []byte(conf.SecretKey)

	j.Signature = jwt.HS256
	j.Signer = jwt.NewSigner(jwt.HS256, key, time.Duration(conf.TokenDuration)*time.Minute)
	j.Verifier = jwt.NewVerifier(jwt.HS256, key).WithDefaultBlocklist()
	j.VerifyMiddleware = j.Verifier.Verify(func() interface{} { return new(AuthClaims) })
}

// Sign issues a token for the given user.
func (j *JWT) Sign(userID string, role string) (string, error) {
	token, err := j.Signer.Sign(AuthClaims{UserID: userID, Role: role})
	if err != nil {
		return "", err
	}

	return string(token), nil
}

type AuthClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// Claims returns the verified claims of the current request.
func Claims(ctx iris.Context) *AuthClaims {
	return jwt.Get(ctx).(*AuthClaims)
}
