package handler

import (
	"custodial-voucher/internal/adapter/http/middleware"
	redisStore "custodial-voucher/internal/adapter/storage/redis"
	"custodial-voucher/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	VoucherSvc     ports.VoucherService
	WalletSvc      ports.WalletService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore          // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule // nil = DefaultRateLimitRules
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec(deps.OpenAPISpec))
	}

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	voucherHandler := NewVoucherHandler(deps.VoucherSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc)

	v1 := r.Group("/api/v1")

	// Public: anyone holding a voucher may check it.
	vouchers := v1.Group("/vouchers", rl(middleware.GroupVoucherCheck))
	{
		vouchers.POST("/verify", voucherHandler.Verify)
		vouchers.POST("/validate", voucherHandler.Validate)
	}

	reservations := v1.Group("/reservations/:id", jwtAuth)
	{
		reservations.POST("/voucher", rl(middleware.GroupVoucherIssue), voucherHandler.Issue)
		reservations.POST("/mint-confirmation", rl(middleware.GroupVoucherCheck), voucherHandler.ConfirmMint)
	}

	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.POST("", rl(middleware.GroupWalletProvision), walletHandler.Provision)
		wallets.GET("/me", walletHandler.Me)
	}

	return r
}
