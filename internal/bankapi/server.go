package bankapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
	"go.uber.org/zap"
)

const (
	headerRequestID     = "X-Request-ID"
	contextKeyRequestID = "request_id"
	contextKeyClaims    = "auth_claims"
	shutdownTimeout     = 5 * time.Second
)

// Run boots the HTTP API in front of service and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config, service Service, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("http config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	validator, err := newSessionValidator(cfg)
	if err != nil {
		return fmt.Errorf("session validator: %w", err)
	}

	handler := &httpHandler{
		logger:  logger,
		service: service,
		cfg:     cfg,
	}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           setupRouter(cfg, handler, validator),
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bank api listening", zap.String("addr", cfg.ListenAddr), zap.Bool("session_protected", validator != nil))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newSessionValidator returns nil when no signing key is configured.
func newSessionValidator(cfg Config) (*sessionvalidator.Validator, error) {
	if !cfg.SessionProtected() {
		return nil, nil
	}
	return sessionvalidator.New(sessionvalidator.Config{
		SigningKey: []byte(cfg.SessionSigningKey),
		Issuer:     cfg.SessionIssuer,
		CookieName: cfg.SessionCookieName,
	})
}

func setupRouter(cfg Config, handler *httpHandler, validator *sessionvalidator.Validator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(handler.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept", headerRequestID},
		ExposeHeaders:    []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/accounts", handler.handleListAccounts)
	api.GET("/accounts/:accountId", handler.handleGetAccount)
	api.GET("/transactions", handler.handleListTransactions)
	api.GET("/transactions/:transactionId", handler.handleGetTransaction)
	api.GET("/customers", handler.handleListCustomers)
	api.GET("/customers/:customerId", handler.handleGetCustomer)
	api.GET("/branches", handler.handleListBranches)
	api.GET("/statistics", handler.handleStatistics)
	api.GET("/statistics/account-status-counts", handler.handleAccountStatusCounts)

	mutating := api.Group("")
	if validator != nil {
		mutating.Use(validator.GinMiddleware(contextKeyClaims), requireSession)
	}
	mutating.POST("/accounts", handler.handleCreateAccount)
	mutating.PATCH("/accounts/:accountId", handler.handleUpdateAccountStatus)
	mutating.DELETE("/accounts/:accountId", handler.handleDeleteAccount)
	mutating.POST("/transactions", handler.handleCreateTransaction)
	mutating.DELETE("/transactions/:transactionId", handler.handleDeleteTransaction)
	mutating.POST("/customers", handler.handleCreateCustomer)
	mutating.DELETE("/customers/:customerId", handler.handleDeleteCustomer)
	mutating.POST("/branches", handler.handleCreateBranch)
	mutating.PUT("/branches/:branchId/manager", handler.handleUpdateBranchManager)
	mutating.DELETE("/branches/:branchId", handler.handleDeleteBranch)

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(contextKeyRequestID, requestID)
		ctx.Header(headerRequestID, requestID)

		started := time.Now()
		ctx.Next()

		logger.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
		)
	}
}

func requireSession(ctx *gin.Context) {
	if getClaims(ctx) == nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse("unauthorized", "missing session"))
		return
	}
	ctx.Next()
}

func getClaims(ctx *gin.Context) *sessionvalidator.Claims {
	claimsValue, ok := ctx.Get(contextKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := claimsValue.(*sessionvalidator.Claims)
	return claims
}

func requestID(ctx *gin.Context) string {
	return ctx.GetString(contextKeyRequestID)
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

func (handler *httpHandler) respondError(ctx *gin.Context, err error) {
	switch {
	case bank.IsClientError(err):
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_input", err.Error()))
	case bank.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, errorResponse("not_found", err.Error()))
	default:
		handler.logger.Error("storage operation failed",
			zap.String("request_id", requestID(ctx)),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, errorResponse("storage_error", err.Error()))
	}
}
