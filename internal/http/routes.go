package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "bounty-ledger.com/bounty-ledger/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, authSecret string) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))
	e.Use(middleware.CallerIdentity(authSecret))

	e.POST("/program", h.Initialize)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.POST("/tasks/:id/accept", h.AcceptTask)
	e.POST("/tasks/:id/reject", h.RejectTask)
	e.POST("/tasks/:id/reclaim", h.ReclaimTask)

	e.GET("/counters", h.GetCounter)

	e.POST("/accounts/deposit", h.Deposit)
	e.GET("/accounts", h.GetBalance)
}
