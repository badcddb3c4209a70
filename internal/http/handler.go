package http

import (
	goerrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "bounty-ledger.com/bounty-ledger/internal/data_models"
	apperrors "bounty-ledger.com/bounty-ledger/internal/errors"
	middleware "bounty-ledger.com/bounty-ledger/internal/http/middlewares"
	"bounty-ledger.com/bounty-ledger/internal/http/validators"
	"bounty-ledger.com/bounty-ledger/internal/locks"
	"bounty-ledger.com/bounty-ledger/internal/services"
)

type Handler struct {
	lifecycle *services.LifecycleService
}

func NewHandler(lifecycle *services.LifecycleService) *Handler {
	return &Handler{
		lifecycle: lifecycle,
	}
}

func (h *Handler) Initialize(c echo.Context) error {
	var req dto.InitializeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateInitializeRequest(&req); err != nil {
		return err
	}

	cfg, err := h.lifecycle.InitializeProgram(c.Request().Context(), services.InitializeParams{
		Admin:                 req.Admin,
		TreasuryAddress:       req.TreasuryAddress,
		GovernanceTokenRef:    req.GovernanceTokenRef,
		MinimumRewardAmount:   req.MinimumRewardAmount,
		FeePercentage:         req.FeePercentage,
		DenialPenaltyDuration: req.DenialPenaltyDuration,
		PatrollerTokenAmount:  req.PatrollerTokenAmount,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, cfg)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.lifecycle.CreateTask(
		c.Request().Context(),
		caller(c),
		req.TaskID,
		req.RewardAmount,
		req.DurationSeconds,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) AcceptTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req dto.AcceptTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateAcceptTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.lifecycle.AcceptTask(
		c.Request().Context(),
		caller(c),
		consignerOrCaller(c, req.Consigner),
		taskID,
		req.Recipient,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) RejectTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req dto.RejectTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.lifecycle.RejectTask(
		c.Request().Context(),
		caller(c),
		consignerOrCaller(c, req.Consigner),
		taskID,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ReclaimTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req dto.ReclaimTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.lifecycle.ReclaimTaskFunds(
		c.Request().Context(),
		caller(c),
		consignerOrCaller(c, req.Consigner),
		taskID,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.lifecycle.GetTask(
		c.Request().Context(),
		consignerOrCaller(c, c.QueryParam("consigner")),
		taskID,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.lifecycle.ListTasks(c.Request().Context(), caller(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetCounter(c echo.Context) error {
	counter, err := h.lifecycle.GetCounter(c.Request().Context(), caller(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, counter)
}

func (h *Handler) Deposit(c echo.Context) error {
	var req dto.DepositRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateDepositRequest(&req); err != nil {
		return err
	}

	balance, err := h.lifecycle.Deposit(c.Request().Context(), caller(c), req.Amount)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"identity": caller(c), "balance": balance})
}

func (h *Handler) GetBalance(c echo.Context) error {
	balance, err := h.lifecycle.Balance(c.Request().Context(), caller(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"identity": caller(c), "balance": balance})
}

func caller(c echo.Context) string {
	identity, _ := c.Get(middleware.CallerContextKey).(string)
	return identity
}

func consignerOrCaller(c echo.Context, consigner string) string {
	if consigner != "" {
		return consigner
	}
	return caller(c)
}

func taskIDParam(c echo.Context) (uint64, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	taskID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "task id must be an unsigned integer")
	}

	return taskID, nil
}

func httpError(err error) error {
	if goerrors.Is(err, locks.ErrRecordBusy) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	var appErr *apperrors.Exception
	if goerrors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "operation failed")
}
