package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "bounty-ledger.com/bounty-ledger/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.RewardAmount == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "reward_amount is required")
	}
	return nil
}

func ValidateAcceptTaskRequest(r *dto.AcceptTaskRequest) error {
	if r.Recipient == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recipient is required")
	}
	return nil
}

func ValidateInitializeRequest(r *dto.InitializeRequest) error {
	if r.Admin == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "admin is required")
	}
	if r.TreasuryAddress == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "treasury_address is required")
	}
	return nil
}

func ValidateDepositRequest(r *dto.DepositRequest) error {
	if r.Amount == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be greater than 0")
	}
	return nil
}
