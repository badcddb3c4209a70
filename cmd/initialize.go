package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "bounty-ledger.com/bounty-ledger/internal/configs"
	repository "bounty-ledger.com/bounty-ledger/internal/repositories"
	"bounty-ledger.com/bounty-ledger/internal/services"
)

var initParams = services.InitializeParams{}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the program configuration",
	Long:  "Writes the write-once program configuration record; fails if one already exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		db := config.New(cfg.DatabaseDSN)

		configRepo := repository.NewConfigRepository(db)
		if err := configRepo.Initialize(cmd.Context(), initParams.Record()); err != nil {
			return err
		}

		log.Printf("program configuration written: admin=%s min_reward=%d penalty=%ds",
			initParams.Admin, initParams.MinimumRewardAmount, initParams.DenialPenaltyDuration)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initParams.Admin, "admin", "", "admin identity")
	initCmd.Flags().StringVar(&initParams.TreasuryAddress, "treasury", "", "treasury identity")
	initCmd.Flags().StringVar(&initParams.GovernanceTokenRef, "governance-token", "", "governance token reference")
	initCmd.Flags().Uint64Var(&initParams.MinimumRewardAmount, "min-reward", 0, "minimum reward amount")
	initCmd.Flags().Uint8Var(&initParams.FeePercentage, "fee-pct", 0, "fee percentage")
	initCmd.Flags().Int64Var(&initParams.DenialPenaltyDuration, "penalty-duration", 0, "denial penalty duration in seconds")
	initCmd.Flags().Uint64Var(&initParams.PatrollerTokenAmount, "patroller-amount", 0, "patroller token amount")
	_ = initCmd.MarkFlagRequired("admin")
	_ = initCmd.MarkFlagRequired("treasury")

	rootCmd.AddCommand(initCmd)
}
