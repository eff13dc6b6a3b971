package config

import (
	"estable/core"
	"estable/pkg/number"

	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("ESTABLE")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaults(config)
	return nil
}

func defaults(config *core.Config) {
	if len(config.Stablecoin.Pegs) == 0 {
		config.Stablecoin.Pegs = map[string]int64{
			"eUSD": 100,
			"eBRL": 550,
			"eARS": 95000,
			"eMXN": 1700,
			"eCOP": 400000,
		}
	}

	if config.Stablecoin.CollateralRatioBps == 0 {
		config.Stablecoin.CollateralRatioBps = 15000
	}

	if config.Lending.MinCollateralRatioBps == 0 {
		config.Lending.MinCollateralRatioBps = 15000
	}

	if config.Lending.LiquidationPenaltyBps == 0 {
		config.Lending.LiquidationPenaltyBps = 500
	}

	if config.Staking.RewardScale == 0 {
		config.Staking.RewardScale = 1e12
	}

	if config.Staking.DefaultRewardRate.IsZero() {
		config.Staking.DefaultRewardRate = number.Decimal("1000")
	}

	if config.Staking.EmergencyFeeBps == 0 {
		config.Staking.EmergencyFeeBps = 2000
	}

	if config.Vault.BaseAPYBps == 0 {
		config.Vault.BaseAPYBps = 1000
	}

	if config.Vault.BoostedAPYBps == 0 {
		config.Vault.BoostedAPYBps = 1500
	}

	if config.Vault.EstStakeThreshold.IsZero() {
		config.Vault.EstStakeThreshold = number.Decimal("1000")
	}

	if config.Vault.SecondsPerYear == 0 {
		config.Vault.SecondsPerYear = 365 * 24 * 60 * 60
	}

	if config.Governance.EarlyExitFeeBps == 0 {
		config.Governance.EarlyExitFeeBps = 1000
	}

	if config.Governance.MinVotePower.IsZero() {
		config.Governance.MinVotePower = number.Decimal("100")
	}

	if config.Governance.MinLockMonths == 0 {
		config.Governance.MinLockMonths = 3
	}

	if config.Governance.MaxLockMonths == 0 {
		config.Governance.MaxLockMonths = 12
	}

	if config.App.SystemUserID == "" {
		config.App.SystemUserID = "system"
	}
}
