// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TradingConfig is the configuration exposed by GET /api/config: the
// parameters of the trading agent and of its PPO training loop.
type TradingConfig struct {
	TradingParams TradingParams `json:"trading_params"`
	PPOSettings   PPOSettings   `json:"ppo_settings"`
}

// TradingParams bound the positions the agent may open.
type TradingParams struct {
	// RiskTolerance is one of "low", "medium" or "high".
	RiskTolerance string `json:"risk_tolerance"`

	// MaxPositionSize is the largest number of contracts held at once.
	MaxPositionSize int `json:"max_position_size"`

	// StopLossPercentage closes a position after this loss, in percent.
	StopLossPercentage float64 `json:"stop_loss_percentage"`
}

// PPOSettings are the Proximal Policy Optimization hyperparameters.
type PPOSettings struct {
	LearningRate float64 `json:"learning_rate"`
	BatchSize    int     `json:"batch_size"`
	Epochs       int     `json:"epochs"`
}

// DefaultTradingConfig returns the configuration served until an update is
// applied.
func DefaultTradingConfig() TradingConfig {
	return TradingConfig{
		TradingParams: TradingParams{
			RiskTolerance:      "medium",
			MaxPositionSize:    1000,
			StopLossPercentage: 2.0,
		},
		PPOSettings: PPOSettings{
			LearningRate: 0.0003,
			BatchSize:    64,
			Epochs:       10,
		},
	}
}
