package core

import "encoding/json"

// ActionType operation code carried in the output memo
type ActionType int

const (
	// ActionTypeInitPool initialize the pool
	ActionTypeInitPool ActionType = iota + 1
	// ActionTypeDeposit deposit collateral
	ActionTypeDeposit
	// ActionTypeRequestCreditScore ask the credit authority for a fresh score
	ActionTypeRequestCreditScore
	// ActionTypeUpdateCreditScore credit authority pushes score and LTV
	ActionTypeUpdateCreditScore
	// ActionTypeBorrow open or top up a loan
	ActionTypeBorrow
	// ActionTypeRepay repay a loan
	ActionTypeRepay
	// ActionTypeWithdraw withdraw free collateral
	ActionTypeWithdraw
	// ActionTypeLiquidate liquidate an undercollateralized loan
	ActionTypeLiquidate
	// ActionTypeAccrue accrue interest on a named loan
	ActionTypeAccrue
	// ActionTypePushPrice oracle pushes the collateral price
	ActionTypePushPrice

	// ActionTypeBorrowTransfer payout of borrowed funds
	ActionTypeBorrowTransfer
	// ActionTypeWithdrawTransfer payout of withdrawn collateral
	ActionTypeWithdrawTransfer
	// ActionTypeSeizeTransfer payout of seized collateral plus bonus
	ActionTypeSeizeTransfer
	// ActionTypeRefundTransfer refund of a rejected payment
	ActionTypeRefundTransfer
	// ActionTypeRepayRefundTransfer refund of a repay overpayment
	ActionTypeRepayRefundTransfer
)

// TransferAction extra data of an outgoing transfer, encoded into the memo
type TransferAction struct {
	Source   ActionType `json:"s,omitempty"`
	FollowID string     `json:"f,omitempty"`
	Code     int        `json:"c,omitempty"`
}

// Format format to string
func (t *TransferAction) Format() (string, error) {
	bs, err := json.Marshal(t)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}
