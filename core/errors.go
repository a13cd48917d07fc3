package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001
	// ErrInvalidArgument invalid argument
	ErrInvalidArgument ErrorCode = 100002
	// ErrPoolNotFound pool not initialized yet
	ErrPoolNotFound ErrorCode = 100003
	// ErrPoolExists pool already initialized
	ErrPoolExists ErrorCode = 100004
	// ErrAccountNotFound no risk account for the user
	ErrAccountNotFound ErrorCode = 100005
	// ErrLoanNotFound no loan for the borrower
	ErrLoanNotFound ErrorCode = 100006

	// ErrInvalidCollateralRatio collateral ratio outside [12000, 30000]
	ErrInvalidCollateralRatio ErrorCode = 100100
	// ErrInvalidInterestRate interest rate above 10000 bps
	ErrInvalidInterestRate ErrorCode = 100101
	// ErrInvalidLiquidationThreshold threshold not below collateral ratio
	ErrInvalidLiquidationThreshold ErrorCode = 100102
	// ErrInvalidCreditScore risk adjusted LTV outside [5000, 8000]
	ErrInvalidCreditScore ErrorCode = 100103

	// ErrUnauthorizedMPCUpdate caller is not the registered credit authority
	ErrUnauthorizedMPCUpdate ErrorCode = 100200

	// ErrExceedsRiskAdjustedLTV principal above the per-user LTV ceiling
	ErrExceedsRiskAdjustedLTV ErrorCode = 100300
	// ErrUndercollateralized debt would pass the collateral ratio ceiling
	ErrUndercollateralized ErrorCode = 100301
	// ErrLoanNotLiquidatable position above the liquidation threshold
	ErrLoanNotLiquidatable ErrorCode = 100302
	// ErrActiveLoansExist collateral withdraw with outstanding debt
	ErrActiveLoansExist ErrorCode = 100303

	// ErrInsufficientBalance requested amount exceeds available value
	ErrInsufficientBalance ErrorCode = 100400
	// ErrInsufficientCollateral withdraw amount exceeds deposited collateral
	ErrInsufficientCollateral ErrorCode = 100401

	// ErrAlreadyLiquidated operation on a terminal loan
	ErrAlreadyLiquidated ErrorCode = 100500
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
