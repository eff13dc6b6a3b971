package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized actor is not allowed to touch the resource
	ErrUnauthorized ErrorCode = 100001
	// ErrNotFound no such record
	ErrNotFound ErrorCode = 100002

	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrInvalidLockPeriod lock period outside the supported set
	ErrInvalidLockPeriod ErrorCode = 100102
	// ErrInsufficientCollateral insufficient collateral
	ErrInsufficientCollateral ErrorCode = 100103
	// ErrInsufficientFunds insufficient funds
	ErrInsufficientFunds ErrorCode = 100104
	// ErrInsufficientShares insufficient vault shares
	ErrInsufficientShares ErrorCode = 100105
	// ErrUnsupportedAsset asset not in the vault allow list
	ErrUnsupportedAsset ErrorCode = 100106
	// ErrAssetAlreadySupported asset already in the vault allow list
	ErrAssetAlreadySupported ErrorCode = 100107

	// ErrLockNotExpired unstake before lock expiry
	ErrLockNotExpired ErrorCode = 100201
	// ErrUseRegularUnstake emergency unstake after lock expiry
	ErrUseRegularUnstake ErrorCode = 100202
	// ErrStakeNotActive stake already unstaked
	ErrStakeNotActive ErrorCode = 100203
	// ErrNoRewardsToClaim nothing accrued yet
	ErrNoRewardsToClaim ErrorCode = 100204

	// ErrNotLiquidatable health factor at or above the threshold
	ErrNotLiquidatable ErrorCode = 100301

	// ErrMinimumStakeRequired voting power below the minimum
	ErrMinimumStakeRequired ErrorCode = 100401
	// ErrAlreadyVoted a vote for this proposal already exists
	ErrAlreadyVoted ErrorCode = 100402

	// ErrDivisionByZero division by zero in money math
	ErrDivisionByZero ErrorCode = 100501
	// ErrArithmeticOverflow monetary quantity outside the representable range
	ErrArithmeticOverflow ErrorCode = 100502
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// Msg human readable message for api responses
func (e ErrorCode) Msg() string {
	switch e {
	case ErrUnauthorized:
		return "unauthorized"
	case ErrNotFound:
		return "not found"
	case ErrInvalidAmount:
		return "invalid amount"
	case ErrInvalidLockPeriod:
		return "invalid lock period"
	case ErrInsufficientCollateral:
		return "insufficient collateral"
	case ErrInsufficientFunds:
		return "insufficient funds"
	case ErrInsufficientShares:
		return "insufficient shares"
	case ErrUnsupportedAsset:
		return "asset not supported"
	case ErrAssetAlreadySupported:
		return "asset already supported"
	case ErrLockNotExpired:
		return "lock period not ended"
	case ErrUseRegularUnstake:
		return "use regular unstake"
	case ErrStakeNotActive:
		return "stake not active"
	case ErrNoRewardsToClaim:
		return "no rewards to claim"
	case ErrNotLiquidatable:
		return "position is not liquidatable"
	case ErrMinimumStakeRequired:
		return "minimum stake required"
	case ErrAlreadyVoted:
		return "already voted on this proposal"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrArithmeticOverflow:
		return "arithmetic overflow"
	default:
		return "unknown error"
	}
}
