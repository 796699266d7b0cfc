package topic

// Key names one well-known field inside an event's metadata mapping. Like
// topics, key tags are append-only and must stay unique.
type Key string

const (
	// KeyAmount is the principal quantity of the action.
	KeyAmount Key = "amount"
	// KeyFrom is the sending or previous-holder address.
	KeyFrom Key = "from"
	// KeyTo is the receiving or new-holder address.
	KeyTo Key = "to"
	// KeyToken is the token contract the amounts are denominated in.
	KeyToken Key = "token"
	// KeyPair is the trading pair symbol.
	KeyPair Key = "pair"
	// KeyPrice is the execution price of a trade.
	KeyPrice Key = "price"
	// KeyFee is the fee charged by the action.
	KeyFee Key = "fee"
	// KeyReason is an optional free-text justification (mint only).
	KeyReason Key = "reason"
	// KeyProposalID is the governance proposal identifier.
	KeyProposalID Key = "proposal_id"
	// KeyVoteType is the ballot choice cast on a proposal.
	KeyVoteType Key = "vote_type"
	// KeyLockPeriod is the staking lock duration.
	KeyLockPeriod Key = "lock_period"
	// KeyRewardRate is the pool reward rate.
	KeyRewardRate Key = "reward_rate"
)

// AllKeys returns every registered metadata key in introduction order.
func AllKeys() []Key {
	return []Key{
		KeyAmount, KeyFrom, KeyTo, KeyToken,
		KeyPair, KeyPrice, KeyFee, KeyReason,
		KeyProposalID, KeyVoteType, KeyLockPeriod, KeyRewardRate,
	}
}
