package topic

// Topic identifies the action kind of an emitted event. The string value is
// the wire tag used as the routing key in the host event log. Tags are
// append-only: renaming one breaks every historical consumer.
type Topic string

// Token events.
const (
	// Transfer records a token transfer between two accounts.
	Transfer Topic = "transfer"
	// Approve records an allowance grant to a spender.
	Approve Topic = "approve"
	// Mint records tokens being created into an account.
	Mint Topic = "mint"
	// Burn records tokens being destroyed from an account.
	Burn Topic = "burn"
)

// Staking events.
const (
	// Stake records tokens locked into the staking pool.
	Stake Topic = "stake"
	// Unstake records tokens released from the staking pool.
	Unstake Topic = "unstake"
	// RewardsClaimed records a staking reward payout.
	RewardsClaimed Topic = "rewards_claimed"
	// PoolUpdated records an admin change to pool parameters.
	PoolUpdated Topic = "pool_updated"
)

// Governance events.
const (
	// Vote records a ballot cast on a proposal.
	Vote Topic = "vote"
	// ProposalCreated records a new governance proposal.
	ProposalCreated Topic = "propose"
	// ProposalExecuted records the execution of a passed proposal.
	ProposalExecuted Topic = "execute"
)

// Trading events.
const (
	// TradeExecuted records a filled order on a trading pair.
	TradeExecuted Topic = "trade"
	// FeeCollected records a protocol fee payment.
	FeeCollected Topic = "fee"
)

// Administration events.
const (
	// AdminChanged records a contract admin handover.
	AdminChanged Topic = "admin_changed"
	// AuthorizationChanged records an account authorization flip.
	AuthorizationChanged Topic = "auth_changed"
)

// Namespace is the fixed first element of every standardized publish key.
// Consumers subscribe to (Namespace, <topic>) to receive the versioned
// event shape; bare-topic keys carry the legacy format.
const Namespace = "stellara_event"

// All returns every registered topic. The order is stable and matches the
// order tags were introduced in.
func All() []Topic {
	return []Topic{
		Transfer, Approve, Mint, Burn,
		Stake, Unstake, RewardsClaimed, PoolUpdated,
		Vote, ProposalCreated, ProposalExecuted,
		TradeExecuted, FeeCollected,
		AdminChanged, AuthorizationChanged,
	}
}

// IsValid reports whether t is a registered topic.
func (t Topic) IsValid() bool {
	for _, known := range All() {
		if t == known {
			return true
		}
	}
	return false
}
