// Package emitter is the emission surface domain operations call after a
// state change. Each operation publishes a standardized, versioned event
// and, for actions that predate the standardized format, a second legacy
// event preserved byte-for-byte for consumers that have not migrated.
package emitter

import (
	"github.com/stellara-labs/eventstream/internal/event"
	"github.com/stellara-labs/eventstream/internal/host"
	"github.com/stellara-labs/eventstream/internal/metrics"
	"github.com/stellara-labs/eventstream/internal/topic"
)

// Emitter builds and publishes events through an injected host. It holds no
// mutable state; all calls run synchronously inside the caller's unit of
// work and cannot fail given well-typed input.
type Emitter struct {
	host host.Host
}

// New creates an Emitter bound to h.
func New(h host.Host) *Emitter {
	return &Emitter{host: h}
}

// EmitStandard constructs a standardized event and publishes it under
// (topic.Namespace, eventType). Contract identity, timestamp and version
// are stamped here; callers cannot supply them.
func (e *Emitter) EmitStandard(eventType topic.Topic, user *event.Address, data []any, metadata map[topic.Key][]any) {
	ev := &event.Event{
		EventType:       eventType,
		ContractAddress: e.host.SelfIdentity(),
		UserAddress:     user,
		Data:            data,
		Metadata:        metadata,
		Timestamp:       e.host.Now(),
		Version:         event.CurrentVersion,
	}
	e.host.Publish([]string{topic.Namespace, string(eventType)}, ev)
	metrics.StandardEventsPublished.WithLabelValues(string(eventType)).Inc()
}

// publishLegacy publishes an old-format event under (topic, principals...).
// Always called after the standardized publish for the same action.
func (e *Emitter) publishLegacy(t topic.Topic, principals []event.Address, payload any) {
	topics := make([]string, 0, len(principals)+1)
	topics = append(topics, string(t))
	for _, p := range principals {
		topics = append(topics, string(p))
	}
	e.host.Publish(topics, payload)
	metrics.LegacyEventsPublished.WithLabelValues(string(t)).Inc()
}

// Transfer emits a token transfer event.
func (e *Emitter) Transfer(from, to event.Address, amount int64, token event.Address) {
	data := []any{amount, token}
	metadata := map[topic.Key][]any{
		topic.KeyAmount: {amount},
		topic.KeyFrom:   {from},
		topic.KeyTo:     {to},
		topic.KeyToken:  {token},
	}
	e.EmitStandard(topic.Transfer, &from, data, metadata)
	e.publishLegacy(topic.Transfer, []event.Address{from, to}, amount)
}

// Approve emits an allowance approval event. The spender lands under the
// "to" metadata key, matching the historical layout.
func (e *Emitter) Approve(from, spender event.Address, amount int64, token event.Address) {
	data := []any{amount, token}
	metadata := map[topic.Key][]any{
		topic.KeyAmount: {amount},
		topic.KeyFrom:   {from},
		topic.KeyTo:     {spender},
		topic.KeyToken:  {token},
	}
	e.EmitStandard(topic.Approve, &from, data, metadata)
	e.publishLegacy(topic.Approve, []event.Address{from, spender}, amount)
}

// Mint emits a token mint event. The reason key is only present when a
// reason was given.
func (e *Emitter) Mint(to event.Address, amount int64, token event.Address, reason *string) {
	data := []any{amount, token}
	metadata := map[topic.Key][]any{
		topic.KeyAmount: {amount},
		topic.KeyTo:     {to},
		topic.KeyToken:  {token},
	}
	if reason != nil {
		metadata[topic.KeyReason] = []any{*reason}
	}
	e.EmitStandard(topic.Mint, &to, data, metadata)
	e.publishLegacy(topic.Mint, []event.Address{to}, amount)
}

// Burn emits a token burn event.
func (e *Emitter) Burn(from event.Address, amount int64, token event.Address) {
	data := []any{amount, token}
	metadata := map[topic.Key][]any{
		topic.KeyAmount: {amount},
		topic.KeyFrom:   {from},
		topic.KeyToken:  {token},
	}
	e.EmitStandard(topic.Burn, &from, data, metadata)
	e.publishLegacy(topic.Burn, []event.Address{from}, amount)
}

// AdminChanged emits an admin handover event, attributed to the outgoing
// admin.
func (e *Emitter) AdminChanged(oldAdmin, newAdmin event.Address) {
	data := []any{newAdmin}
	metadata := map[topic.Key][]any{
		topic.KeyFrom: {oldAdmin},
		topic.KeyTo:   {newAdmin},
	}
	e.EmitStandard(topic.AdminChanged, &oldAdmin, data, metadata)
	e.publishLegacy(topic.AdminChanged, []event.Address{oldAdmin}, newAdmin)
}

// AuthorizationChanged emits an account authorization flip.
func (e *Emitter) AuthorizationChanged(user event.Address, authorized bool) {
	data := []any{authorized}
	metadata := map[topic.Key][]any{
		topic.KeyTo: {user},
	}
	e.EmitStandard(topic.AuthorizationChanged, &user, data, metadata)
	e.publishLegacy(topic.AuthorizationChanged, []event.Address{user}, authorized)
}

// Stake emits a staking event.
func (e *Emitter) Stake(user event.Address, amount int64, lockPeriod uint64, token event.Address) {
	data := []any{amount, lockPeriod, token}
	metadata := map[topic.Key][]any{
		topic.KeyAmount:     {amount},
		topic.KeyLockPeriod: {lockPeriod},
		topic.KeyToken:      {token},
	}
	e.EmitStandard(topic.Stake, &user, data, metadata)
	e.publishLegacy(topic.Stake, []event.Address{user}, []any{amount, lockPeriod, e.host.Now()})
}

// Unstake emits an unstaking event.
func (e *Emitter) Unstake(user event.Address, amount, rewards, fee int64, token event.Address) {
	data := []any{amount, rewards, fee, token}
	metadata := map[topic.Key][]any{
		topic.KeyAmount: {amount},
		topic.KeyFee:    {fee},
		topic.KeyToken:  {token},
	}
	e.EmitStandard(topic.Unstake, &user, data, metadata)
	e.publishLegacy(topic.Unstake, []event.Address{user}, []any{amount, rewards, fee, e.host.Now()})
}

// RewardsClaimed emits a reward payout event. The amount metadata entry is
// the combined base plus bonus payout; the split is only visible in data.
func (e *Emitter) RewardsClaimed(user event.Address, baseRewards, bonusRewards int64, token event.Address) {
	data := []any{baseRewards, bonusRewards, token}
	metadata := map[topic.Key][]any{
		topic.KeyAmount: {baseRewards + bonusRewards},
		topic.KeyToken:  {token},
	}
	e.EmitStandard(topic.RewardsClaimed, &user, data, metadata)
	e.publishLegacy(topic.RewardsClaimed, []event.Address{user}, []any{baseRewards, bonusRewards, e.host.Now()})
}

// Vote emits a ballot event.
func (e *Emitter) Vote(voter event.Address, proposalID uint64, voteType string, votingPower uint64) {
	data := []any{proposalID, voteType, votingPower}
	metadata := map[topic.Key][]any{
		topic.KeyProposalID: {proposalID},
		topic.KeyVoteType:   {voteType},
	}
	e.EmitStandard(topic.Vote, &voter, data, metadata)
	e.publishLegacy(topic.Vote, []event.Address{voter}, []any{proposalID, voteType, votingPower, e.host.Now()})
}

// PoolUpdated emits a pool parameter change, attributed to the admin that
// made it.
func (e *Emitter) PoolUpdated(admin event.Address, rewardRate int64, bonusMultiplier uint32) {
	data := []any{rewardRate, bonusMultiplier}
	metadata := map[topic.Key][]any{
		topic.KeyRewardRate: {rewardRate},
	}
	e.EmitStandard(topic.PoolUpdated, &admin, data, metadata)
	e.publishLegacy(topic.PoolUpdated, []event.Address{admin}, []any{rewardRate, bonusMultiplier, e.host.Now()})
}

// TradeExecuted emits a filled-order event. Trading postdates the
// standardized format, so there is no legacy publish.
func (e *Emitter) TradeExecuted(trader event.Address, pair string, amount, price int64, isBuy bool, feeAmount int64, feeToken event.Address) {
	data := []any{pair, amount, price, isBuy, feeAmount, feeToken}
	metadata := map[topic.Key][]any{
		topic.KeyPair:   {pair},
		topic.KeyAmount: {amount},
		topic.KeyPrice:  {price},
		topic.KeyFee:    {feeAmount},
		topic.KeyToken:  {feeToken},
	}
	e.EmitStandard(topic.TradeExecuted, &trader, data, metadata)
}

// FeeCollected emits a protocol fee payment, attributed to the payer. Like
// TradeExecuted it has no legacy publish.
func (e *Emitter) FeeCollected(payer, recipient event.Address, amount int64, token event.Address) {
	data := []any{amount, token}
	metadata := map[topic.Key][]any{
		topic.KeyFrom:   {payer},
		topic.KeyTo:     {recipient},
		topic.KeyAmount: {amount},
		topic.KeyToken:  {token},
	}
	e.EmitStandard(topic.FeeCollected, &payer, data, metadata)
}

// ProposalCreated emits a new governance proposal event.
func (e *Emitter) ProposalCreated(proposer event.Address, proposalID uint64, title, proposalType string) {
	data := []any{proposalID, title, proposalType}
	metadata := map[topic.Key][]any{
		topic.KeyProposalID: {proposalID},
	}
	e.EmitStandard(topic.ProposalCreated, &proposer, data, metadata)
	e.publishLegacy(topic.ProposalCreated, []event.Address{proposer}, []any{proposalID, title, proposalType, e.host.Now()})
}

// ProposalExecuted emits a proposal execution event, attributed to the
// executor.
func (e *Emitter) ProposalExecuted(executor event.Address, proposalID uint64, success bool) {
	data := []any{proposalID, success}
	metadata := map[topic.Key][]any{
		topic.KeyProposalID: {proposalID},
	}
	e.EmitStandard(topic.ProposalExecuted, &executor, data, metadata)
	e.publishLegacy(topic.ProposalExecuted, []event.Address{executor}, []any{proposalID, success, e.host.Now()})
}
