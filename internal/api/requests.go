package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/stellara-labs/eventstream/internal/emitter"
	"github.com/stellara-labs/eventstream/internal/event"
)

// errUnknownAction distinguishes a bad route segment from a bad body.
var errUnknownAction = errors.New("unknown action")

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %s", err)
	}
	return nil
}

// dispatch decodes the action-specific body and invokes the matching
// emission operation. Action names are the wire tags from the topic
// registry.
func dispatch(em *emitter.Emitter, action string, r *http.Request) error {
	switch action {
	case "transfer":
		var b struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Amount int64  `json:"amount"`
			Token  string `json:"token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"from": b.From, "to": b.To, "token": b.Token}); err != nil {
			return err
		}
		em.Transfer(event.Address(b.From), event.Address(b.To), b.Amount, event.Address(b.Token))

	case "approve":
		var b struct {
			From    string `json:"from"`
			Spender string `json:"spender"`
			Amount  int64  `json:"amount"`
			Token   string `json:"token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"from": b.From, "spender": b.Spender, "token": b.Token}); err != nil {
			return err
		}
		em.Approve(event.Address(b.From), event.Address(b.Spender), b.Amount, event.Address(b.Token))

	case "mint":
		var b struct {
			To     string  `json:"to"`
			Amount int64   `json:"amount"`
			Token  string  `json:"token"`
			Reason *string `json:"reason,omitempty"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"to": b.To, "token": b.Token}); err != nil {
			return err
		}
		em.Mint(event.Address(b.To), b.Amount, event.Address(b.Token), b.Reason)

	case "burn":
		var b struct {
			From   string `json:"from"`
			Amount int64  `json:"amount"`
			Token  string `json:"token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"from": b.From, "token": b.Token}); err != nil {
			return err
		}
		em.Burn(event.Address(b.From), b.Amount, event.Address(b.Token))

	case "admin_changed":
		var b struct {
			OldAdmin string `json:"old_admin"`
			NewAdmin string `json:"new_admin"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"old_admin": b.OldAdmin, "new_admin": b.NewAdmin}); err != nil {
			return err
		}
		em.AdminChanged(event.Address(b.OldAdmin), event.Address(b.NewAdmin))

	case "auth_changed":
		var b struct {
			User       string `json:"user"`
			Authorized bool   `json:"authorized"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"user": b.User}); err != nil {
			return err
		}
		em.AuthorizationChanged(event.Address(b.User), b.Authorized)

	case "stake":
		var b struct {
			User       string `json:"user"`
			Amount     int64  `json:"amount"`
			LockPeriod uint64 `json:"lock_period"`
			Token      string `json:"token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"user": b.User, "token": b.Token}); err != nil {
			return err
		}
		em.Stake(event.Address(b.User), b.Amount, b.LockPeriod, event.Address(b.Token))

	case "unstake":
		var b struct {
			User    string `json:"user"`
			Amount  int64  `json:"amount"`
			Rewards int64  `json:"rewards"`
			Fee     int64  `json:"fee"`
			Token   string `json:"token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"user": b.User, "token": b.Token}); err != nil {
			return err
		}
		em.Unstake(event.Address(b.User), b.Amount, b.Rewards, b.Fee, event.Address(b.Token))

	case "rewards_claimed":
		var b struct {
			User         string `json:"user"`
			BaseRewards  int64  `json:"base_rewards"`
			BonusRewards int64  `json:"bonus_rewards"`
			Token        string `json:"token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"user": b.User, "token": b.Token}); err != nil {
			return err
		}
		em.RewardsClaimed(event.Address(b.User), b.BaseRewards, b.BonusRewards, event.Address(b.Token))

	case "vote":
		var b struct {
			Voter       string `json:"voter"`
			ProposalID  uint64 `json:"proposal_id"`
			VoteType    string `json:"vote_type"`
			VotingPower uint64 `json:"voting_power"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"voter": b.Voter}); err != nil {
			return err
		}
		if b.VoteType == "" {
			return fmt.Errorf("vote_type is required")
		}
		em.Vote(event.Address(b.Voter), b.ProposalID, b.VoteType, b.VotingPower)

	case "pool_updated":
		var b struct {
			Admin           string `json:"admin"`
			RewardRate      int64  `json:"reward_rate"`
			BonusMultiplier uint32 `json:"bonus_multiplier"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"admin": b.Admin}); err != nil {
			return err
		}
		em.PoolUpdated(event.Address(b.Admin), b.RewardRate, b.BonusMultiplier)

	case "propose":
		var b struct {
			Proposer     string `json:"proposer"`
			ProposalID   uint64 `json:"proposal_id"`
			Title        string `json:"title"`
			ProposalType string `json:"proposal_type"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"proposer": b.Proposer}); err != nil {
			return err
		}
		em.ProposalCreated(event.Address(b.Proposer), b.ProposalID, b.Title, b.ProposalType)

	case "execute":
		var b struct {
			Executor   string `json:"executor"`
			ProposalID uint64 `json:"proposal_id"`
			Success    bool   `json:"success"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"executor": b.Executor}); err != nil {
			return err
		}
		em.ProposalExecuted(event.Address(b.Executor), b.ProposalID, b.Success)

	case "trade":
		var b struct {
			Trader    string `json:"trader"`
			Pair      string `json:"pair"`
			Amount    int64  `json:"amount"`
			Price     int64  `json:"price"`
			IsBuy     bool   `json:"is_buy"`
			FeeAmount int64  `json:"fee_amount"`
			FeeToken  string `json:"fee_token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"trader": b.Trader, "fee_token": b.FeeToken}); err != nil {
			return err
		}
		if b.Pair == "" {
			return fmt.Errorf("pair is required")
		}
		em.TradeExecuted(event.Address(b.Trader), b.Pair, b.Amount, b.Price, b.IsBuy, b.FeeAmount, event.Address(b.FeeToken))

	case "fee":
		var b struct {
			Payer     string `json:"payer"`
			Recipient string `json:"recipient"`
			Amount    int64  `json:"amount"`
			Token     string `json:"token"`
		}
		if err := decode(r, &b); err != nil {
			return err
		}
		if err := requireAddrs(map[string]string{"payer": b.Payer, "recipient": b.Recipient, "token": b.Token}); err != nil {
			return err
		}
		em.FeeCollected(event.Address(b.Payer), event.Address(b.Recipient), b.Amount, event.Address(b.Token))

	default:
		return errUnknownAction
	}
	return nil
}
