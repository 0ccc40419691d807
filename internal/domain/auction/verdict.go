package auction

import "fmt"

// Verdict is the accept/reject decision for a proposed sale, carrying a
// human-readable rationale for the notification channel.
type Verdict struct {
	Accepted bool
	Message  string
}

func reject(format string, args ...any) Verdict {
	return Verdict{Accepted: false, Message: fmt.Sprintf(format, args...)}
}

// ValidateBid runs the sale checks in order, short-circuiting on the first
// failure: team exists, price is positive, price covers the base price, the
// team has an open slot, the wallet covers the price, and the balance left
// after the sale still covers the minimum base price for every remaining
// slot (the reserve rule). It never mutates; the accepting message reports
// the ceiling that applied to this bid.
func ValidateBid(team *Team, player Player, price int, s Settings) Verdict {
	if team == nil {
		return reject("Select a winning team.")
	}
	if price <= 0 {
		return reject("Enter a valid sold price.")
	}
	if price < player.BasePrice {
		return reject("Sold price cannot be below base price (₹%d).", player.BasePrice)
	}

	slotsLeft := team.SlotsLeft(s.SquadSize)
	if slotsLeft <= 0 {
		return reject("%s has no open squad slots.", team.Name)
	}
	if team.WalletRemaining < price {
		return reject("%s does not have enough balance.", team.Name)
	}

	balanceAfter := team.WalletRemaining - price
	requiredReserve := (slotsLeft - 1) * s.MinBasePrice
	if balanceAfter < requiredReserve {
		return reject("Max bid rule failed. %s must keep ₹%d for remaining slots.", team.Name, requiredReserve)
	}

	return Verdict{
		Accepted: true,
		Message:  fmt.Sprintf("%s can bid up to ₹%d.", team.Name, team.MaxAllowableBid(s)),
	}
}
