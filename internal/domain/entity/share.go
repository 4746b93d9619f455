package entity

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShareScale is the number of decimal places shares are stored with.
const ShareScale = 2

var cent = decimal.New(1, -ShareScale)

// SplitCost divides cost into n shares of whole cents whose sum is exactly
// cost. The leftover cents go to the first shares, one each.
func SplitCost(cost decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	total := cost.Round(ShareScale)
	count := decimal.NewFromInt(int64(n))
	base := total.Div(count).RoundDown(ShareScale)
	remainder := total.Sub(base.Mul(count)).Div(cent).IntPart()

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i] = base.Add(cent)
		}
	}

	return shares
}

// ShareChange is a member whose share differs from the stored one.
type ShareChange struct {
	MemberID uuid.UUID
	UserID   uuid.UUID
	Share    decimal.Decimal
	Paid     bool
}

// Reshare computes the equal split of cost over members and returns the rows
// that need updating. Members get the leftover cents in join order with the
// owner first. A non-owner whose share changes is marked unpaid; the owner
// always stays paid.
func Reshare(cost decimal.Decimal, ownerID uuid.UUID, members []*SubscriptionMember) []ShareChange {
	ordered := slices.Clone(members)
	slices.SortStableFunc(ordered, func(a, b *SubscriptionMember) int {
		switch {
		case a.UserID == ownerID:
			return -1
		case b.UserID == ownerID:
			return 1
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	})

	shares := SplitCost(cost, len(ordered))
	changes := make([]ShareChange, 0, len(ordered))
	for i, m := range ordered {
		isOwner := m.UserID == ownerID
		paid := m.Paid
		if isOwner {
			paid = true
		} else if !m.Share.Equal(shares[i]) {
			paid = false
		}

		if m.Share.Equal(shares[i]) && paid == m.Paid {
			continue
		}

		changes = append(changes, ShareChange{
			MemberID: m.ID,
			UserID:   m.UserID,
			Share:    shares[i],
			Paid:     paid,
		})
	}

	return changes
}

// ApplyShareChanges writes changes onto the matching members in place.
func ApplyShareChanges(members []*SubscriptionMember, changes []ShareChange) {
	for _, c := range changes {
		for _, m := range members {
			if m.ID == c.MemberID {
				m.Share = c.Share
				m.Paid = c.Paid
			}
		}
	}
}

// SumShares adds up the shares of all members.
func SumShares(members []*SubscriptionMember) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range members {
		sum = sum.Add(m.Share)
	}

	return sum
}

// EarliestMemberExcept returns the longest-standing member other than userID,
// or nil when there is none.
func EarliestMemberExcept(members []*SubscriptionMember, userID uuid.UUID) *SubscriptionMember {
	var earliest *SubscriptionMember
	for _, m := range members {
		if m.UserID == userID {
			continue
		}
		if earliest == nil || m.CreatedAt.Before(earliest.CreatedAt) {
			earliest = m
		}
	}

	return earliest
}
