package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitCost(t *testing.T) {
	tests := []struct {
		name string
		cost string
		n    int
		want []string
	}{
		{name: "single member takes everything", cost: "15.99", n: 1, want: []string{"15.99"}},
		{name: "odd cent goes to first", cost: "15.99", n: 2, want: []string{"8.00", "7.99"}},
		{name: "even split", cost: "30", n: 2, want: []string{"15.00", "15.00"}},
		{name: "two leftover cents", cost: "10.00", n: 3, want: []string{"3.34", "3.33", "3.33"}},
		{name: "free subscription", cost: "0", n: 4, want: []string{"0", "0", "0", "0"}},
		{name: "no members", cost: "9.99", n: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCost(dec(tt.cost), tt.n)
			require.Len(t, got, len(tt.want))

			sum := decimal.Zero
			for i, share := range got {
				assert.True(t, dec(tt.want[i]).Equal(share), "share %d: want %s got %s", i, tt.want[i], share)
				sum = sum.Add(share)
			}
			if tt.n > 0 {
				assert.True(t, dec(tt.cost).Equal(sum))
			}
		})
	}
}

func TestReshare_OwnerFirstAndPaidReset(t *testing.T) {
	now := time.Now()
	owner := uuid.New()
	first := uuid.New()
	second := uuid.New()

	members := []*SubscriptionMember{
		{ID: uuid.New(), UserID: second, Share: dec("10.00"), Paid: true, CreatedAt: now.Add(2 * time.Minute)},
		{ID: uuid.New(), UserID: owner, Share: dec("10.00"), Paid: true, CreatedAt: now.Add(5 * time.Minute)},
		{ID: uuid.New(), UserID: first, Share: dec("10.00"), Paid: true, CreatedAt: now.Add(time.Minute)},
	}

	changes := Reshare(dec("20.00"), owner, members)
	ApplyShareChanges(members, changes)

	byUser := map[uuid.UUID]*SubscriptionMember{}
	for _, m := range members {
		byUser[m.UserID] = m
	}

	assert.True(t, dec("6.67").Equal(byUser[owner].Share))
	assert.True(t, dec("6.67").Equal(byUser[first].Share))
	assert.True(t, dec("6.66").Equal(byUser[second].Share))
	assert.True(t, byUser[owner].Paid)
	assert.False(t, byUser[first].Paid)
	assert.False(t, byUser[second].Paid)
	assert.True(t, dec("20.00").Equal(SumShares(members)))
}

func TestReshare_UnchangedSharesProduceNoWrites(t *testing.T) {
	owner := uuid.New()
	members := []*SubscriptionMember{
		{ID: uuid.New(), UserID: owner, Share: dec("15.00"), Paid: true},
		{ID: uuid.New(), UserID: uuid.New(), Share: dec("15.00"), Paid: true},
	}

	assert.Empty(t, Reshare(dec("30"), owner, members))
}

func TestEarliestMemberExcept(t *testing.T) {
	now := time.Now()
	owner := uuid.New()
	y := &SubscriptionMember{UserID: uuid.New(), CreatedAt: now.Add(time.Minute)}
	z := &SubscriptionMember{UserID: uuid.New(), CreatedAt: now.Add(2 * time.Minute)}
	members := []*SubscriptionMember{z, {UserID: owner, CreatedAt: now}, y}

	assert.Same(t, y, EarliestMemberExcept(members, owner))
	assert.Nil(t, EarliestMemberExcept(members[1:2], owner))
}
