package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingCycle is how often a subscription is charged.
type BillingCycle string

const (
	BillingWeekly    BillingCycle = "weekly"
	BillingMonthly   BillingCycle = "monthly"
	BillingQuarterly BillingCycle = "quarterly"
	BillingYearly    BillingCycle = "yearly"
)

// DefaultBillingCycle is applied when none is given.
const DefaultBillingCycle = BillingMonthly

func (c BillingCycle) IsValid() bool {
	switch c {
	case BillingWeekly, BillingMonthly, BillingQuarterly, BillingYearly:
		return true
	default:
		return false
	}
}

// Subscription is a recurring cost shared by its members. OwnerID is always
// one of the members.
type Subscription struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	BillingCycle BillingCycle    `json:"billingCycle"`
	DueDate      time.Time       `json:"dueDate"`
	OwnerID      uuid.UUID       `json:"ownerId"`
	LogoURL      *string         `json:"logoUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`

	Members []*SubscriptionMember `json:"members,omitempty"`
}

// IsOwner reports whether userID owns the subscription.
func (s *Subscription) IsOwner(userID uuid.UUID) bool {
	return s.OwnerID == userID
}

// SubscriptionMember is one user's participation in a subscription.
type SubscriptionMember struct {
	ID             uuid.UUID       `json:"id"`
	SubscriptionID uuid.UUID       `json:"subscriptionId"`
	UserID         uuid.UUID       `json:"userId"`
	Share          decimal.Decimal `json:"share"`
	Paid           bool            `json:"paid"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	User *User `json:"user,omitempty"`
}

// FindMember returns the member row of userID, or nil.
func FindMember(members []*SubscriptionMember, userID uuid.UUID) *SubscriptionMember {
	for _, m := range members {
		if m.UserID == userID {
			return m
		}
	}

	return nil
}
