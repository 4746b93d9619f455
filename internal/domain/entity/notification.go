package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NotificationType is the closed set of notification kinds. The string values
// are part of the client contract.
type NotificationType string

const (
	NotificationFriendRequest             NotificationType = "friend_request"
	NotificationFriendAccepted            NotificationType = "friend_accepted"
	NotificationFriendRemoved             NotificationType = "friend_removed"
	NotificationPaymentReminder           NotificationType = "payment_reminder"
	NotificationPaymentReceived           NotificationType = "payment_received"
	NotificationSubscriptionInvitation    NotificationType = "subscription_invitation"
	NotificationSubscriptionMemberRemoved NotificationType = "subscription_member_removed"
	NotificationSubscriptionRemoved       NotificationType = "subscription_removed"
	NotificationSubscriptionMemberLeft    NotificationType = "subscription_member_left"
	NotificationSubscriptionLeft          NotificationType = "subscription_left"
	NotificationSubscriptionDeleted       NotificationType = "subscription_deleted"
)

// IsActionable reports whether the notification stands for a pending decision
// and is therefore deleted, not marked read, once the user acts on it.
func (t NotificationType) IsActionable() bool {
	return t == NotificationFriendRequest || t == NotificationSubscriptionInvitation
}

// NotificationContent is the payload of a notification. Each type has exactly
// one content struct.
type NotificationContent interface {
	NotificationType() NotificationType
	// Describe renders the push title and body.
	Describe() (title, body string)
}

// Notification is a per-recipient event record.
type Notification struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	Type      NotificationType    `json:"type"`
	Content   NotificationContent `json:"content"`
	Metadata  map[string]string   `json:"metadata,omitempty"`
	Read      bool                `json:"read"`
	CreatedAt time.Time           `json:"createdAt"`
}

// NewNotification addresses content to userID.
func NewNotification(userID uuid.UUID, content NotificationContent, metadata map[string]string) *Notification {
	return &Notification{
		UserID:   userID,
		Type:     content.NotificationType(),
		Content:  content,
		Metadata: metadata,
	}
}

// SenderInfo identifies the user who caused a friend or payment notification.
type SenderInfo struct {
	SenderID            uuid.UUID `json:"senderId"`
	SenderUsername      string    `json:"senderUsername"`
	SenderWalletAddress string    `json:"senderWalletAddress,omitempty"`
}

// SenderFrom builds SenderInfo from a user profile.
func SenderFrom(u *User) SenderInfo {
	return SenderInfo{
		SenderID:            u.ID,
		SenderUsername:      u.Username,
		SenderWalletAddress: u.WalletOrEmpty(),
	}
}

// SubscriptionRef names the subscription a notification is about.
type SubscriptionRef struct {
	SubscriptionID   uuid.UUID `json:"subscriptionId"`
	SubscriptionName string    `json:"subscriptionName"`
}

type FriendRequestContent struct {
	SenderInfo
}

type FriendAcceptedContent struct {
	SenderInfo
}

type FriendRemovedContent struct {
	SenderID       uuid.UUID `json:"senderId"`
	SenderUsername string    `json:"senderUsername"`
	Message        string    `json:"message"`
}

type PaymentReminderContent struct {
	SenderInfo
	SubscriptionRef
	Amount decimal.Decimal `json:"amount"`
}

type PaymentReceivedContent struct {
	SenderInfo
	SubscriptionRef
	Amount          decimal.Decimal `json:"amount"`
	TransactionHash string          `json:"transactionHash,omitempty"`
}

type SubscriptionInvitationContent struct {
	InvitationID     uuid.UUID       `json:"invitationId"`
	SubscriptionID   uuid.UUID       `json:"subscriptionId"`
	SubscriptionName string          `json:"subscriptionName"`
	FromUserID       uuid.UUID       `json:"fromUserId"`
	FromUsername     string          `json:"fromUsername"`
	Cost             decimal.Decimal `json:"cost"`
}

type SubscriptionMemberRemovedContent struct {
	SubscriptionRef
	RemovedMemberID       uuid.UUID `json:"removedMemberId"`
	RemovedMemberUsername string    `json:"removedMemberUsername"`
	Message               string    `json:"message"`
}

type SubscriptionRemovedContent struct {
	SubscriptionRef
	Message string `json:"message"`
}

type SubscriptionMemberLeftContent struct {
	SubscriptionRef
	LeavingMemberID       uuid.UUID `json:"leavingMemberId"`
	LeavingMemberUsername string    `json:"leavingMemberUsername"`
	Message               string    `json:"message"`
}

type SubscriptionLeftContent struct {
	SubscriptionRef
	Message string `json:"message"`
}

type SubscriptionDeletedContent struct {
	SubscriptionRef
	Message string `json:"message"`
}

func (FriendRequestContent) NotificationType() NotificationType {
	return NotificationFriendRequest
}

func (c FriendRequestContent) Describe() (string, string) {
	return "New friend request", c.SenderUsername + " wants to be your friend"
}

func (FriendAcceptedContent) NotificationType() NotificationType {
	return NotificationFriendAccepted
}

func (c FriendAcceptedContent) Describe() (string, string) {
	return "Friend request accepted", c.SenderUsername + " accepted your friend request"
}

func (FriendRemovedContent) NotificationType() NotificationType {
	return NotificationFriendRemoved
}

func (c FriendRemovedContent) Describe() (string, string) {
	return "Friend removed", c.Message
}

func (PaymentReminderContent) NotificationType() NotificationType {
	return NotificationPaymentReminder
}

func (c PaymentReminderContent) Describe() (string, string) {
	return "Payment reminder", fmt.Sprintf("%s reminds you to pay %s for %s", c.SenderUsername, c.Amount.StringFixed(ShareScale), c.SubscriptionName)
}

func (PaymentReceivedContent) NotificationType() NotificationType {
	return NotificationPaymentReceived
}

func (c PaymentReceivedContent) Describe() (string, string) {
	return "Payment received", fmt.Sprintf("%s paid %s for %s", c.SenderUsername, c.Amount.StringFixed(ShareScale), c.SubscriptionName)
}

func (SubscriptionInvitationContent) NotificationType() NotificationType {
	return NotificationSubscriptionInvitation
}

func (c SubscriptionInvitationContent) Describe() (string, string) {
	return "Subscription invitation", fmt.Sprintf("%s invited you to share %s", c.FromUsername, c.SubscriptionName)
}

func (SubscriptionMemberRemovedContent) NotificationType() NotificationType {
	return NotificationSubscriptionMemberRemoved
}

func (c SubscriptionMemberRemovedContent) Describe() (string, string) {
	return c.SubscriptionName, c.Message
}

func (SubscriptionRemovedContent) NotificationType() NotificationType {
	return NotificationSubscriptionRemoved
}

func (c SubscriptionRemovedContent) Describe() (string, string) {
	return c.SubscriptionName, c.Message
}

func (SubscriptionMemberLeftContent) NotificationType() NotificationType {
	return NotificationSubscriptionMemberLeft
}

func (c SubscriptionMemberLeftContent) Describe() (string, string) {
	return c.SubscriptionName, c.Message
}

func (SubscriptionLeftContent) NotificationType() NotificationType {
	return NotificationSubscriptionLeft
}

func (c SubscriptionLeftContent) Describe() (string, string) {
	return c.SubscriptionName, c.Message
}

func (SubscriptionDeletedContent) NotificationType() NotificationType {
	return NotificationSubscriptionDeleted
}

func (c SubscriptionDeletedContent) Describe() (string, string) {
	return c.SubscriptionName, c.Message
}

// DecodeNotificationContent parses a stored payload into the struct for t.
func DecodeNotificationContent(t NotificationType, raw []byte) (NotificationContent, error) {
	switch t {
	case NotificationFriendRequest:
		return decodeContent[FriendRequestContent](t, raw)
	case NotificationFriendAccepted:
		return decodeContent[FriendAcceptedContent](t, raw)
	case NotificationFriendRemoved:
		return decodeContent[FriendRemovedContent](t, raw)
	case NotificationPaymentReminder:
		return decodeContent[PaymentReminderContent](t, raw)
	case NotificationPaymentReceived:
		return decodeContent[PaymentReceivedContent](t, raw)
	case NotificationSubscriptionInvitation:
		return decodeContent[SubscriptionInvitationContent](t, raw)
	case NotificationSubscriptionMemberRemoved:
		return decodeContent[SubscriptionMemberRemovedContent](t, raw)
	case NotificationSubscriptionRemoved:
		return decodeContent[SubscriptionRemovedContent](t, raw)
	case NotificationSubscriptionMemberLeft:
		return decodeContent[SubscriptionMemberLeftContent](t, raw)
	case NotificationSubscriptionLeft:
		return decodeContent[SubscriptionLeftContent](t, raw)
	case NotificationSubscriptionDeleted:
		return decodeContent[SubscriptionDeletedContent](t, raw)
	default:
		return nil, errors.Errorf("unknown notification type %q", t)
	}
}

func decodeContent[T NotificationContent](t NotificationType, raw []byte) (NotificationContent, error) {
	var content T
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, errors.Wrapf(err, "decode %s content", t)
	}

	return content, nil
}
