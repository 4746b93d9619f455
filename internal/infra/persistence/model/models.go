// Package model holds the GORM structs that mirror the database tables.
package model

// All lists every table model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&UserDeviceModel{},
		&FriendshipModel{},
		&SubscriptionModel{},
		&SubscriptionMemberModel{},
		&InvitationModel{},
		&NotificationModel{},
		&PaymentModel{},
	}
}
