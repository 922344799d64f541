package db

import "gorm.io/gorm"

var Subscription *SubscriptionDB

func Init(gdb *gorm.DB) {
	Subscription = NewSubscriptionDB(gdb)
}
