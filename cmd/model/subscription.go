package model

// Subscription is a directed edge: subscriber follows channel. At most one
// row per (subscriber_id, channel_id) pair.
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"uniqueIndex:idx_sub_key"`
	ChannelId      int64  `json:"channel_id" gorm:"uniqueIndex:idx_sub_key"`
	CreatedAt      string `json:"created_at"`
}
