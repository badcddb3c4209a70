package model

// ActionCounter tracks accept/reject decisions per consigner. Both counts
// only ever move forward; a checked add guards the maximum.
type ActionCounter struct {
	Key         string `gorm:"primaryKey;size:128" json:"-"`
	Admin       string `gorm:"not null" json:"admin"`
	AcceptCount uint64 `gorm:"not null;default:0" json:"accept_count"`
	RejectCount uint64 `gorm:"not null;default:0" json:"reject_count"`
}
