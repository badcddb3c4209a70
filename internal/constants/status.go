package constants

type TaskStatus string

const (
	StatusOpen      TaskStatus = "open"
	StatusApproved  TaskStatus = "approved"
	StatusRejected  TaskStatus = "rejected"
	StatusExpired   TaskStatus = "expired"
	StatusReclaimed TaskStatus = "reclaimed"
)
