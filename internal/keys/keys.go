// Package keys builds the deterministic storage addresses for every record
// type. Two records collide only if their namespace and identifying fields
// are identical, so uniqueness-on-create at the store enforces one record
// per address.
package keys

import "strconv"

const (
	configNamespace  = "config_v2"
	taskNamespace    = "task_account"
	counterNamespace = "admin_counter"
)

// Config returns the fixed address of the singleton program configuration.
func Config() string {
	return configNamespace
}

// Task returns the address of the task record owned by consigner with the
// given caller-chosen id.
func Task(consigner string, taskID uint64) string {
	return taskNamespace + ":" + consigner + ":" + strconv.FormatUint(taskID, 10)
}

// Counter returns the address of a consigner's action counter.
func Counter(consigner string) string {
	return counterNamespace + ":" + consigner
}
