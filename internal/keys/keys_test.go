package keys

import "testing"

func TestTaskKeysAreUniquePerPair(t *testing.T) {
	a := Task("wallet-1", 1)
	b := Task("wallet-1", 2)
	c := Task("wallet-2", 1)

	if a == b || a == c || b == c {
		t.Errorf("task keys collide: %q %q %q", a, b, c)
	}

	if a != Task("wallet-1", 1) {
		t.Error("task key is not deterministic")
	}
}

func TestNamespacesDoNotCollide(t *testing.T) {
	if Config() == Counter("config_v2") || Counter("x") == Task("x", 0) {
		t.Error("namespace prefixes collide")
	}
}

func TestCounterKey(t *testing.T) {
	if got := Counter("wallet-1"); got != "admin_counter:wallet-1" {
		t.Errorf("unexpected counter key %q", got)
	}
	if got := Task("wallet-1", 42); got != "task_account:wallet-1:42" {
		t.Errorf("unexpected task key %q", got)
	}
}
