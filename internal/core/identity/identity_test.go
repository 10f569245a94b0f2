package identity

import "testing"

func TestIsSignedIn(t *testing.T) {
	if IsSignedIn(nil) {
		t.Error("nil principal should not be signed in")
	}
	if IsSignedIn(&Principal{}) {
		t.Error("principal with empty username should not be signed in")
	}
	if !IsSignedIn(&Principal{Username: "alice"}) {
		t.Error("principal with username should be signed in")
	}
}

func TestIsAuthor(t *testing.T) {
	alice := &Principal{Username: "alice"}

	if !IsAuthor("alice", alice) {
		t.Error("alice should be the author of her own content")
	}
	if IsAuthor("bob", alice) {
		t.Error("alice should not be the author of bob's content")
	}
	if IsAuthor("alice", nil) {
		t.Error("anonymous principal should never be an author")
	}
	if IsAuthor("", &Principal{Username: ""}) {
		t.Error("empty username should never match, even against empty author")
	}
}
