package domain

import (
	"strings"
	"testing"
)

func TestNewHome(t *testing.T) {
	t.Parallel()

	t.Run("Should trim the name and generate an invite code", func(t *testing.T) {
		t.Parallel()

		home, err := NewHome("  Via Roma 12  ")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if home.Name != "Via Roma 12" {
			t.Errorf("Expected trimmed name, got %q", home.Name)
		}
		if home.ID == "" {
			t.Error("Expected an id")
		}
		if len(home.InviteCode) != inviteCodeLen {
			t.Errorf("Expected invite code of %d chars, got %q", inviteCodeLen, home.InviteCode)
		}
		if home.InviteCode != strings.ToUpper(home.InviteCode) {
			t.Errorf("Expected upper-case invite code, got %q", home.InviteCode)
		}
	})

	t.Run("Should reject empty and oversized names", func(t *testing.T) {
		t.Parallel()

		if _, err := NewHome("   "); err != ErrHomeNameEmpty {
			t.Errorf("Expected ErrHomeNameEmpty, got %v", err)
		}
		if _, err := NewHome(strings.Repeat("a", MaxHomeNameLen+1)); err != ErrHomeNameTooLong {
			t.Errorf("Expected ErrHomeNameTooLong, got %v", err)
		}
	})
}

func TestNormalizeInviteCode(t *testing.T) {
	if got := NormalizeInviteCode("  ab12cd34 "); got != "AB12CD34" {
		t.Errorf("Expected AB12CD34, got %s", got)
	}
}
