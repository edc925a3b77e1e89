package messaging

import (
	"strings"
	"testing"

	"carelink/models"
)

func newTestGuard() *DefaultGuard {
	return NewDefaultGuard(nil)
}

func TestFilterMessageBlocksHardCategories(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantReason string
	}{
		{"ssn number", "my ssn is 123-45-6789", "Social Security numbers may not be shared or requested"},
		{"ssn phrase", "what is your social security number?", "Social Security numbers may not be shared or requested"},
		{"credit card", "you can use 4111 1111 1111 1111 for the groceries", "card numbers may not be shared or requested"},
		{"bank account", "just send me your routing number", "bank account details may not be shared or requested"},
		{"credentials", "what's the password for the door code app?", "security credentials may not be shared or requested"},
		{"estate", "has she updated her power of attorney?", "estate and inheritance topics may not be discussed here"},
		{"off-platform meeting", "let's arrange this off-platform, I can pay you cash", "meetings and payments must be arranged through the platform"},
	}
	guard := newTestGuard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := guard.FilterMessage(tt.content, models.RolePatient)
			if !got.Blocked || !got.Filtered {
				t.Fatalf("message was not blocked: %+v", got)
			}
			if got.BlockReason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got.BlockReason, tt.wantReason)
			}
			if strings.Contains(got.Content, tt.content) {
				t.Errorf("blocked content still carries the original text: %q", got.Content)
			}
		})
	}
}

func TestFilterMessageBlockShortCircuitsSoftRules(t *testing.T) {
	guard := newTestGuard()
	got := guard.FilterMessage("my ssn is 123-45-6789, reach me at jane@example.com", models.RolePatient)

	if !got.Blocked {
		t.Fatalf("expected a block, got %+v", got)
	}
	if got.Content != blockedContent {
		t.Errorf("content = %q, want the block notice", got.Content)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("a blocked message must carry no soft warnings, got %v", got.Warnings)
	}
}

func TestFilterMessageRedactsSoftCategories(t *testing.T) {
	guard := newTestGuard()
	got := guard.FilterMessage("reach me at jane@example.com please", models.RolePatient)

	if got.Blocked {
		t.Fatalf("soft match must not block: %+v", got)
	}
	if !got.Filtered {
		t.Error("result not marked filtered")
	}
	if got.Content != "reach me at [redacted] please" {
		t.Errorf("content = %q, want the address replaced in place", got.Content)
	}
	if len(got.Warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", got.Warnings)
	}
}

func TestFilterMessageAccumulatesWarnings(t *testing.T) {
	guard := newTestGuard()
	got := guard.FilterMessage("call me at 555-123-4567 or send a photo", models.RoleCaregiver)

	if got.Blocked {
		t.Fatalf("soft matches must not block: %+v", got)
	}
	// phone number, phone solicitation and photo request each warn once.
	if len(got.Warnings) != 3 {
		t.Errorf("warnings = %v, want 3", got.Warnings)
	}
	if strings.Contains(got.Content, "555") || strings.Contains(got.Content, "photo") {
		t.Errorf("risky text survived redaction: %q", got.Content)
	}
}

func TestFilterMessageAgeFishingIsDirectional(t *testing.T) {
	guard := newTestGuard()
	const probe = "by the way, how old are you?"

	fromCaregiver := guard.FilterMessage(probe, models.RoleCaregiver)
	if !fromCaregiver.Filtered || len(fromCaregiver.Warnings) != 1 {
		t.Errorf("caregiver probe should be redacted: %+v", fromCaregiver)
	}
	if strings.Contains(fromCaregiver.Content, "how old") {
		t.Errorf("probe survived redaction: %q", fromCaregiver.Content)
	}

	fromPatient := guard.FilterMessage(probe, models.RolePatient)
	if fromPatient.Filtered || fromPatient.Content != probe {
		t.Errorf("patient asking the same question should pass: %+v", fromPatient)
	}
}

func TestFilterMessagePassesCleanContent(t *testing.T) {
	guard := newTestGuard()
	const clean = "Looking forward to the visit on Thursday. Mom enjoys gardening shows."

	got := guard.FilterMessage(clean, models.RolePatient)
	if got.Filtered || got.Blocked || len(got.Warnings) != 0 {
		t.Fatalf("clean message was altered: %+v", got)
	}
	if got.Content != clean {
		t.Errorf("content = %q, want unchanged", got.Content)
	}
}

func TestFilterMessageLivingSituationProbe(t *testing.T) {
	guard := newTestGuard()
	got := guard.FilterMessage("does she live alone most days?", models.RoleCaregiver)

	if !got.Filtered || got.Blocked {
		t.Fatalf("living-situation probe should redact, not block: %+v", got)
	}
	if strings.Contains(got.Content, "live alone") {
		t.Errorf("probe survived redaction: %q", got.Content)
	}
}
