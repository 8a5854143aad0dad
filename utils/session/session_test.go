package session

import (
	"testing"
	"time"
)

func TestIDDeterministic(t *testing.T) {
	date := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	first := ID("203.0.113.7", "Mozilla/5.0", date)
	second := ID("203.0.113.7", "Mozilla/5.0", date)

	if first != second {
		t.Errorf("same inputs produced different ids: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("id length = %d, want 64 hex chars", len(first))
	}
}

func TestIDSameDayDifferentTime(t *testing.T) {
	morning := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 15, 22, 0, 0, 0, time.UTC)

	if ID("203.0.113.7", "Mozilla/5.0", morning) != ID("203.0.113.7", "Mozilla/5.0", evening) {
		t.Error("id changed within the same UTC day")
	}
}

func TestIDChangesAcrossDays(t *testing.T) {
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	if ID("203.0.113.7", "Mozilla/5.0", today) == ID("203.0.113.7", "Mozilla/5.0", tomorrow) {
		t.Error("id did not change across days")
	}
}

func TestIDVariesByInput(t *testing.T) {
	date := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	base := ID("203.0.113.7", "Mozilla/5.0", date)

	if ID("203.0.113.8", "Mozilla/5.0", date) == base {
		t.Error("different ip produced the same id")
	}
	if ID("203.0.113.7", "curl/8.0", date) == base {
		t.Error("different user agent produced the same id")
	}
}

func TestHashIP(t *testing.T) {
	first := HashIP("203.0.113.7")
	second := HashIP("203.0.113.7")

	if first != second {
		t.Errorf("same ip produced different hashes: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(first))
	}
	if first == "203.0.113.7" {
		t.Error("ip was not hashed")
	}
	if HashIP("203.0.113.8") == first {
		t.Error("different ips produced the same hash")
	}
}
