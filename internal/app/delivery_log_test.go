package app

import (
	"fmt"
	"testing"
	"time"

	"alert_notification_service/internal/domain/delivery"
)

func makeRecords(n int, prefix string) []delivery.Record {
	out := make([]delivery.Record, n)
	for i := range out {
		out[i] = delivery.Record{
			ID:        fmt.Sprintf("%s-%d", prefix, i),
			AlertID:   "alert-1",
			Channel:   delivery.ChannelEmail,
			Timestamp: time.Now(),
			Status:    delivery.StatusSent,
		}
	}
	return out
}

func TestDeliveryLog_ReadMostRecentFirst(t *testing.T) {
	dl := NewDeliveryLog()
	dl.Append(makeRecords(3, "a"))

	got := dl.Read()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, wantID := range []string{"a-2", "a-1", "a-0"} {
		if got[i].ID != wantID {
			t.Errorf("entry %d: got %s, want %s", i, got[i].ID, wantID)
		}
	}
}

func TestDeliveryLog_BoundEvictsOldest(t *testing.T) {
	dl := NewDeliveryLog()
	dl.Append(makeRecords(MaxLogEntries, "old"))
	dl.Append(makeRecords(5, "new"))

	got := dl.Read()
	if len(got) != MaxLogEntries {
		t.Fatalf("log should hold at most %d entries, got %d", MaxLogEntries, len(got))
	}
	if got[0].ID != "new-4" {
		t.Errorf("newest entry should be first, got %s", got[0].ID)
	}
	if oldest := got[len(got)-1].ID; oldest != "old-5" {
		t.Errorf("the 5 oldest entries should be evicted, oldest remaining is %s", oldest)
	}
}

func TestDeliveryLog_AppendNotifiesOncePerBatch(t *testing.T) {
	dl := NewDeliveryLog()

	var notifications [][]delivery.Record
	dl.Subscribe(func(entries []delivery.Record) {
		notifications = append(notifications, entries)
	})
	if len(notifications) != 0 {
		t.Fatalf("subscribing must not fire immediately, got %d calls", len(notifications))
	}

	dl.Append(makeRecords(4, "b"))
	if len(notifications) != 1 {
		t.Fatalf("expected one notification per batch, got %d", len(notifications))
	}
	if len(notifications[0]) != 4 {
		t.Errorf("notification should carry the full sequence, got %d entries", len(notifications[0]))
	}
	if notifications[0][0].ID != "b-3" {
		t.Errorf("notification should be most recent first, got %s", notifications[0][0].ID)
	}
}

func TestDeliveryLog_AppendEmptyIsNoOp(t *testing.T) {
	dl := NewDeliveryLog()

	calls := 0
	dl.Subscribe(func([]delivery.Record) { calls++ })

	dl.Append(nil)
	dl.Append([]delivery.Record{})

	if calls != 0 {
		t.Errorf("empty appends must not notify, got %d calls", calls)
	}
	if got := dl.Read(); len(got) != 0 {
		t.Errorf("log should still be empty, got %d entries", len(got))
	}
}

func TestDeliveryLog_ClearNotifiesEmpty(t *testing.T) {
	dl := NewDeliveryLog()
	dl.Append(makeRecords(2, "c"))

	var last []delivery.Record
	notified := false
	dl.Subscribe(func(entries []delivery.Record) {
		last = entries
		notified = true
	})

	dl.Clear()
	if !notified {
		t.Fatal("clear should notify subscribers")
	}
	if len(last) != 0 {
		t.Errorf("clear notification should carry an empty sequence, got %d entries", len(last))
	}
	if got := dl.Read(); len(got) != 0 {
		t.Errorf("log should be empty after clear, got %d entries", len(got))
	}
}

func TestDeliveryLog_UnsubscribeStopsNotifications(t *testing.T) {
	dl := NewDeliveryLog()

	calls := 0
	unsub := dl.Subscribe(func([]delivery.Record) { calls++ })
	dl.Append(makeRecords(1, "d"))
	unsub()
	dl.Append(makeRecords(1, "e"))

	if calls != 1 {
		t.Errorf("expected exactly one notification before unsubscribe, got %d", calls)
	}
}
