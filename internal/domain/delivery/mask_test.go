package delivery

import "testing"

func TestMaskDestination(t *testing.T) {
	cases := []struct {
		channel Channel
		dest    string
		want    string
	}{
		{ChannelEmail, "john@example.com", "j***@example.com"},
		{ChannelEmail, "bad-address", "***"},
		{ChannelSMS, "+1 555 123 4567", "*******4567"},
		{ChannelSMS, "123", "***"},
		{ChannelWhatsApp, "+491701234567", "********4567"},
		{ChannelTelegram, "@market_watcher", "@ma***"},
		{ChannelTelegram, "market_watcher", "@ma***"},
		{ChannelTelegram, "ab", "@***"},
	}
	for _, tc := range cases {
		if got := MaskDestination(tc.channel, tc.dest); got != tc.want {
			t.Errorf("MaskDestination(%s, %q) = %q, want %q", tc.channel, tc.dest, got, tc.want)
		}
	}
}

func TestRecordTerminalTransitions(t *testing.T) {
	r := Record{Status: StatusPending}

	r.MarkFailed("gateway timeout")
	if r.Status != StatusFailed || r.Error != "gateway timeout" {
		t.Errorf("after MarkFailed: status=%s error=%q", r.Status, r.Error)
	}

	r = Record{Status: StatusPending}
	r.MarkSent()
	if r.Status != StatusSent || r.Error != "" {
		t.Errorf("after MarkSent: status=%s error=%q", r.Status, r.Error)
	}
}
