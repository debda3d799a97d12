package model

import "testing"

func TestAwaitedField_String(t *testing.T) {
	tests := []struct {
		field AwaitedField
		want  string
	}{
		{AwaitNone, "none"},
		{AwaitTitle, "title"},
		{AwaitArtist, "artist"},
		{AwaitImage, "image"},
		{AwaitedField(99), "none"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.field.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvents_User(t *testing.T) {
	events := []Event{
		CommandStart{UserID: 7},
		AudioUploaded{UserID: 7},
		PhotoUploaded{UserID: 7},
		TextMessage{UserID: 7},
		ButtonPressed{UserID: 7},
	}

	for _, ev := range events {
		if ev.User() != 7 {
			t.Errorf("%T.User() = %d, want 7", ev, ev.User())
		}
	}
}
