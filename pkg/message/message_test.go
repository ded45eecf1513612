package message

import "testing"

func TestMessageStringSubstitutesArgs(t *testing.T) {
	msg := Warning("{0} must be at most {1} characters", "Title", "80")
	if got, want := msg.String(), "Title must be at most 80 characters"; got != want {
		t.Fatalf("unexpected message: want %q, got %q", want, got)
	}
	if msg.Level != LevelWarning {
		t.Fatalf("expected warning level, got %v", msg.Level)
	}
}

func TestMessageStringKeepsUnmatchedPlaceholders(t *testing.T) {
	msg := Info("{0} and {1}", "first")
	if got, want := msg.String(), "first and {1}"; got != want {
		t.Fatalf("unexpected message: want %q, got %q", want, got)
	}
}

func TestHighest(t *testing.T) {
	cases := []struct {
		name     string
		messages []Message
		want     Level
	}{
		{name: "empty", want: 0},
		{name: "info only", messages: []Message{Info("a")}, want: LevelInfo},
		{name: "mixed", messages: []Message{Info("a"), Error("b"), Warning("c")}, want: LevelError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Highest(tc.messages); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelError.String() != "error" || Level(42).String() != "unknown" {
		t.Fatalf("unexpected level names")
	}
}
