package services

import (
	"context"
	"errors"
	"testing"
)

func TestSettingsKey(t *testing.T) {
	tests := []struct {
		name     string
		uid      string
		field    string
		expected string
	}{
		{
			name:     "plain field",
			uid:      "u-123",
			field:    "display_name",
			expected: "settings:u-123:display_name",
		},
		{
			name:     "field with dash",
			uid:      "abc",
			field:    "default-section",
			expected: "settings:abc:default-section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SettingsKey(tt.uid, tt.field); got != tt.expected {
				t.Errorf("SettingsKey(%q, %q) = %q; want %q", tt.uid, tt.field, got, tt.expected)
			}
		})
	}
}

func TestFlashKey(t *testing.T) {
	if got := flashKey("sess-1"); got != "flash:sess-1" {
		t.Errorf("flashKey(%q) = %q; want %q", "sess-1", got, "flash:sess-1")
	}
}

func TestSettingsStoreWithoutCache(t *testing.T) {
	store := NewSettingsStore(nil)
	ctx := context.Background()

	value, ok, err := store.Get(ctx, "u-1", "display_name")
	if err != nil || ok || value != "" {
		t.Errorf("Get = (%q, %v, %v); want empty store", value, ok, err)
	}

	if err := store.Set(ctx, "u-1", "display_name", "Ada"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Set err = %v; want ErrStorageUnavailable", err)
	}

	if err := store.Remove(ctx, "u-1", "display_name"); err != nil {
		t.Errorf("Remove err = %v; want nil", err)
	}
	if err := store.RemoveAll(ctx, "u-1", []string{"display_name", "timezone"}); err != nil {
		t.Errorf("RemoveAll err = %v; want nil", err)
	}
}

func TestNotifierWithoutCache(t *testing.T) {
	notifier := NewNotifier(nil)
	ctx := context.Background()

	notifier.Push(ctx, "u-1", FlashSuccess, "saved")
	if pending := notifier.Pop(ctx, "u-1"); pending != nil {
		t.Errorf("Pop = %v; want nil without a cache", pending)
	}
}
