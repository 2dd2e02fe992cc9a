package telegram

import (
	"testing"
)

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		chatID    string
		wantError bool
	}{
		{
			name:      "valid parameters",
			botToken:  "test-token",
			chatID:    "12345",
			wantError: false,
		},
		{
			name:      "empty bot token",
			botToken:  "",
			chatID:    "12345",
			wantError: true,
		},
		{
			name:      "empty chat ID",
			botToken:  "test-token",
			chatID:    "",
			wantError: true,
		},
		{
			name:      "both empty",
			botToken:  "",
			chatID:    "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.botToken, tt.chatID)
			if tt.wantError {
				if err == nil {
					t.Error("NewClient() expected error, got nil")
				}
				if client != nil {
					t.Error("NewClient() should return nil client on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient() unexpected error: %v", err)
			}
			if client == nil {
				t.Fatal("NewClient() returned nil client")
			}
			if client.botToken != tt.botToken {
				t.Errorf("botToken = %q, want %q", client.botToken, tt.botToken)
			}
			if client.chatID != tt.chatID {
				t.Errorf("chatID = %q, want %q", client.chatID, tt.chatID)
			}
			if client.baseURL != defaultBaseURL {
				t.Errorf("baseURL = %q, want %q", client.baseURL, defaultBaseURL)
			}
			if client.httpClient == nil {
				t.Error("httpClient should not be nil")
			}
		})
	}
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("both variables set", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
		t.Setenv("TELEGRAM_CHAT_ID", "67890")

		client, err := NewClientFromEnv()
		if err != nil {
			t.Fatalf("NewClientFromEnv() unexpected error: %v", err)
		}
		if client.botToken != "env-token" {
			t.Errorf("botToken = %q, want 'env-token'", client.botToken)
		}
		if client.chatID != "67890" {
			t.Errorf("chatID = %q, want '67890'", client.chatID)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		t.Setenv("TELEGRAM_CHAT_ID", "67890")

		if _, err := NewClientFromEnv(); err == nil {
			t.Error("NewClientFromEnv() expected error, got nil")
		}
	})

	t.Run("missing chat ID", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
		t.Setenv("TELEGRAM_CHAT_ID", "")

		if _, err := NewClientFromEnv(); err == nil {
			t.Error("NewClientFromEnv() expected error, got nil")
		}
	})
}

func TestSendMessage_Validation(t *testing.T) {
	client := &Client{
		botToken: "test-token",
		chatID:   "12345",
		baseURL:  defaultBaseURL,
	}

	// Test empty message
	err := client.SendMessage("")
	if err == nil {
		t.Error("SendMessage() expected error for empty message, got nil")
	}
	if err != nil && err.Error() != "message text is required" {
		t.Errorf("SendMessage() error = %v, want 'message text is required'", err)
	}
}
