package payment

import "testing"

func TestNewStripeGatewayRequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := NewStripeGateway(Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewStripeGateway(Config{APIKey: "sk_test_123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestToCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  int64
	}{
		{300, 30000},
		{45.5, 4550},
		{0.1, 10},
		{19.995, 2000},
	}
	for _, tt := range tests {
		if got := toCents(tt.price); got != tt.want {
			t.Fatalf("toCents(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}
