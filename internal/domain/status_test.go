package domain

import "testing"

func TestNormalizeBookingStatus(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected BookingStatus
	}{
		{name: "pending", input: "pending", expected: BookingStatusPending},
		{name: "uppercase", input: "CONFIRMED", expected: BookingStatusConfirmed},
		{name: "padded", input: " cancelled ", expected: BookingStatusCancelled},
		{name: "completed", input: "completed", expected: BookingStatusCompleted},
		{name: "unknown", input: "seated", expected: BookingStatusUnknown},
		{name: "empty", input: "", expected: BookingStatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeBookingStatus(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestBookingStatusIsActive(t *testing.T) {
	active := []BookingStatus{BookingStatusPending, BookingStatusConfirmed}
	for _, status := range active {
		if !status.IsActive() {
			t.Fatalf("expected %q to be active", status)
		}
	}
	inactive := []BookingStatus{BookingStatusCancelled, BookingStatusCompleted, BookingStatusUnknown}
	for _, status := range inactive {
		if status.IsActive() {
			t.Fatalf("expected %q to be inactive", status)
		}
	}
}

func TestParseOrderType(t *testing.T) {
	cases := []struct {
		input    string
		expected OrderType
		ok       bool
	}{
		{input: "takeaway", expected: OrderTypeTakeaway, ok: true},
		{input: "dine_in", expected: OrderTypeDineIn, ok: true},
		{input: "dine-in", expected: OrderTypeDineIn, ok: true},
		{input: "DELIVERY", expected: OrderTypeDelivery, ok: true},
		{input: "drive_through", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseOrderType(tc.input)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
