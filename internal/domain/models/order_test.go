package models

import "testing"

func TestParsePaymentStatus(t *testing.T) {
	cases := []struct {
		in   string
		want PaymentStatus
		ok   bool
	}{
		{"unpaid", PaymentUnpaid, true},
		{"paid", PaymentPaid, true},
		{"manual", PaymentManual, true},
		{" PAID ", PaymentPaid, true},
		{"Manual", PaymentManual, true},
		{"refunded", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParsePaymentStatus(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePaymentStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
