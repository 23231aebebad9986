package dashboard

import "testing"

func TestBucketOfKnownStatuses(t *testing.T) {
	cases := map[string]BucketKind{
		"delivered":  BucketDelivered,
		"processing": BucketProcessing,
		"pending":    BucketPending,
		"cancelled":  BucketCancelled,
	}
	for status, want := range cases {
		b := BucketOf(status)
		if b.Kind != want {
			t.Errorf("BucketOf(%q).Kind = %v, want %v", status, b.Kind, want)
		}
		if b.Raw != status {
			t.Errorf("BucketOf(%q).Raw = %q, want %q", status, b.Raw, status)
		}
	}
}

func TestBucketOfUnmappedKeepsRawValue(t *testing.T) {
	for _, status := range []string{"confirmed", "preparing", "out_for_delivery", "Delivered", ""} {
		b := BucketOf(status)
		if b.Kind != BucketUnmapped {
			t.Errorf("BucketOf(%q).Kind = %v, want BucketUnmapped", status, b.Kind)
		}
		if b.Raw != status {
			t.Errorf("BucketOf(%q).Raw = %q, want raw value preserved", status, b.Raw)
		}
	}
}

func TestBucketKindString(t *testing.T) {
	if got := BucketDelivered.String(); got != "delivered" {
		t.Errorf("BucketDelivered.String() = %q", got)
	}
	if got := BucketUnmapped.String(); got != "unmapped" {
		t.Errorf("BucketUnmapped.String() = %q", got)
	}
}
