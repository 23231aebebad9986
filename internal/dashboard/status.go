package dashboard

// BucketKind enumerates the dashboard's order status buckets.
type BucketKind int

const (
	BucketDelivered BucketKind = iota
	BucketProcessing
	BucketPending
	BucketCancelled
	BucketUnmapped
)

// Bucket classifies an order status for the status distribution chart.
// Statuses outside the four charted values (e.g. "confirmed", "preparing",
// "out_for_delivery") land in BucketUnmapped with the raw value retained.
type Bucket struct {
	Kind BucketKind
	Raw  string
}

// BucketOf maps an order status string to its chart bucket. It never fails;
// unknown statuses are classified, not rejected.
func BucketOf(status string) Bucket {
	switch status {
	case "delivered":
		return Bucket{Kind: BucketDelivered, Raw: status}
	case "processing":
		return Bucket{Kind: BucketProcessing, Raw: status}
	case "pending":
		return Bucket{Kind: BucketPending, Raw: status}
	case "cancelled":
		return Bucket{Kind: BucketCancelled, Raw: status}
	default:
		return Bucket{Kind: BucketUnmapped, Raw: status}
	}
}

func (k BucketKind) String() string {
	switch k {
	case BucketDelivered:
		return "delivered"
	case BucketProcessing:
		return "processing"
	case BucketPending:
		return "pending"
	case BucketCancelled:
		return "cancelled"
	default:
		return "unmapped"
	}
}
