package domain

// Bucket is one of the four ordered risk classes used for marker colouring.
type Bucket string

const (
	BucketVeryHigh Bucket = "very high"
	BucketHigh     Bucket = "high"
	BucketMedium   Bucket = "medium"
	BucketLow      Bucket = "low"
)

// Bucket lower bounds on the percentage scale.
const (
	VeryHighThreshold = 25.0
	HighThreshold     = 15.0
	MediumThreshold   = 5.0
)

// Buckets returns all buckets from highest to lowest risk.
func Buckets() []Bucket {
	return []Bucket{BucketVeryHigh, BucketHigh, BucketMedium, BucketLow}
}

// Classify maps a model probability (percent) to its bucket. Lower bounds are
// inclusive. Negative, >100 and NaN values are not special-cased; NaN fails
// every comparison and lands in BucketLow.
func Classify(p float64) Bucket {
	switch {
	case p >= VeryHighThreshold:
		return BucketVeryHigh
	case p >= HighThreshold:
		return BucketHigh
	case p >= MediumThreshold:
		return BucketMedium
	default:
		return BucketLow
	}
}

// Color is the marker colour name for the bucket. The names are valid both as
// CSS colours and as Leaflet.awesome-markers markerColor values.
func (b Bucket) Color() string {
	switch b {
	case BucketVeryHigh:
		return "darkred"
	case BucketHigh:
		return "orange"
	case BucketMedium:
		return "green"
	default:
		return "blue"
	}
}

// Range is the human-readable percentage range shown in the legend.
func (b Bucket) Range() string {
	switch b {
	case BucketVeryHigh:
		return "≥ 25%"
	case BucketHigh:
		return "15–24%"
	case BucketMedium:
		return "5–14%"
	default:
		return "< 5%"
	}
}

// Label is the Indonesian legend caption for the bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketVeryHigh:
		return "Sangat Tinggi"
	case BucketHigh:
		return "Tinggi"
	case BucketMedium:
		return "Sedang"
	default:
		return "Rendah"
	}
}
