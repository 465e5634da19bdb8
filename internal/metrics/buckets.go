// Package metrics computes the derived views over last year's visit log.
package metrics

// Bucket is a coarse spending category assigned via fixed lookup from the
// sheet's raw category label.
type Bucket string

// Spending buckets.
const (
	BucketFood      Bucket = "food-and-drink"
	BucketTransport Bucket = "transport"
	BucketCulture   Bucket = "culture"
	BucketLodging   Bucket = "lodging"
	BucketOther     Bucket = "other"
)

// bucketByCategory partitions the raw 종류 labels seen across sheet
// revisions. Labels absent from the map bucket to other.
var bucketByCategory = map[string]Bucket{
	"카페":   BucketFood,
	"식당":   BucketFood,
	"맛집":   BucketFood,
	"술집":   BucketFood,
	"디저트":  BucketFood,
	"빵집":   BucketFood,
	"시장":   BucketFood,
	"택시":   BucketTransport,
	"버스":   BucketTransport,
	"지하철":  BucketTransport,
	"기차":   BucketTransport,
	"교통":   BucketTransport,
	"영화":   BucketCulture,
	"영화제":  BucketCulture,
	"전시":   BucketCulture,
	"공연":   BucketCulture,
	"관광":   BucketCulture,
	"명소":   BucketCulture,
	"숙소":   BucketLodging,
	"호텔":   BucketLodging,
	"게스트하우스": BucketLodging,
}

// BucketFor looks up a raw category label.
func BucketFor(category string) Bucket {
	if b, ok := bucketByCategory[category]; ok {
		return b
	}
	return BucketOther
}
