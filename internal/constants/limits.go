package constants

// Field length bounds, all inclusive. These back both the struct validation
// tags and the hand-written checks, so a bound changed here changes the
// contract everywhere.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20

	MinEmailLength = 5
	MaxEmailLength = 40

	MinPasswordLength = 8
	MaxPasswordLength = 50

	MinTitleLength = 5
	MaxTitleLength = 50

	MinDescriptionLength = 10
	MaxDescriptionLength = 500

	MinReviewLength = 5
	MaxReviewLength = 5000

	MinCollectionNameLength = 2
	MaxCollectionNameLength = 50
)

// Rating bounds for home reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// HomeTypes is the set of accepted home_type values, in the form the
// validator's oneof tag expects.
const HomeTypes = "house apartment condo cabin"

// HTTPSPrefix is required on every stored image URL.
const HTTPSPrefix = "https://"
