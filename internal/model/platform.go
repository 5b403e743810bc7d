package model

// Platform identifies a supported SNS platform.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists all supported platforms.
var Platforms = []Platform{PlatformTwitter, PlatformInstagram, PlatformTikTok}

// IsValid reports whether p is a supported platform.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformTwitter, PlatformInstagram, PlatformTikTok:
		return true
	}
	return false
}

// TrendCategory classifies trending topics.
type TrendCategory string

const (
	CategoryTech          TrendCategory = "tech"
	CategoryEntertainment TrendCategory = "entertainment"
	CategoryLifestyle     TrendCategory = "lifestyle"
	CategoryBusiness      TrendCategory = "business"
	CategorySports        TrendCategory = "sports"
	CategoryFashion       TrendCategory = "fashion"
	CategoryFood          TrendCategory = "food"
	CategoryTravel        TrendCategory = "travel"
)

// TrendCategories lists all supported trend categories.
var TrendCategories = []TrendCategory{
	CategoryTech, CategoryEntertainment, CategoryLifestyle, CategoryBusiness,
	CategorySports, CategoryFashion, CategoryFood, CategoryTravel,
}

// IsValid reports whether c is a supported category.
func (c TrendCategory) IsValid() bool {
	for _, v := range TrendCategories {
		if c == v {
			return true
		}
	}
	return false
}
