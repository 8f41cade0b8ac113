package services

import (
	"context"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
)

// Ensure CategoryService implements the interface.
var _ driving.CategoryService = (*CategoryService)(nil)

// categories are the curated landing presets, in display order.
// Keyword lists are deliberately generous: they chase tag, cuisine and
// specialty vocabulary so a category still fills when contributors
// label places inconsistently.
var categories = []domain.Category{
	{
		Slug:        "bars",
		Emoji:       "🍻",
		Title:       "Best Bars - Nightlife & Drinks Guide",
		Heading:     "Best Bars",
		Description: "Top bars and nightlife spots, from craft cocktails to local beers.",
		Filters: domain.SearchFilters{
			Keywords: []string{"bar", "nightlife", "drinks", "cocktails", "beer", "wine"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "coffee-shops",
		Emoji:       "☕",
		Title:       "Best Coffee Shops - Cafes & Work Spaces",
		Heading:     "Best Coffee Shops & Cafes",
		Description: "Cozy cafes with specialty coffee, perfect for work or leisure.",
		Filters: domain.SearchFilters{
			Keywords: []string{"cafe", "coffee", "coffee-shop", "beverages", "tea"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "filipino-restaurants",
		Emoji:       "🇵🇭",
		Title:       "Best Filipino Restaurants - Authentic Local Cuisine",
		Heading:     "Best Filipino Restaurants",
		Description: "Authentic Filipino dishes, from classic adobo to modern fusion.",
		Filters: domain.SearchFilters{
			Keywords: []string{"filipino", "pinoy", "local", "traditional", "sisig", "adobo"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "japanese-restaurants",
		Emoji:       "🍣",
		Title:       "Best Japanese Restaurants - Ramen, Sushi & More",
		Heading:     "Best Japanese Restaurants",
		Description: "Authentic ramen, fresh sushi, katsu and donburi.",
		Filters: domain.SearchFilters{
			Keywords: []string{"japanese", "ramen", "sushi", "katsu", "donburi", "tempura"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "korean-restaurants",
		Emoji:       "🍜",
		Title:       "Best Korean Restaurants - Korean BBQ & K-Food",
		Heading:     "Best Korean Restaurants",
		Description: "Korean BBQ, bibimbap, fried chicken and more.",
		Filters: domain.SearchFilters{
			Keywords: []string{"korean", "samgyupsal", "korean-fried-chicken", "bibimbap", "kimchi"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "italian-restaurants",
		Emoji:       "🍝",
		Title:       "Best Italian Restaurants - Pizza, Pasta & More",
		Heading:     "Best Italian Restaurants",
		Description: "Wood-fired pizza, handmade pasta and classic Italian desserts.",
		Filters: domain.SearchFilters{
			Keywords: []string{"italian", "pizza", "pasta", "italian-american"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "pet-friendly",
		Emoji:       "🐾",
		Title:       "Pet-Friendly Restaurants - Dine with Your Pets",
		Heading:     "Pet-Friendly Restaurants",
		Description: "Cafes and restaurants where your furry friends are welcome.",
		Filters: domain.SearchFilters{
			Keywords: []string{"pet-friendly", "pet friendly", "dog-friendly", "cat-friendly", "pet-cafe"},
		},
		Type: domain.CategoryAmenity,
	},
	{
		Slug:        "wifi-cafes",
		Emoji:       "📶",
		Title:       "Best WiFi Cafes - Work & Study Friendly Spots",
		Heading:     "Best WiFi Cafes",
		Description: "Reliable internet, power outlets and comfortable seating.",
		Filters: domain.SearchFilters{
			Keywords: []string{"wifi", "work-friendly", "study-spot", "student-friendly", "power-outlets"},
		},
		Type: domain.CategoryAmenity,
	},
	{
		Slug:        "budget-eats",
		Emoji:       "💰",
		Title:       "Budget-Friendly Restaurants - Affordable Dining",
		Heading:     "Budget-Friendly Restaurants",
		Description: "Great food at wallet-friendly prices.",
		Filters: domain.SearchFilters{
			Keywords:    []string{"budget-friendly", "affordable", "cheap", "student-friendly"},
			PriceRanges: []domain.PriceRange{domain.PriceBudget},
		},
		Type: domain.CategoryPrice,
	},
	{
		Slug:        "late-night",
		Emoji:       "🌙",
		Title:       "Late Night Dining - Open Late Restaurants & Cafes",
		Heading:     "Late Night Dining",
		Description: "Midnight snacks and 24-hour dining for night owls.",
		Filters: domain.SearchFilters{
			Keywords: []string{"late-night", "24-hours", "24-hour", "open-late", "midnight"},
		},
		Type: domain.CategoryAmenity,
	},
	{
		Slug:        "pizza",
		Emoji:       "🍕",
		Title:       "Best Pizza Places - Wood-Fired & New York Style",
		Heading:     "Best Pizza Places",
		Description: "Authentic wood-fired pizzas, New York-style slices and specialty pies.",
		Filters: domain.SearchFilters{
			Keywords: []string{"pizza", "wood-fired", "pizzeria", "italian", "italian-american", "new-york-style"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "chinese-restaurants",
		Emoji:       "🥡",
		Title:       "Best Chinese Restaurants - Dim Sum & Cantonese",
		Heading:     "Best Chinese Restaurants",
		Description: "Dim sum, Cantonese cuisine and Chinese-Filipino favorites.",
		Filters: domain.SearchFilters{
			Keywords: []string{"chinese", "cantonese", "dim-sum", "chinese-filipino", "dumplings", "noodles"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "burger-joints",
		Emoji:       "🍔",
		Title:       "Best Burger Joints - Gourmet & Classic Burgers",
		Heading:     "Best Burger Joints",
		Description: "Gourmet creations and classic American-style patties.",
		Filters: domain.SearchFilters{
			Keywords: []string{"burgers", "burger", "american", "grill", "fries", "patty"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "breakfast-brunch",
		Emoji:       "🥪",
		Title:       "Best Breakfast & Brunch - All-Day Breakfast Spots",
		Heading:     "Best Breakfast & Brunch",
		Description: "All-day breakfast, pancakes, eggs and weekend brunch specials.",
		Filters: domain.SearchFilters{
			Keywords: []string{"breakfast", "brunch", "all-day-breakfast", "pancakes", "eggs", "morning"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "vietnamese-restaurants",
		Emoji:       "🍜",
		Title:       "Best Vietnamese Restaurants - Pho & Banh Mi",
		Heading:     "Best Vietnamese Restaurants",
		Description: "Pho noodle soups, banh mi sandwiches and spring rolls.",
		Filters: domain.SearchFilters{
			Keywords: []string{"vietnamese", "pho", "banh-mi", "spring-rolls", "noodles"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "mexican-restaurants",
		Emoji:       "🌮",
		Title:       "Best Mexican Restaurants - Tacos, Burritos & More",
		Heading:     "Best Mexican Restaurants",
		Description: "Street tacos, loaded burritos and Tex-Mex favorites.",
		Filters: domain.SearchFilters{
			Keywords: []string{"mexican", "tacos", "burritos", "tex-mex", "quesadillas", "nachos", "fajitas"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "thai-restaurants",
		Emoji:       "🍛",
		Title:       "Best Thai Restaurants - Curry, Pad Thai & More",
		Heading:     "Best Thai Restaurants",
		Description: "Fragrant curries, pad thai and Thai street food.",
		Filters: domain.SearchFilters{
			Keywords: []string{"thai", "curry", "pad-thai", "tom-yum", "thai-food", "spicy"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "desserts",
		Emoji:       "🍦",
		Title:       "Best Desserts & Ice Cream - Sweet Treats",
		Heading:     "Best Desserts & Ice Cream",
		Description: "Artisan gelato, cakes, pastries and frozen treats.",
		Filters: domain.SearchFilters{
			Keywords: []string{"dessert", "desserts", "ice-cream", "gelato", "cakes", "pastries", "sweet"},
		},
		Type: domain.CategoryCuisine,
	},
	{
		Slug:        "romantic-date-spots",
		Emoji:       "💑",
		Title:       "Best Romantic Date Spots - Couples Dining",
		Heading:     "Best Romantic Date Spots",
		Description: "Intimate restaurants and cozy cafes for date nights.",
		Filters: domain.SearchFilters{
			Keywords: []string{"date-spot", "date spot", "romantic", "intimate", "cozy", "couples"},
		},
		Type: domain.CategoryExperience,
	},
	{
		Slug:        "vegetarian-vegan",
		Emoji:       "🥗",
		Title:       "Best Vegetarian & Vegan Restaurants - Plant-Based Dining",
		Heading:     "Best Vegetarian & Vegan Restaurants",
		Description: "Plant-based meals and healthy meat-free options.",
		Filters: domain.SearchFilters{
			Keywords: []string{"vegetarian", "vegan", "plant-based", "vegetarian-options", "healthy", "organic"},
		},
		Type: domain.CategoryExperience,
	},
	{
		Slug:        "family-friendly",
		Emoji:       "👨‍👩‍👧‍👦",
		Title:       "Best Family-Friendly Restaurants - Kid-Friendly Dining",
		Heading:     "Best Family-Friendly Restaurants",
		Description: "Welcoming spots with spacious seating and kid-friendly menus.",
		Filters: domain.SearchFilters{
			Keywords: []string{"family-friendly", "family-dining", "family friendly", "group-friendly", "kids"},
		},
		Type: domain.CategoryExperience,
	},
	{
		Slug:        "instagram-worthy",
		Emoji:       "📸",
		Title:       "Instagram-Worthy Spots - Aesthetic Cafes & Restaurants",
		Heading:     "Instagram-Worthy Spots",
		Description: "Aesthetic interiors and photo-worthy dishes for your feed.",
		Filters: domain.SearchFilters{
			Keywords: []string{"instagram-worthy", "instagrammable", "aesthetic", "photo-spots", "trendy"},
		},
		Type: domain.CategoryExperience,
	},
	{
		Slug:        "outdoor-seating",
		Emoji:       "🌳",
		Title:       "Restaurants with Outdoor Seating - Al Fresco Dining",
		Heading:     "Restaurants with Outdoor Seating",
		Description: "Garden patios and al fresco dining areas.",
		Filters: domain.SearchFilters{
			Keywords: []string{"outdoor-seating", "outdoor-dining", "garden-setting", "al-fresco", "patio"},
		},
		Type: domain.CategoryAmenity,
	},
	{
		Slug:        "group-dining",
		Emoji:       "🎉",
		Title:       "Best Group Dining - Party Venues & Large Groups",
		Heading:     "Best Group Dining",
		Description: "Spacious spots with party packages for celebrations and gatherings.",
		Filters: domain.SearchFilters{
			Keywords: []string{"group-friendly", "group friendly", "group-dining", "party", "party-packages", "celebrations"},
		},
		Type: domain.CategoryExperience,
	},
	{
		Slug:        "fried-chicken",
		Emoji:       "🍗",
		Title:       "Best Fried Chicken - Korean & American Style",
		Heading:     "Best Fried Chicken",
		Description: "Korean-style glazed chicken and classic American wings.",
		Filters: domain.SearchFilters{
			Keywords: []string{"fried-chicken", "korean-fried-chicken", "chicken", "wings", "chicken-wings", "crispy"},
		},
		Type: domain.CategoryCuisine,
	},
}

// CategoryService exposes the curated landing presets and runs them
// through the search engine.
type CategoryService struct {
	search driving.SearchService
}

// NewCategoryService creates a new category service.
func NewCategoryService(search driving.SearchService) *CategoryService {
	return &CategoryService{search: search}
}

// All returns every category in declaration order.
func (s *CategoryService) All() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

// GetBySlug resolves a category slug.
func (s *CategoryService) GetBySlug(slug string) (*domain.Category, error) {
	for i := range categories {
		if categories[i].Slug == slug {
			c := categories[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Slugs returns all category slugs in declaration order.
func (s *CategoryService) Slugs() []string {
	slugs := make([]string, len(categories))
	for i := range categories {
		slugs[i] = categories[i].Slug
	}
	return slugs
}

// IsValid reports whether a slug names a known category.
func (s *CategoryService) IsValid(slug string) bool {
	_, err := s.GetBySlug(slug)
	return err == nil
}

// Places runs the category's preset filters through the search engine.
func (s *CategoryService) Places(ctx context.Context, slug string) (*domain.SearchResult, error) {
	category, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.search.Search(ctx, category.Filters)
}
