package models

// Recipe is a stored recipe document. The category representation changed
// shape across schema generations: older documents carry only the scalar
// Category, newer ones carry the ordered Categories list with Category
// mirroring its first element. Decoding tolerates either; recipes.Normalize
// is the single entry point that reconciles them.
type Recipe struct {
	RecipeID string `json:"recipeid" bson:"recipeid,omitempty"`
	UserID   string `json:"userId,omitempty" bson:"userId,omitempty"`
	Title    string `json:"title" bson:"title"`

	Category   string   `json:"category" bson:"category,omitempty"`
	Categories []string `json:"categories" bson:"categories,omitempty"`

	IngredientsEn  string `json:"ingredientsEn" bson:"ingredientsEn,omitempty"`
	InstructionsEn string `json:"instructionsEn" bson:"instructionsEn,omitempty"`
	IngredientsEs  string `json:"ingredientsEs" bson:"ingredientsEs,omitempty"`
	InstructionsEs string `json:"instructionsEs" bson:"instructionsEs,omitempty"`

	// Untagged fields from the first schema generation, treated as English.
	Ingredients  string `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Instructions string `json:"instructions,omitempty" bson:"instructions,omitempty"`

	Yield     string   `json:"yield,omitempty" bson:"yield,omitempty"`
	ShelfLife string   `json:"shelfLife,omitempty" bson:"shelfLife,omitempty"`
	Allergens []string `json:"allergens,omitempty" bson:"allergens,omitempty"`

	ImageURL string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	ThumbURL string `json:"thumbUrl,omitempty" bson:"thumbUrl,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Content is the display text for one recipe in one language.
type Content struct {
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	// Fallback is set when Spanish was requested but no Spanish text exists.
	Fallback bool `json:"fallback"`
}

// RecipeView is a recipe with its content already resolved for a language.
type RecipeView struct {
	Recipe
	Resolved Content `json:"resolved"`
}

// TagList is the shared category list settings document.
type TagList struct {
	List []string `json:"list" bson:"list"`
}
