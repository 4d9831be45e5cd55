package recipes

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"cocina/db"
	"cocina/filemgr"
	"cocina/globals"
	"cocina/models"
	"cocina/mq"
	"cocina/rdx"
	"cocina/settings"
	"cocina/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const thumbWidth = 300

// GetRecipes returns the visible recipe set for the tablet: documents are
// normalized, filtered by title search and category, sorted, and resolved
// for the requested language.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := context.TODO()

	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	lang := r.URL.Query().Get("lang")

	cursor, err := db.RecipesCollection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var stored []models.Recipe
	if err = cursor.All(ctx, &stored); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	visible := Filter(NormalizeAll(stored), search, category)

	views := make([]models.RecipeView, 0, len(visible))
	for _, rec := range visible {
		rec.Allergens = SanitizeAllergens(rec.Allergens)
		views = append(views, models.RecipeView{Recipe: rec, Resolved: ResolveContent(rec, lang)})
	}

	utils.RespondWithJSON(w, http.StatusOK, views)
}

// GetRecipe returns one recipe, redis-cached.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	lang := r.URL.Query().Get("lang")

	rec, err := loadRecipe(context.TODO(), id)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	rec.Allergens = SanitizeAllergens(rec.Allergens)
	utils.RespondWithJSON(w, http.StatusOK, models.RecipeView{Recipe: rec, Resolved: ResolveContent(rec, lang)})
}

// GetRecipeExpiry computes the use-by date from the recipe's free-form
// shelf-life note. An unparsable note yields a null expiry, not an error.
func GetRecipeExpiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lang := r.URL.Query().Get("lang")

	rec, err := loadRecipe(context.TODO(), ps.ByName("id"))
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	formatted, ok := ExpiryDate(rec.ShelfLife, time.Now(), lang)
	resp := utils.M{"shelfLife": rec.ShelfLife, "expires": nil}
	if ok {
		resp["expires"] = formatted
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateRecipe saves a new recipe from the admin form. An empty title is
// refused as a silent no-op, matching the tablet behavior.
func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := context.TODO()

	if err := r.ParseMultipartForm(filemgr.MaxUploadSize); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	rec := recipeFromForm(r)
	rec.RecipeID = "r" + utils.GenerateRandomString(10)
	rec.Title = title
	if userID, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		rec.UserID = userID
	}
	rec.CreatedAt = time.Now().Unix()

	if len(rec.Categories) == 0 {
		rec.Categories = defaultCategorySelection(ctx)
		rec.Category = rec.Categories[0]
	}

	if err := attachPhoto(r, &rec); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	if _, err := db.RecipesCollection.InsertOne(ctx, rec); err != nil {
		http.Error(w, "DB insert failed", http.StatusInternalServerError)
		return
	}

	mq.Emit(ctx, mq.Change{Collection: "recipes", Method: "POST", EntityID: rec.RecipeID})
	utils.RespondWithJSON(w, http.StatusCreated, rec)
}

// UpdateRecipe overwrites an existing recipe's editable fields. The id and
// createdAt are preserved; updatedAt is stamped here.
func UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := context.TODO()
	id := ps.ByName("id")

	if err := r.ParseMultipartForm(filemgr.MaxUploadSize); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	rec := recipeFromForm(r)
	rec.Title = title

	if len(rec.Categories) == 0 {
		rec.Categories = defaultCategorySelection(ctx)
		rec.Category = rec.Categories[0]
	}

	updates := bson.M{
		"title":          rec.Title,
		"category":       rec.Category,
		"categories":     rec.Categories,
		"ingredientsEn":  rec.IngredientsEn,
		"instructionsEn": rec.InstructionsEn,
		"ingredientsEs":  rec.IngredientsEs,
		"instructionsEs": rec.InstructionsEs,
		"ingredients":    rec.Ingredients,
		"instructions":   rec.Instructions,
		"yield":          rec.Yield,
		"shelfLife":      rec.ShelfLife,
		"allergens":      rec.Allergens,
		"updatedAt":      time.Now().Unix(),
	}

	if err := attachPhoto(r, &rec); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}
	if rec.ImageURL != "" {
		updates["imageUrl"] = rec.ImageURL
		updates["thumbUrl"] = rec.ThumbURL
	}

	res, err := db.RecipesCollection.UpdateOne(ctx, bson.M{"recipeid": id}, bson.M{"$set": updates})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	if _, err := rdx.RdxDel("recipe:" + id); err != nil {
		log.Println("Cache invalidation failed for recipe", id)
	}

	mq.Emit(ctx, mq.Change{Collection: "recipes", Method: "PUT", EntityID: id})
	w.Write([]byte(`{"status":"updated"}`))
}

// ToggleRecipeCategory flips one category on a recipe's selection. The
// reconciler refuses to drop the sole remaining category, so the update is
// skipped when nothing changed.
func ToggleRecipeCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := context.TODO()
	id := ps.ByName("id")
	cat := ps.ByName("cat")

	var rec models.Recipe
	if err := db.RecipesCollection.FindOne(ctx, bson.M{"recipeid": id}).Decode(&rec); err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	rec = Normalize(rec)

	toggled := ToggleCategory(rec.Categories, cat)
	if slices.Equal(toggled, rec.Categories) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"categories": toggled})
		return
	}

	updates := bson.M{"categories": toggled, "category": toggled[0], "updatedAt": time.Now().Unix()}
	if _, err := db.RecipesCollection.UpdateOne(ctx, bson.M{"recipeid": id}, bson.M{"$set": updates}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if _, err := rdx.RdxDel("recipe:" + id); err != nil {
		log.Println("Cache invalidation failed for recipe", id)
	}

	mq.Emit(ctx, mq.Change{Collection: "recipes", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"categories": toggled})
}

// DeleteRecipe removes a recipe permanently. No soft delete.
func DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := context.TODO()
	id := ps.ByName("id")

	res, err := db.RecipesCollection.DeleteOne(ctx, bson.M{"recipeid": id})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	if _, err := rdx.RdxDel("recipe:" + id); err != nil {
		log.Println("Cache invalidation failed for recipe", id)
	}

	mq.Emit(ctx, mq.Change{Collection: "recipes", Method: "DELETE", EntityID: id})
	w.Write([]byte(`{"status":"deleted"}`))
}

// LoadAll reads and normalizes the whole collection. Used by the sync
// worker to build snapshot pushes.
func LoadAll(ctx context.Context) ([]models.Recipe, error) {
	cursor, err := db.RecipesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stored []models.Recipe
	if err = cursor.All(ctx, &stored); err != nil {
		return nil, err
	}
	return NormalizeAll(stored), nil
}

func loadRecipe(ctx context.Context, id string) (models.Recipe, error) {
	if cached, err := rdx.RdxGet("recipe:" + id); err == nil && cached != "" {
		var rec models.Recipe
		if err := json.Unmarshal([]byte(cached), &rec); err == nil {
			return rec, nil
		}
	}

	var rec models.Recipe
	err := db.RecipesCollection.FindOne(ctx, bson.M{"recipeid": id}).Decode(&rec)
	if err != nil {
		return models.Recipe{}, err
	}
	rec = Normalize(rec)

	if data, err := json.Marshal(rec); err == nil {
		if err := rdx.RdxSet("recipe:"+id, string(data)); err != nil {
			log.Println("Cache set failed for recipe", id, ":", err)
		}
	}
	return rec, nil
}

// recipeFromForm builds a recipe from the admin form, keeping the legacy
// untagged fields and the scalar category mirrored for older tablet builds.
func recipeFromForm(r *http.Request) models.Recipe {
	rec := models.Recipe{
		Title:          r.FormValue("title"),
		Categories:     splitCSV(r.FormValue("categories")),
		IngredientsEn:  r.FormValue("ingredientsEn"),
		InstructionsEn: r.FormValue("instructionsEn"),
		IngredientsEs:  r.FormValue("ingredientsEs"),
		InstructionsEs: r.FormValue("instructionsEs"),
		Yield:          r.FormValue("yield"),
		ShelfLife:      r.FormValue("shelfLife"),
		Allergens:      SanitizeAllergens(splitCSV(r.FormValue("allergens"))),
	}

	// legacy mirrors written on every save
	rec.Ingredients = rec.IngredientsEn
	rec.Instructions = rec.InstructionsEn
	if len(rec.Categories) > 0 {
		rec.Category = rec.Categories[0]
	}
	return rec
}

func defaultCategorySelection(ctx context.Context) []string {
	list, err := settings.LoadTagList(ctx)
	if err != nil || len(list) == 0 {
		list = settings.DefaultCategories
	}
	return []string{list[0]}
}

func attachPhoto(r *http.Request, rec *models.Recipe) error {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil
	}
	files := r.MultipartForm.File["photo"]
	if len(files) == 0 {
		return nil
	}

	file, err := files[0].Open()
	if err != nil {
		return err
	}
	defer file.Close()

	imgPath, thumbPath, err := filemgr.SaveImageWithThumb(file, files[0], thumbWidth)
	if err != nil {
		return err
	}

	rec.ImageURL = mq.ToPublicURL(imgPath)
	rec.ThumbURL = mq.ToPublicURL(thumbPath)
	return nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
