package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"

	"cocina/db"
	"cocina/models"
	"cocina/mq"
	"cocina/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const categoriesKey = "categories"

// LoadTagList reads the shared category list, falling back to the seed
// list when none is stored yet.
func LoadTagList(ctx context.Context) ([]string, error) {
	var doc models.TagList
	err := db.SettingsCollection.FindOne(ctx, bson.M{"key": categoriesKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return slices.Clone(DefaultCategories), nil
	}
	if err != nil {
		return nil, err
	}
	if doc.List == nil {
		return slices.Clone(DefaultCategories), nil
	}
	return doc.List, nil
}

func saveTagList(ctx context.Context, list []string) error {
	_, err := db.SettingsCollection.UpdateOne(
		ctx,
		bson.M{"key": categoriesKey},
		bson.M{"$set": bson.M{"key": categoriesKey, "list": list}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetTags returns the shared category list.
func GetTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := LoadTagList(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, models.TagList{List: list})
}

// CreateTag appends a tag to the shared list. Blank input is refused as a
// silent no-op, matching the tablet behavior.
func CreateTag(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	list, err := LoadTagList(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	updated := AddTag(list, body.Tag)
	if len(updated) == len(list) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := saveTagList(r.Context(), updated); err != nil {
		http.Error(w, "Failed to save tags", http.StatusInternalServerError)
		return
	}

	mq.Emit(r.Context(), mq.Change{Collection: "settings", Method: "PUT", EntityID: categoriesKey})
	utils.RespondWithJSON(w, http.StatusOK, models.TagList{List: updated})
}

// DeleteTag removes every occurrence of a tag from the shared list.
// Recipes still carrying the tag keep it as an orphan.
func DeleteTag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tag := ps.ByName("tag")

	list, err := LoadTagList(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	updated := RemoveTag(list, tag)
	if err := saveTagList(r.Context(), updated); err != nil {
		http.Error(w, "Failed to save tags", http.StatusInternalServerError)
		return
	}

	mq.Emit(r.Context(), mq.Change{Collection: "settings", Method: "DELETE", EntityID: categoriesKey})
	utils.RespondWithJSON(w, http.StatusOK, models.TagList{List: updated})
}
