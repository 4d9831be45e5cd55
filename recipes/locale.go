package recipes

import (
	"net/http"

	"cocina/models"
	"cocina/utils"

	"github.com/julienschmidt/httprouter"
)

// UI string tables for the tablet, keyed by language.
var Translations = map[string]map[string]string{
	"en": {
		"searchPlaceholder":  "Search recipes...",
		"all":                "All",
		"ingredients":        "Ingredients",
		"instructions":       "Instructions",
		"back":               "Back",
		"adminMode":          "Admin Mode",
		"enterPin":           "Enter Manager PIN",
		"addRecipe":          "Add Recipe",
		"editRecipe":         "Edit Recipe",
		"deleteRecipe":       "Delete Recipe",
		"title":              "Recipe Title",
		"category":           "Category",
		"save":               "Save Recipe",
		"cancel":             "Cancel",
		"confirmDelete":      "Are you sure you want to delete this?",
		"screenLockActive":   "Screen Kept On",
		"screenLockInactive": "Screen Normal",
		"manageTags":         "Manage Tags",
		"addTag":             "Add New Tag",
		"englishContent":     "English Content",
		"spanishContent":     "Spanish Content (Optional)",
		"fillBoth":           "Tip: Fill both tabs so the language toggle works for your staff!",
		"missingTrans":       "No Spanish translation available.",
		"noRecipes":          "No recipes found.",
		"expires":            "Use by",
	},
	"es": {
		"searchPlaceholder":  "Buscar recetas...",
		"all":                "Todos",
		"ingredients":        "Ingredientes",
		"instructions":       "Instrucciones",
		"back":               "Atrás",
		"adminMode":          "Modo Admin",
		"enterPin":           "Ingresar PIN de Gerente",
		"addRecipe":          "Agregar Receta",
		"editRecipe":         "Editar Receta",
		"deleteRecipe":       "Borrar Receta",
		"title":              "Título de la Receta",
		"category":           "Categoría",
		"save":               "Guardar Receta",
		"cancel":             "Cancelar",
		"confirmDelete":      "¿Estás seguro de borrar esto?",
		"screenLockActive":   "Pantalla Encendida",
		"screenLockInactive": "Pantalla Normal",
		"manageTags":         "Gestionar Etiquetas",
		"addTag":             "Agregar Etiqueta",
		"englishContent":     "Contenido en Inglés",
		"spanishContent":     "Contenido en Español (Opcional)",
		"fillBoth":           "Consejo: ¡Llene ambas pestañas para que el cambio de idioma funcione!",
		"missingTrans":       "Traducción no disponible.",
		"noRecipes":          "No se encontraron recetas.",
		"expires":            "Usar antes de",
	},
}

// UIStrings returns the string table for lang, defaulting to English for
// anything unrecognized.
func UIStrings(lang string) map[string]string {
	if t, ok := Translations[lang]; ok {
		return t
	}
	return Translations["en"]
}

// ResolveContent selects the ingredient and instruction text to display
// for a language. Spanish falls back through English and the untagged
// legacy fields to a localized placeholder; English falls back through the
// legacy fields to an empty string. Fallback reports whether a Spanish
// request was served non-Spanish text, so the tablet can show a note.
func ResolveContent(r models.Recipe, lang string) models.Content {
	if lang == "es" {
		return models.Content{
			Ingredients:  firstNonEmpty(r.IngredientsEs, r.IngredientsEn, r.Ingredients, Translations["es"]["missingTrans"]),
			Instructions: firstNonEmpty(r.InstructionsEs, r.InstructionsEn, r.Instructions, Translations["es"]["missingTrans"]),
			Fallback:     r.IngredientsEs == "",
		}
	}
	return models.Content{
		Ingredients:  firstNonEmpty(r.IngredientsEn, r.Ingredients, ""),
		Instructions: firstNonEmpty(r.InstructionsEn, r.Instructions, ""),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// GetUIStrings serves the string table for a language.
func GetUIStrings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, UIStrings(ps.ByName("lang")))
}
