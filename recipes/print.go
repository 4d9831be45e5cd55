package recipes

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cocina/mq"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// PrintRecipeCard renders a recipe as a printable PDF card with a QR deep
// link back to the recipe on the tablet. Language selection and fallback
// behave exactly like the on-screen view.
func PrintRecipeCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	lang := r.URL.Query().Get("lang")
	t := UIStrings(lang)

	rec, err := loadRecipe(context.TODO(), id)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	rec.Allergens = SanitizeAllergens(rec.Allergens)
	content := ResolveContent(rec, lang)

	deepLink := mq.ToPublicURL("/recipes/" + rec.RecipeID)
	qrPNG, err := qrcode.Encode(deepLink, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // accented Spanish text
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, tr(rec.Title))
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 11)
	pdf.Cell(0, 8, tr(strings.Join(rec.Categories, " / ")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	if rec.Yield != "" {
		pdf.Cell(0, 7, tr(fmt.Sprintf("Yield: %s", rec.Yield)))
		pdf.Ln(7)
	}
	if formatted, ok := ExpiryDate(rec.ShelfLife, time.Now(), lang); ok {
		pdf.Cell(0, 7, tr(fmt.Sprintf("%s: %s", t["expires"], formatted)))
		pdf.Ln(7)
	}
	if len(rec.Allergens) > 0 {
		pdf.Cell(0, 7, fmt.Sprintf("Allergens: %s", strings.Join(rec.Allergens, ", ")))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr(t["ingredients"]))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(content.Ingredients), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr(t["instructions"]))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(content.Instructions), "", "L", false)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=recipe-"+rec.RecipeID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
