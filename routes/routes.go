package routes

import (
	"net/http"

	"cocina/auth"
	"cocina/middleware"
	"cocina/ratelim"
	"cocina/recipes"
	"cocina/settings"
	syncws "cocina/sync"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/recipepic/*filepath", http.Dir("static/recipepic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/anon", rl.Limit(auth.AnonSignIn))
	router.POST("/api/auth/unlock", rl.Limit(middleware.Authenticate(auth.UnlockAdmin)))
	router.POST("/api/auth/lock", middleware.RequireAdmin(auth.LockAdmin))
}

func AddRecipeRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/recipes", recipes.GetRecipes)
	router.GET("/api/recipes/:id", recipes.GetRecipe)
	router.GET("/api/recipes/:id/expiry", recipes.GetRecipeExpiry)
	router.GET("/api/recipes/:id/card", recipes.PrintRecipeCard)
	router.POST("/api/recipes", rl.Limit(middleware.RequireAdmin(recipes.CreateRecipe)))
	router.PUT("/api/recipes/:id", rl.Limit(middleware.RequireAdmin(recipes.UpdateRecipe)))
	router.PATCH("/api/recipes/:id/categories/:cat", rl.Limit(middleware.RequireAdmin(recipes.ToggleRecipeCategory)))
	router.DELETE("/api/recipes/:id", rl.Limit(middleware.RequireAdmin(recipes.DeleteRecipe)))
}

func AddTagRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/tags", settings.GetTags)
	router.POST("/api/tags", rl.Limit(middleware.RequireAdmin(settings.CreateTag)))
	router.DELETE("/api/tags/:tag", rl.Limit(middleware.RequireAdmin(settings.DeleteTag)))
}

func AddI18nRoutes(router *httprouter.Router) {
	router.GET("/api/i18n/:lang", recipes.GetUIStrings)
}

func AddSyncRoutes(router *httprouter.Router, hub *syncws.Hub) {
	router.GET("/ws/sync", middleware.Authenticate(syncws.WebSocketHandler(hub)))
}
