package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"cocina/db"
	"cocina/globals"
	"cocina/middleware"
	"cocina/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

var pinHash []byte

func init() {
	if h := os.Getenv("ADMIN_PIN_HASH"); h != "" {
		pinHash = []byte(h)
		return
	}
	var err error
	pinHash, err = bcrypt.GenerateFromPassword([]byte(DefaultPIN), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash default PIN: %v", err)
	}
}

// Per-session gates, in memory only. Restart relocks everything.
var (
	gatesMu sync.Mutex
	gates   = make(map[string]*Gate)
)

// gateTTL matches the token lifetime; once the token is dead the gate
// entry has no caller left.
const gateTTL = 12 * time.Hour

func gateFor(userID string) *Gate {
	gatesMu.Lock()
	defer gatesMu.Unlock()
	if g, ok := gates[userID]; ok {
		return g
	}
	g := NewGate(pinHash)
	gates[userID] = g

	// Evict once the session expires so kiosk re-sign-ins don't pile up
	go evictGate(userID, gateTTL)

	return g
}

func evictGate(userID string, after time.Duration) {
	time.Sleep(after)
	gatesMu.Lock()
	delete(gates, userID)
	gatesMu.Unlock()
}

type session struct {
	UserID    string    `bson:"userid"`
	AppID     string    `bson:"appid"`
	CreatedAt time.Time `bson:"createdAt"`
}

// AnonSignIn issues an opaque viewer identity for a kiosk tablet. No
// credentials involved; the token only authorizes read access.
func AnonSignIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := "u" + utils.GenerateRandomString(10)

	tokenString, err := signToken(userID, []string{"viewer"})
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	_, err = db.SessionsCollection.InsertOne(context.TODO(), session{
		UserID:    userID,
		AppID:     globals.AppID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Println("Failed to record session:", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":  tokenString,
		"userid": userID,
	}, "Signed in", nil)
}

// UnlockAdmin checks the manager PIN and hands back an admin token. A wrong
// PIN leaves the gate locked and surfaces a rejection notice.
func UnlockAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	var body struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	gate := gateFor(userID)
	if !gate.Submit(body.PIN) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Incorrect PIN")
		return
	}

	tokenString, err := signToken(userID, []string{"viewer", "admin"})
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":  tokenString,
		"userid": userID,
	}, "Admin mode unlocked", nil)
}

// LockAdmin is the explicit relock action.
func LockAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	gateFor(userID).Lock()
	utils.SendResponse(w, http.StatusOK, map[string]string{"state": "locked"}, "Admin mode locked", nil)
}

func signToken(userID string, roles []string) (string, error) {
	claims := &middleware.Claims{
		UserID: userID,
		Role:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
