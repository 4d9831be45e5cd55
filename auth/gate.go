package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// The manager PIN shipped with the tablet install. Used only when no
// ADMIN_PIN_HASH is configured.
const DefaultPIN = "1234"

type GateState int

const (
	Locked GateState = iota
	Unlocked
)

// Gate guards mutation access behind the manager PIN. Two states, never
// persisted: a fresh process always starts locked. A wrong PIN leaves the
// state unchanged; there is no lockout or rate limiting here (the HTTP
// layer rate-limits unlock attempts).
type Gate struct {
	mu      sync.Mutex
	state   GateState
	pinHash []byte
}

func NewGate(pinHash []byte) *Gate {
	return &Gate{state: Locked, pinHash: pinHash}
}

// Submit attempts the locked -> unlocked transition. Returns true when the
// PIN matched and the gate is now unlocked.
func (g *Gate) Submit(pin string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := bcrypt.CompareHashAndPassword(g.pinHash, []byte(pin)); err != nil {
		return false
	}
	g.state = Unlocked
	return true
}

// Lock is the explicit admin relock action.
func (g *Gate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Locked
}

func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) IsUnlocked() bool {
	return g.State() == Unlocked
}
