// Package secret keeps the account password out of plaintext form in
// process memory. The password is XORed with a pseudo-random pad so a
// casual memory dump does not show it; this is a deterrent, not a
// security boundary, and the pad is deliberately not crypto-grade.
package secret

import (
	"math/rand"
	"os"
	"time"

	"github.com/nace/gavel/internal/memutil"
)

// Keeper owns the password and its obfuscation pad. The zero value
// holds no secret. Not safe for concurrent use; the tool is
// single-threaded around it.
type Keeper struct {
	password   []byte
	pad        []byte
	obfuscated bool
	rng        *rand.Rand
}

// NewKeeper returns an empty Keeper.
func NewKeeper() *Keeper {
	return &Keeper{}
}

// rand returns the pad source, seeded once per Keeper from the
// process id and wall clock.
func (k *Keeper) rand() *rand.Rand {
	if k.rng == nil {
		k.rng = rand.New(rand.NewSource(int64(os.Getpid()) * time.Now().Unix()))
	}
	return k.rng
}

// Set stores a copy of password as the current secret, wiping any
// previous secret and pad first. The new secret starts in plaintext
// form.
func (k *Keeper) Set(password []byte) {
	k.Wipe()
	k.password = memutil.Dup(password)
}

// IsSet reports whether a secret is currently held.
func (k *Keeper) IsSet() bool { return k.password != nil }

// Obfuscated reports whether the secret is currently pad-XORed.
func (k *Keeper) Obfuscated() bool { return k.obfuscated }

// Bytes returns the secret in its current representation. Callers
// wanting plaintext must Reveal first and Obfuscate again after use.
// The slice is owned by the Keeper and valid until the next operation.
func (k *Keeper) Bytes() []byte { return k.password }

// String masks the secret for display.
func (k *Keeper) String() string { return "********" }

// Obfuscate XORs the secret with the pad, creating the pad on first
// use. No-op when already obfuscated or when no secret is set. The
// pad is generated at most once per secret and reused by later
// Obfuscate/Reveal cycles.
func (k *Keeper) Obfuscate() {
	if k.obfuscated || k.password == nil {
		return
	}
	if k.pad == nil {
		k.pad = make([]byte, len(k.password))
		rng := k.rand()
		for i := range k.pad {
			k.pad[i] = byte(rng.Int63())
		}
	}
	for i := range k.password {
		k.password[i] ^= k.pad[i]
	}
	k.obfuscated = true
}

// Reveal undoes Obfuscate. No-op when not obfuscated, when no secret
// is set, or when no pad exists (a secret that was never obfuscated
// has no pad, and that must never crash).
func (k *Keeper) Reveal() {
	if !k.obfuscated || k.password == nil || k.pad == nil {
		return
	}
	for i := range k.password {
		k.password[i] ^= k.pad[i]
	}
	k.obfuscated = false
}

// Wipe overwrites the secret and pad with fresh pseudo-random bytes
// and releases them. Random fill, not zeros: a scanner looking for
// zeroed regions next to interesting data finds nothing. Safe to call
// when no secret was ever set.
func (k *Keeper) Wipe() {
	if k.password != nil || k.pad != nil {
		rng := k.rand()
		for i := range k.password {
			k.password[i] = byte(rng.Int63())
		}
		for i := range k.pad {
			k.pad[i] = byte(rng.Int63())
		}
	}
	k.password = nil
	k.pad = nil
	k.obfuscated = false
}
