package dreamkeep

import "fmt"

// Persisted key scheme. The string layout is load-bearing: it matches the
// layout existing stores were written with, so any change breaks them.
const (
	rowsQuantityKey = "rowsQuantity"
	favoriteKey     = "favoriteCreatureName"
	initializedKey  = "modelInitialized"
)

func descriptionKey(k int) string { return fmt.Sprintf("description%d", k) }
func creatureKey(k int) string { return fmt.Sprintf("creatureName%d", k) }
func countKey(k int) string { return fmt.Sprintf("numberOfCreatures%d", k) }
func setSizeKey(k int) string { return fmt.Sprintf("sizeOfSet%d", k) }

// effectKey addresses the j-th effect of item k, with j assigned over the
// set's resource names in lexicographic order.
func effectKey(k, j int) string { return fmt.Sprintf("DreamEffectsNamek=%dj=%d", k, j) }
