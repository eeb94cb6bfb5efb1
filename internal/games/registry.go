package games

import "sort"

// Info is the registered metadata for one game.
type Info struct {
	ID    string
	Title string
}

var registered = make(map[string]string)

// Register records a game's metadata. Called from each engine's init();
// panics on duplicates since that is a wiring bug.
func Register(id, title string) {
	if _, exists := registered[id]; exists {
		panic("games: " + id + " already registered")
	}
	registered[id] = title
}

// List returns all registered games sorted by ID.
func List() []Info {
	result := make([]Info, 0, len(registered))
	for id, title := range registered {
		result = append(result, Info{ID: id, Title: title})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	_, ok := registered[id]
	return ok
}

// Title returns the display name for an ID, or the ID itself when unknown.
func Title(id string) string {
	if t, ok := registered[id]; ok {
		return t
	}
	return id
}
