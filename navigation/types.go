package navigation

import internalnavigation "github.com/draftforge/go-sitegen/internal/navigation"

// Item is one resolved navigation menu entry.
type Item = internalnavigation.Item

// Resolve derives the navigation menu from pages plus an optional config.
var Resolve = internalnavigation.Resolve
