package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json|world.yaml>...\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		fmt.Printf("Validating %s...\n", filename)
		warnings, err := validateFile(filename)
		for _, w := range warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Println("World file is valid!")
	}
	if failed {
		os.Exit(1)
	}
}

// validateFile loads a world file strictly and checks that its name matches the world id.
// Warnings do not fail validation.
func validateFile(filename string) ([]string, error) {
	baseName := filepath.Base(filename)
	if !world.IsWorldFile(baseName) {
		return nil, fmt.Errorf("world file must have .json, .yaml or .yml extension: %s", baseName)
	}

	name := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if !world.IsValidID(name) {
		return nil, fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., my_world.json, not my-world.json or MyWorld.json)", baseName)
	}

	w, err := world.Load(filename)
	if err != nil {
		return nil, err
	}
	if w.ID != name {
		return nil, fmt.Errorf("world id %q does not match filename %s", w.ID, baseName)
	}

	var warnings []string
	for _, id := range unreachableRooms(w) {
		warnings = append(warnings, fmt.Sprintf("room %q cannot be reached from %q", id, w.Start))
	}
	return warnings, nil
}

// unreachableRooms walks every exit, gated or not, from the start room.
func unreachableRooms(w *world.World) []world.RoomID {
	seen := map[world.RoomID]bool{w.Start: true}
	queue := []world.RoomID{w.Start}
	for len(queue) > 0 {
		r, err := w.Room(queue[0])
		queue = queue[1:]
		if err != nil {
			continue
		}
		for _, d := range r.ExitDirections() {
			to, _ := r.Exit(d)
			if !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
	}

	var out []world.RoomID
	for _, r := range w.Rooms {
		if !seen[r.ID] {
			out = append(out, r.ID)
		}
	}
	return out
}
