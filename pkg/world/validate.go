package world

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/jwebster45206/adventure-engine/pkg/conditionals"
)

// Integrity faults. These only occur while building a world and are fatal.
var (
	ErrInvalidWorld = errors.New("invalid world")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrDanglingExit = errors.New("exit to undefined room")
	ErrUnknownRoom  = errors.New("undefined room")
	ErrUnknownItem  = errors.New("undefined item")
)

var snakeIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("snake", func(fl validator.FieldLevel) bool {
		return snakeIDRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		return Direction(fl.Field().String()).IsValid()
	})
	return v
}

// IsValidID reports whether id is lowercase snake_case.
func IsValidID(id string) bool {
	return snakeIDRegex.MatchString(id)
}

// Validate checks the schema and every cross reference in the world and builds its
// lookup indexes. All problems are reported together.
func (w *World) Validate() error {
	var errs []error

	if err := validate.Struct(w); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("field %s failed %q", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err)
		}
	}

	w.index()
	errs = append(errs, w.checkIDs()...)
	errs = append(errs, w.checkRooms()...)
	errs = append(errs, w.checkPlacement()...)
	errs = append(errs, w.checkWinConditions()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidWorld, w.ID, errors.Join(errs...))
	}
	return nil
}

func (w *World) checkIDs() []error {
	var errs []error
	seenRooms := make(map[RoomID]bool, len(w.Rooms))
	for _, r := range w.Rooms {
		if seenRooms[r.ID] {
			errs = append(errs, fmt.Errorf("%w: room %q", ErrDuplicateID, r.ID))
		}
		seenRooms[r.ID] = true
	}
	seenItems := make(map[ItemID]bool, len(w.Items))
	for _, it := range w.Items {
		if seenItems[it.ID] {
			errs = append(errs, fmt.Errorf("%w: item %q", ErrDuplicateID, it.ID))
		}
		seenItems[it.ID] = true
	}
	return errs
}

func (w *World) checkRooms() []error {
	var errs []error
	if !w.HasRoom(w.Start) {
		errs = append(errs, fmt.Errorf("%w: start room %q", ErrUnknownRoom, w.Start))
	}
	for _, r := range w.Rooms {
		for dir, to := range r.Exits {
			if !w.HasRoom(to) {
				errs = append(errs, fmt.Errorf("%w: room %q exit %s -> %q", ErrDanglingExit, r.ID, dir, to))
			}
		}
		for dir := range r.Gates {
			if _, ok := r.Exits[dir]; !ok {
				errs = append(errs, fmt.Errorf("%w: room %q gates missing exit %s", ErrDanglingExit, r.ID, dir))
			}
		}
		if r.Dig == nil {
			continue
		}
		for _, id := range r.Dig.Reveals {
			it, ok := w.items[id]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: room %q dig reveals %q", ErrUnknownItem, r.ID, id))
				continue
			}
			if it.HiddenUntil != RevealDig {
				errs = append(errs, fmt.Errorf("room %q dig reveals %q which is not hidden until dig", r.ID, id))
			}
		}
	}
	return errs
}

// checkPlacement makes sure every item starts in exactly one place.
func (w *World) checkPlacement() []error {
	var errs []error
	placed := make(map[ItemID]string, len(w.Items))
	place := func(id ItemID, where string) {
		if !w.HasItem(id) {
			errs = append(errs, fmt.Errorf("%w: %q placed in %s", ErrUnknownItem, id, where))
			return
		}
		if prev, ok := placed[id]; ok {
			errs = append(errs, fmt.Errorf("item %q placed in both %s and %s", id, prev, where))
			return
		}
		placed[id] = where
	}
	for _, r := range w.Rooms {
		for _, id := range r.Items {
			place(id, "room "+string(r.ID))
		}
	}
	for _, id := range w.StartInventory {
		place(id, "the starting inventory")
	}
	for _, it := range w.Items {
		if _, ok := placed[it.ID]; !ok {
			errs = append(errs, fmt.Errorf("item %q has no starting place", it.ID))
		}
	}
	return errs
}

func (w *World) checkWinConditions() []error {
	var errs []error
	for _, wc := range w.WinConditions {
		errs = append(errs, w.checkWhen("win condition", wc.ID, wc.When)...)
	}
	seen := make(map[string]bool, len(w.Achievements))
	for _, a := range w.Achievements {
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%w: achievement %q", ErrDuplicateID, a.ID))
		}
		seen[a.ID] = true
		errs = append(errs, w.checkWhen("achievement", a.ID, a.When)...)
	}
	return errs
}

// checkWhen makes sure a clause names something and that every room and item it names exists.
func (w *World) checkWhen(kind, id string, when conditionals.ConditionalWhen) []error {
	var errs []error
	if when.IsEmpty() {
		errs = append(errs, fmt.Errorf("%s %q has an empty when clause", kind, id))
	}
	if when.Location != "" && !w.HasRoom(RoomID(when.Location)) {
		errs = append(errs, fmt.Errorf("%w: %s %q location %q", ErrUnknownRoom, kind, id, when.Location))
	}
	for _, room := range when.Visited {
		if !w.HasRoom(RoomID(room)) {
			errs = append(errs, fmt.Errorf("%w: %s %q visited %q", ErrUnknownRoom, kind, id, room))
		}
	}
	for _, item := range when.Items {
		if !w.HasItem(ItemID(item)) {
			errs = append(errs, fmt.Errorf("%w: %s %q item %q", ErrUnknownItem, kind, id, item))
		}
	}
	return errs
}
