package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	istorage "github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main with an exit code, so deferred cleanup happens before the process exits.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(stderr)
	worldFlag := fs.String("world", "dunnet", "World to play: a world id or a path to a .json/.yaml world file")
	resume := fs.String("resume", "", "Resume a saved game by id")
	list := fs.Bool("saves", false, "List saved games and exit")
	plain := fs.Bool("plain", false, "Line mode instead of the full-screen UI")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	log, logFile, err := logger.SetupFile(cfg, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	defer logFile.Close()

	worlds := istorage.NewWorlds(cfg.DataDir, cfg.WorldCacheSize, cfg.WorldCacheTTL, log)
	saves, err := istorage.NewBoltStorage(cfg.BoltPath, worlds, log)
	if err != nil {
		fmt.Fprintf(stderr, "Could not open save file: %v\n", err)
		return 1
	}
	defer saves.Close()

	if *list {
		if err := listSaves(stdout, saves); err != nil {
			fmt.Fprintf(stderr, "Failed to list saves: %v\n", err)
			return 1
		}
		return 0
	}

	eng, opening, err := startGame(saves, *worldFlag, *resume, log)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	s := newSession(eng, saves, log)

	if *plain {
		if err := runPlain(stdin, stdout, s, opening); err != nil {
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(NewConsoleUI(s, opening),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	if s.finished {
		fmt.Fprintln(stdout, s.last)
	}
	return 0
}

// startGame builds the engine for a new game or a resumed save and returns the text to
// open the session with.
func startGame(saves *istorage.BoltStorage, worldArg, resume string, log *slog.Logger) (*engine.Engine, string, error) {
	ctx := context.Background()

	if resume == "" {
		w, err := loadWorld(ctx, saves.Worlds, worldArg)
		if err != nil {
			return nil, "", err
		}
		eng, err := engine.New(w, nil, log)
		if err != nil {
			return nil, "", err
		}
		log.Info("New game started", "game_id", eng.State().ID.String(), "world", w.ID)
		return eng, eng.Opening(), nil
	}

	id, err := uuid.Parse(resume)
	if err != nil {
		return nil, "", fmt.Errorf("invalid save id %q: %w", resume, err)
	}
	gs, err := saves.LoadGameState(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if gs == nil {
		return nil, "", fmt.Errorf("no saved game with id %s", id)
	}

	// A world given as a file path is needed again to resume; ids are looked up.
	arg := gs.World
	if world.IsWorldFile(worldArg) {
		arg = worldArg
	}
	w, err := loadWorld(ctx, saves.Worlds, arg)
	if err != nil {
		return nil, "", err
	}
	if w.ID != gs.World {
		return nil, "", fmt.Errorf("save %s belongs to world %q, not %q", id, gs.World, w.ID)
	}

	eng, err := engine.New(w, gs, log)
	if err != nil {
		return nil, "", fmt.Errorf("saved game %s is corrupt: %w", id, err)
	}
	log.Info("Game resumed", "game_id", id.String(), "world", w.ID)
	out, err := eng.ProcessCommand("look")
	if err != nil {
		return nil, "", err
	}
	return eng, "Resuming your game.\n\n" + out.Narration, nil
}

func loadWorld(ctx context.Context, worlds *istorage.Worlds, arg string) (*world.World, error) {
	if world.IsWorldFile(arg) {
		return world.Load(arg)
	}
	return worlds.GetWorld(ctx, arg)
}

func listSaves(out io.Writer, saves *istorage.BoltStorage) error {
	list, err := saves.ListGameStates(context.Background())
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No saved games.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWORLD\tLOCATION\tSCORE\tSAVED")
	for _, sg := range list {
		status := sg.UpdatedAt.Format("2006-01-02 15:04")
		if sg.GameOver {
			status += " (finished)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", sg.ID, sg.World, sg.Location, sg.Score, status)
	}
	return tw.Flush()
}
