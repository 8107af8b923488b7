package tui

import (
	"context"
	"log"
	"time"

	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// NewEngine creates a new engine drawing on view
func NewEngine(view *View, logger *log.Logger, factory tetris.PieceFactory, options Options) *Engine {
	options.StartLevel = tetris.ClampLevel(options.StartLevel)
	origin := tetris.Coord{Row: 0, Col: SpawnColumn(options.SpawnColumn)}

	return &Engine{
		chanStop:     make(chan struct{}),
		chanEventKey: make(chan *tcell.EventKey, 8),
		chanResize:   make(chan struct{}, 1),
		logger:       logger,
		view:         view,
		game:         tetris.NewGame(factory, tetris.NewScorer(options.BaseScore, options.StartLevel), origin),
		ranking:      tetris.NewRanking(),
		options:      options,
		mode:         engineModeGameOver,
		tickTime:     time.Hour,
	}
}

// SpawnColumn clamps a spawn column so the widest shape fits on the board
func SpawnColumn(col int) int {
	return min(max(col, 0), tetris.BoardWidth-4)
}

// Run pumps terminal events and runs the game until the player quits or ctx ends
func (engine *Engine) Run(ctx context.Context) error {
	engine.logger.Println("Engine Run start")

	engine.timer = time.NewTimer(engine.tickTime)
	engine.timer.Stop()
	engine.NewGame()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		engine.pollEvents()
		return nil
	})
	group.Go(func() error {
		defer engine.view.screen.PostEvent(&eventStop{when: time.Now()})
		engine.loop(ctx)
		return nil
	})
	err := group.Wait()

	engine.logger.Println("Engine Run end")
	return err
}

// pollEvents forwards key and resize events to the engine loop
func (engine *Engine) pollEvents() {
	for {
		event := engine.view.screen.PollEvent()
		switch eventType := event.(type) {
		case nil, *eventStop:
			return
		case *tcell.EventKey:
			select {
			case engine.chanEventKey <- eventType:
			default:
			}
		case *tcell.EventResize:
			select {
			case engine.chanResize <- struct{}{}:
			default:
			}
		default:
			if engine.options.Debug {
				engine.logger.Printf("event type %T", eventType)
			}
		}
	}
}

func (engine *Engine) loop(ctx context.Context) {
	engine.view.RefreshScreen(engine)

	for {
		select {
		case <-ctx.Done():
			engine.Stop()
			return
		case <-engine.chanStop:
			return
		case eventKey := <-engine.chanEventKey:
			engine.ProcessEventKey(eventKey)
		case <-engine.timer.C:
			engine.tick()
		case <-engine.chanResize:
			engine.view.screen.Sync()
		}
		if engine.stopped {
			return
		}
		engine.view.RefreshScreen(engine)
	}
}

// Stop the game
func (engine *Engine) Stop() {
	if !engine.stopped {
		engine.stopped = true
		engine.mode = engineModeStopped
		close(engine.chanStop)
	}
	if engine.timer != nil {
		engine.timer.Stop()
	}
}

// Pause the game
func (engine *Engine) Pause() {
	engine.stopTimer()
	engine.mode = engineModePaused
}

// UnPause the game
func (engine *Engine) UnPause() {
	engine.ResetTimer()
	engine.mode = engineModeRun
}

// NewGame resets board and starts a new game
func (engine *Engine) NewGame() {
	engine.gameID = uuid.NewString()
	engine.games++
	engine.logger.Printf("Engine NewGame %s player %q level %d", engine.gameID, engine.options.Player, engine.options.StartLevel)

	engine.game.Start()
	engine.tickTime = tetris.TickTime(engine.game.Scorer().Level())

loop:
	for {
		select {
		case <-engine.chanEventKey:
		default:
			break loop
		}
	}

	engine.UnPause()
}

func (engine *Engine) stopTimer() {
	if engine.timer == nil {
		return
	}
	if !engine.timer.Stop() {
		select {
		case <-engine.timer.C:
		default:
		}
	}
}

// ResetTimer restarts the gravity timer with the current tick time
func (engine *Engine) ResetTimer() {
	if engine.timer == nil {
		return
	}
	engine.stopTimer()
	engine.timer.Reset(engine.tickTime)
}

// tick moves the piece down one row
func (engine *Engine) tick() {
	engine.apply(tetris.IntentSoftDrop)
	if engine.mode == engineModeRun {
		engine.ResetTimer()
	}
}

// apply runs an intent against the game and reacts to locks
func (engine *Engine) apply(intent tetris.Intent) {
	outcome := engine.game.Apply(intent)

	if outcome.Locked {
		if outcome.LinesCleared > 0 {
			engine.logger.Printf("game %s cleared %d lines, score %d", engine.gameID, outcome.LinesCleared, engine.game.Scorer().Score())
		}
		engine.tickTime = tetris.TickTime(engine.game.Scorer().Level())
		if intent != tetris.IntentSoftDrop {
			engine.ResetTimer()
		}
	}
	if outcome.GameOver {
		engine.GameOver()
	}
}

// GameOver pauses engine and sets to game over
func (engine *Engine) GameOver() {
	engine.logger.Printf("Engine GameOver %s score %d", engine.gameID, engine.game.Scorer().Score())

	engine.Pause()
	engine.mode = engineModeGameOver

	engine.view.ShowGameOverAnimation()

loop:
	for {
		select {
		case <-engine.chanEventKey:
		default:
			break loop
		}
	}

	engine.ranking.InsertScore(engine.options.Player, engine.game.Scorer().Score())
}

// Summary reports the session results
func (engine *Engine) Summary() *Summary {
	scorer := engine.game.Scorer()
	stats := engine.game.Stats()
	spawned := make(map[tetris.Shape]int)
	for _, shape := range tetris.Shapes() {
		spawned[shape] = stats.Count(shape)
	}
	return &Summary{
		Player:  engine.options.Player,
		Games:   engine.games,
		Score:   scorer.Score(),
		Lines:   scorer.Lines(),
		Level:   scorer.Level(),
		Spawned: spawned,
		Ranking: engine.ranking.Entries(),
	}
}
