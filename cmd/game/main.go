// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/state"
	"go-path-defense/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := min(now.Sub(a.lastUpdateTime).Seconds(), a.maxDeltaTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", envOr("PATH_DEFENSE_CONFIG", "config/game.toml"), "TOML settings file")
	tablesPath := flag.String("tables", "", "YAML turret/enemy tables (built-in tables when empty)")
	seed := flag.Int64("seed", 0, "random seed, overrides the config when non-zero")
	play := flag.Bool("play", false, "skip the title screen")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	tables, err := loadTables(*tablesPath)
	if err != nil {
		return err
	}
	fonts, err := ui.LoadFonts()
	if err != nil {
		return err
	}

	if *pprofAddr != "" {
		go func() {
			log.Info("pprof listening", zap.String("addr", *pprofAddr))
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Warn("pprof stopped", zap.Error(err))
			}
		}()
	}

	sm := state.NewStateMachine()
	var newGame state.NewGameFunc
	newGame = func() (state.State, error) {
		opts := []app.Option{app.WithLogger(log)}
		if *seed != 0 {
			opts = append(opts, app.WithSeed(*seed))
		}
		g, err := app.NewGame(cfg, tables, opts...)
		if err != nil {
			return nil, err
		}
		return state.NewGameState(sm, g, tables, fonts, cfg.Economy.Lives, newGame, log), nil
	}

	if *play {
		st, err := newGame()
		if err != nil {
			return err
		}
		sm.SetState(st)
	} else {
		sm.SetState(state.NewMenuState(sm, "PATH DEFENSE", "", fonts.Large, fonts.Regular, newGame, log))
	}

	width := int(cfg.Field.Width) + ui.SidebarWidth
	height := int(cfg.Field.Height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Path Defense")
	log.Info("starting", zap.String("config", *configPath), zap.Int("width", width), zap.Int("height", height))
	return ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   cfg.Simulation.MaxDeltaTime,
		width:          width,
		height:         height,
	})
}

// loadConfig falls back to the defaults when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func loadTables(path string) (*defs.Tables, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.LoadTables(path)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
