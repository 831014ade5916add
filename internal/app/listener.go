// internal/app/listener.go
package app

import (
	"go.uber.org/zap"

	"go-path-defense/internal/event"
)

// GameEventListener writes game events to the log.
type GameEventListener struct {
	log *zap.Logger
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveData:
		fields := []zap.Field{zap.Int("wave", data.Wave)}
		if e.Type == event.WaveEnded {
			fields = append(fields, zap.Int("bonus", data.Bonus))
		}
		l.log.Info(string(e.Type), fields...)
	case event.EnemyData:
		l.log.Debug(string(e.Type),
			zap.Uint64("enemy", uint64(data.ID)),
			zap.Int("tier", data.Tier),
			zap.Int("gold", data.Gold),
			zap.Int("loss", data.Loss),
		)
	case event.TurretData:
		fields := []zap.Field{
			zap.Int("x", data.X),
			zap.Int("y", data.Y),
			zap.Stringer("archetype", data.Archetype),
			zap.Int("gold", data.Gold),
		}
		if e.Type == event.TurretUpgraded {
			fields = append(fields, zap.Stringer("upgrade", data.Upgrade))
		}
		l.log.Debug(string(e.Type), fields...)
	default:
		l.log.Info(string(e.Type), zap.Any("data", e.Data))
	}
}
