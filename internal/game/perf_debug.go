package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	perfLowFpsDuration = 3 * time.Second
	perfLogInterval    = 3 * time.Second
)

func (gl *GameLoop) maybeLogPerfDrop() {
	alerts := gl.game.monitor.CheckPerformanceAlerts()
	if len(alerts) == 0 {
		gl.game.perfLowFpsSince = time.Time{}
		gl.game.perfLastPerfLog = time.Time{}
		return
	}

	now := time.Now()
	if gl.game.perfLowFpsSince.IsZero() {
		gl.game.perfLowFpsSince = now
		return
	}

	if now.Sub(gl.game.perfLowFpsSince) < perfLowFpsDuration {
		return
	}

	if !gl.game.perfLastPerfLog.IsZero() && now.Sub(gl.game.perfLastPerfLog) < perfLogInterval {
		return
	}

	gl.game.perfLastPerfLog = now
	gl.logPerfSnapshot(alerts[0].Message)
}

func (gl *GameLoop) logPerfSnapshot(reason string) {
	m := gl.game.monitor.GetCurrentMetrics()
	fmt.Printf(
		"[PERF] %s | fps=%.1f tps=%.1f frame=%s avg=%s build=%s walls=%d culled=%d mem=%dMB\n",
		reason,
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		m.LastFrameTime,
		m.AverageFrameTime,
		m.BuildTime,
		m.WallsDrawn,
		m.WallsCulled,
		m.MemoryUsageMB,
	)
}
