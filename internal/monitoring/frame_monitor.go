package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// lowFPSThreshold is the frame rate below which an alert is raised.
const lowFPSThreshold = 30

// FrameMonitor tracks render pass timing and wall counts
type FrameMonitor struct {
	// Frame metrics
	frameCount     atomic.Uint64
	frameTime      atomic.Uint64 // nanoseconds, last frame
	totalFrameTime atomic.Uint64 // nanoseconds

	// Rendering metrics
	buildTime   atomic.Uint64 // nanoseconds spent building draw commands, last frame
	wallsDrawn  atomic.Int32
	wallsCulled atomic.Int32

	mutex     sync.RWMutex
	startTime time.Time
}

// NewFrameMonitor creates a new frame monitor
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{startTime: time.Now()}
}

// FrameTimer measures one frame
type FrameTimer struct {
	monitor   *FrameMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (fm *FrameMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   fm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.recordFrameTime(time.Since(ft.startTime))
}

func (fm *FrameMonitor) recordFrameTime(d time.Duration) {
	ns := uint64(d.Nanoseconds())
	fm.frameTime.Store(ns)
	fm.totalFrameTime.Add(ns)
	fm.frameCount.Add(1)
}

// RecordWalls stores the wall counts of the last frame.
func (fm *FrameMonitor) RecordWalls(drawn, culled int) {
	fm.wallsDrawn.Store(int32(drawn))
	fm.wallsCulled.Store(int32(culled))
}

// Measure runs fn and records its duration as the frame build time.
func (fm *FrameMonitor) Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	fm.buildTime.Store(uint64(d.Nanoseconds()))
	return d
}

// FrameMetrics is a snapshot of the monitor
type FrameMetrics struct {
	FrameCount       uint64
	FramesPerSecond  float64
	LastFrameTime    time.Duration
	AverageFrameTime time.Duration
	BuildTime        time.Duration
	WallsDrawn       int
	WallsCulled      int
	MemoryUsageMB    uint64
	Uptime           time.Duration
}

// GetCurrentMetrics returns current metrics
func (fm *FrameMonitor) GetCurrentMetrics() FrameMetrics {
	fm.mutex.RLock()
	defer fm.mutex.RUnlock()

	frameTime := fm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	var avg time.Duration
	if count := fm.frameCount.Load(); count > 0 {
		avg = time.Duration(fm.totalFrameTime.Load() / count)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return FrameMetrics{
		FrameCount:       fm.frameCount.Load(),
		FramesPerSecond:  fps,
		LastFrameTime:    time.Duration(frameTime),
		AverageFrameTime: avg,
		BuildTime:        time.Duration(fm.buildTime.Load()),
		WallsDrawn:       int(fm.wallsDrawn.Load()),
		WallsCulled:      int(fm.wallsCulled.Load()),
		MemoryUsageMB:    memStats.Alloc / 1024 / 1024,
		Uptime:           time.Since(fm.startTime),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts returns alerts for the last frame
func (fm *FrameMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	var alerts []PerformanceAlert

	frameTime := fm.frameTime.Load()
	if frameTime > 0 {
		fps := float64(time.Second) / float64(frameTime)
		if fps < lowFPSThreshold {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "Frame rate is below 30 FPS",
				Value:     fps,
				Threshold: lowFPSThreshold,
				Timestamp: time.Now(),
			})
		}
	}
	return alerts
}

// Reset resets all counters
func (fm *FrameMonitor) Reset() {
	fm.frameCount.Store(0)
	fm.frameTime.Store(0)
	fm.totalFrameTime.Store(0)
	fm.buildTime.Store(0)
	fm.wallsDrawn.Store(0)
	fm.wallsCulled.Store(0)

	fm.mutex.Lock()
	fm.startTime = time.Now()
	fm.mutex.Unlock()
}
