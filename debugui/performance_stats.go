package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

// FrameHistory is a fixed ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

// Push records one frame time.
func (fh *FrameHistory) Push(ms float32) {
	fh.samples[fh.index] = ms
	fh.index = (fh.index + 1) % len(fh.samples)
	fh.filled = min(fh.filled+1, len(fh.samples))
}

// Average is the mean of the recorded samples, or 0 when none are recorded.
func (fh *FrameHistory) Average() float32 {
	if fh.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range fh.samples[:fh.filled] {
		sum += s
	}
	return sum / float32(fh.filled)
}

// Samples returns the backing ring.
func (fh *FrameHistory) Samples() []float32 {
	return fh.samples
}

// PerformancePanel plots frame times and scheduler system timings.
type PerformancePanel struct {
	scheduler *clock.Scheduler
	history   *FrameHistory
}

func NewPerformancePanel(scheduler *clock.Scheduler, historyFrames int) *PerformancePanel {
	return &PerformancePanel{
		scheduler: scheduler,
		history:   NewFrameHistory(historyFrames),
	}
}

func (pp *PerformancePanel) Render(frame *clock.Frame, _ *engine.Snapshot) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pp.history.Push(float32(frame.DeltaTime.Seconds() * 1000.0))

	avgFrameTime := pp.history.Average()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Frame: %d", frame.Index))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := pp.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if pp.scheduler != nil && imgui.TreeNodeStr("System Timings") {
		stats := pp.scheduler.GetStats()

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
