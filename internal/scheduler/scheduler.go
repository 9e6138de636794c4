package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"StockPulse/internal/analyzer"
	"StockPulse/internal/collector"
	"StockPulse/internal/export"
	"StockPulse/internal/model"
	"StockPulse/internal/notifier"
	"StockPulse/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the analysis pipeline on a cron schedule. Each run
// publishes its Report on the Reports channel; a dispatch goroutine
// consumes it and fans out to the notifier, recorder and CSV export, so
// "how often" stays decoupled from "what happens with a result".
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Ticker   string
	Horizon  model.Horizon
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Reports  chan *model.Report
	CSVPath  string // empty disables the export
	Ctx      context.Context

	mu   sync.Mutex
	last *model.Report
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, a *analyzer.Analyzer, ticker string, horizon model.Horizon,
	tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Ticker:   ticker,
		Horizon:  horizon,
		Notifier: tn,
		Recorder: rec,
		Reports:  make(chan *model.Report, 1),
		Ctx:      ctx,
	}
}

// Register schedules the periodic analysis task.
func (s *Scheduler) Register(analysisCron string) error {
	if _, err := s.Cron.AddFunc(analysisCron, s.runAnalysis); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler and the report dispatcher.
func (s *Scheduler) Start() {
	go s.dispatch()
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully. In-flight runs finish; the
// dispatcher exits with the context.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the analysis task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.runAnalysis()
}

// Last returns the most recent report, nil before the first successful run.
func (s *Scheduler) Last() *model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) runAnalysis() {
	log.Printf("[INFO] running analysis for %s (%s)", s.Ticker, s.Horizon)
	report, err := s.Analyzer.Analyze(s.Ticker, s.Horizon)
	if err != nil {
		s.handleFailure(err)
		return
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	select {
	case s.Reports <- report:
	case <-s.Ctx.Done():
	}
}

func (s *Scheduler) dispatch() {
	for {
		select {
		case <-s.Ctx.Done():
			return
		case report := <-s.Reports:
			s.deliver(report)
		}
	}
}

func (s *Scheduler) deliver(report *model.Report) {
	s.trySend(notifier.FormatReport(report))

	if err := s.Recorder.RecordSnapshot(recorder.SnapshotFromReport(report)); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}

	if s.CSVPath != "" {
		if err := export.SaveCSV(s.CSVPath, report); err != nil {
			log.Printf("[ERROR] csv export: %v", err)
		}
	}
}

func (s *Scheduler) handleFailure(err error) {
	log.Printf("[ERROR] analysis: %v", err)

	kind := "unknown"
	var fe *collector.FetchError
	if errors.As(err, &fe) {
		kind = fe.Kind.String()
	}
	if recErr := s.Recorder.RecordFailure(&recorder.Failure{
		Ticker:  s.Ticker,
		Horizon: string(s.Horizon),
		Kind:    kind,
		Message: err.Error(),
	}); recErr != nil {
		log.Printf("[ERROR] record failure: %v", recErr)
	}

	s.trySend(notifier.FormatFailure(s.Ticker, s.Horizon, err))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "查看最新信号", "/last":
		report := s.Last()
		if report == nil {
			return "暂无分析结果，请先执行 /now"
		}
		return notifier.FormatReport(report)
	case "立即分析", "/now":
		go s.RunNow()
		return "分析已触发，稍后推送结果"
	case "导出路径", "/csv":
		if s.CSVPath == "" {
			return "未配置 CSV 导出"
		}
		return fmt.Sprintf("CSV 导出路径: %s", s.CSVPath)
	default:
		return "可用命令:\n• /now 立即分析\n• /last 查看最新信号\n• /csv 查看导出路径"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
