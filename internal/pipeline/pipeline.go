// Package pipeline orchestrates one request through the prompt-and-response
// flow: context build, prompt assembly, gateway call, sanitization or report
// validation, conversation update, persistence.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/AbhiSharma69/revenue-rescue/internal/conversation"
	"github.com/AbhiSharma69/revenue-rescue/internal/gemini"
	"github.com/AbhiSharma69/revenue-rescue/internal/metrics"
	"github.com/AbhiSharma69/revenue-rescue/internal/prompt"
	"github.com/AbhiSharma69/revenue-rescue/internal/report"
	"github.com/AbhiSharma69/revenue-rescue/internal/sanitize"
)

// Intent distinguishes the two request kinds. Each has its own in-flight
// flag; a chat request never blocks a report request or vice versa.
type Intent string

const (
	IntentChat   Intent = "chat"
	IntentReport Intent = "report"
)

var (
	ErrEmptyMessage = errors.New("message must not be empty")
	ErrNoDataset    = errors.New("no CSV data has been uploaded")
)

// Gateway is the single outbound integration point.
type Gateway interface {
	Generate(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (string, error)
}

type Pipeline struct {
	gw        Gateway
	store     conversation.Store
	logger    *slog.Logger
	chatCfg   gemini.GenerationConfig
	reportCfg gemini.GenerationConfig
	timeout   time.Duration

	chatInFlight   atomic.Bool
	reportInFlight atomic.Bool
}

func New(gw Gateway, store conversation.Store, chatCfg, reportCfg gemini.GenerationConfig, timeout time.Duration, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		gw:        gw,
		store:     store,
		logger:    logger,
		chatCfg:   chatCfg,
		reportCfg: reportCfg,
		timeout:   timeout,
	}
}

// InFlight reports whether a request of the given intent is outstanding.
// Advisory only: the UI disables its trigger control while true.
func (p *Pipeline) InFlight(intent Intent) bool {
	if intent == IntentReport {
		return p.reportInFlight.Load()
	}
	return p.chatInFlight.Load()
}

// Chat runs one conversational turn. The request lifecycle is
// idle → sending → succeeded|failed; a failure always appends a visible bot
// message before the error is returned, never a silent drop.
func (p *Pipeline) Chat(ctx context.Context, state *conversation.State, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	p.begin(IntentChat)
	defer p.end(IntentChat)

	history, ds := state.Snapshot()
	contextBlock := prompt.BuildContext(ds, history)
	fullPrompt := prompt.Conversational(contextBlock, message)

	state.Append(conversation.NewUserMessage(message))

	raw, err := p.generate(ctx, IntentChat, fullPrompt, p.chatCfg)
	if err != nil {
		p.fail(state, IntentChat, err)
		return "", err
	}

	text := sanitize.Clean(raw)
	state.Append(conversation.NewBotMessage(text))
	p.persist(state)

	metrics.RequestsTotal.WithLabelValues(string(IntentChat), "succeeded").Inc()
	p.logger.Info("chat turn complete", "prompt_len", len(fullPrompt), "response_len", len(text))
	return text, nil
}

// GenerateReport runs one report generation. Malformed or schema-invalid
// model output is recovered locally by substituting the fallback report; the
// caller only sees an error for validation-stage input problems or gateway
// failures.
func (p *Pipeline) GenerateReport(ctx context.Context, state *conversation.State) (*report.BusinessReport, error) {
	ds := state.Dataset()
	if ds == nil {
		return nil, ErrNoDataset
	}

	p.begin(IntentReport)
	defer p.end(IntentReport)

	fullPrompt := prompt.Report(ds)

	raw, err := p.generate(ctx, IntentReport, fullPrompt, p.reportCfg)
	if err != nil {
		p.fail(state, IntentReport, err)
		return nil, err
	}

	rep, perr := report.Parse(raw)
	if perr != nil {
		// All-or-nothing: discard the payload and hand the UI a complete
		// fallback report instead of a partial one.
		p.logger.Warn("report payload rejected, substituting fallback", "error", perr)
		metrics.FallbackReports.Inc()
		rep = report.Fallback()
	}

	state.Append(conversation.NewReportMessage(rep))
	p.persist(state)

	metrics.RequestsTotal.WithLabelValues(string(IntentReport), "succeeded").Inc()
	return rep, nil
}

func (p *Pipeline) generate(ctx context.Context, intent Intent, fullPrompt string, cfg gemini.GenerationConfig) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := p.gw.Generate(ctx, fullPrompt, cfg)
	metrics.UpstreamDuration.WithLabelValues(string(intent)).Observe(time.Since(start).Seconds())
	return raw, err
}

// fail records the terminal failed state and appends the user-visible error
// message to the conversation.
func (p *Pipeline) fail(state *conversation.State, intent Intent, err error) {
	metrics.RequestsTotal.WithLabelValues(string(intent), "failed").Inc()
	p.logger.Error("generation failed", "intent", string(intent), "error", err)
	state.Append(conversation.NewBotMessage(UserMessage(err)))
	p.persist(state)
}

func (p *Pipeline) begin(intent Intent) {
	if intent == IntentReport {
		p.reportInFlight.Store(true)
	} else {
		p.chatInFlight.Store(true)
	}
	metrics.RequestsInFlight.WithLabelValues(string(intent)).Inc()
}

func (p *Pipeline) end(intent Intent) {
	if intent == IntentReport {
		p.reportInFlight.Store(false)
	} else {
		p.chatInFlight.Store(false)
	}
	metrics.RequestsInFlight.WithLabelValues(string(intent)).Dec()
}

// persist writes the conversation and dataset after each mutation.
// Fire-and-forget: a write failure is logged, never surfaced to the caller.
func (p *Pipeline) persist(state *conversation.State) {
	if p.store == nil {
		return
	}
	msgs, ds := state.Snapshot()
	if err := p.store.SaveConversation(msgs); err != nil {
		p.logger.Warn("failed to persist conversation", "error", err)
	}
	if ds != nil {
		if err := p.store.SaveDataset(ds); err != nil {
			p.logger.Warn("failed to persist dataset", "error", err)
		}
	}
}
