// Package daemon provides the long-running reminder watcher service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/saveup-app/saveup/internal/ledger"
)

// Config controls the daemon runtime behavior.
type Config struct {
	// Schedule is a cron expression for the reminder sweep.
	Schedule     string
	Addr         string
	EventsBuffer int
	Currency     string
}

// Reminder is the payload of a due-reminder event.
type Reminder struct {
	DecisionID string    `json:"decision_id"`
	ItemName   string    `json:"item_name"`
	ItemPrice  float64   `json:"item_price"`
	RemindAt   time.Time `json:"remind_at"`
}

// Event is emitted when a let_me_think reminder comes due.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Reminder  Reminder  `json:"reminder"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt        time.Time `json:"started_at"`
	LastSweepAt      time.Time `json:"last_sweep_at"`
	Schedule         string    `json:"schedule"`
	SweepCount       int64     `json:"sweep_count"`
	PendingReminders int       `json:"pending_reminders"`
	FiredReminders   int       `json:"fired_reminders"`
	LastError        string    `json:"last_error,omitempty"`
	EventCount       int       `json:"event_count"`
	SubscriberCount  int       `json:"subscriber_count"`
}

// Service watches the ledger for due reminders and exposes them over HTTP.
type Service struct {
	cfg   Config
	store *ledger.Store

	mu          sync.RWMutex
	startedAt   time.Time
	lastSweepAt time.Time
	sweepCount  int64
	lastError   string
	fired       map[string]time.Time // decision id -> when its event was emitted
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a reminder watcher over the given decision store.
func New(store *ledger.Store, cfg Config) *Service {
	if cfg.Schedule == "" {
		cfg.Schedule = "* * * * *"
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8747"
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}

	return &Service{
		cfg:       cfg,
		store:     store,
		startedAt: time.Now(),
		fired:     make(map[string]time.Time),
		subs:      make(map[int]chan Event),
	}
}

// Run starts the HTTP endpoints and the cron sweep until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.Schedule, func() { s.SweepOnce(time.Now()) }); err != nil {
		return fmt.Errorf("daemon cron schedule: %w", err)
	}
	c.Start()
	defer c.Stop()

	// Seed an initial sweep so already-due reminders fire immediately.
	s.SweepOnce(time.Now())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("daemon http server: %w", err)
	}
}

// SweepOnce emits an event for every let_me_think reminder that has come
// due and has not been fired yet. A resolved or deleted decision simply
// stops appearing in the due query.
func (s *Service) SweepOnce(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	due, err := s.store.DueReminders(ctx, now)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastSweepAt = now
		s.sweepCount++
		s.mu.Unlock()
		log.Printf("saveup daemon sweep error: %v", err)
		return
	}

	var toPublish []Event

	s.mu.Lock()
	s.lastSweepAt = now
	s.sweepCount++
	s.lastError = ""

	for _, d := range due {
		if _, already := s.fired[d.ID]; already {
			continue
		}
		s.fired[d.ID] = now
		s.nextEventID++
		toPublish = append(toPublish, Event{
			ID:        s.nextEventID,
			Type:      "reminder_due",
			Timestamp: now,
			Reminder: Reminder{
				DecisionID: d.ID,
				ItemName:   d.ItemName,
				ItemPrice:  d.ItemPrice,
				RemindAt:   derefTime(d.RemindAt),
			},
		})
	}
	s.mu.Unlock()

	for _, ev := range toPublish {
		log.Printf("saveup: time to decide on %q (%.2f %s)",
			ev.Reminder.ItemName, ev.Reminder.ItemPrice, s.cfg.Currency)
		s.publishEvent(ev)
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	pending := 0
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if active, err := s.store.ActiveReminders(ctx, time.Now()); err == nil {
		pending = len(active)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:        s.startedAt,
		LastSweepAt:      s.lastSweepAt,
		Schedule:         s.cfg.Schedule,
		SweepCount:       s.sweepCount,
		PendingReminders: pending,
		FiredReminders:   len(s.fired),
		LastError:        s.lastError,
		EventCount:       len(s.events),
		SubscriberCount:  len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
