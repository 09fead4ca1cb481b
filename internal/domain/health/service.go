package health

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Status values.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	ProviderConnected    = "connected"
	ProviderDisconnected = "disconnected"
)

// Prober checks connectivity with the AI provider.
type Prober interface {
	TestConnection(ctx context.Context) bool
	ProviderName() string
}

// Report is the result of a health check.
type Report struct {
	Status         string    `json:"status"`
	Provider       string    `json:"provider"`
	ProviderStatus string    `json:"provider_status"`
	GeminiAPI      string    `json:"gemini_api,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Version        string    `json:"version"`
}

// DefaultProbeTimeout bounds a probe when no timeout is configured.
const DefaultProbeTimeout = 60 * time.Second

const geminiProvider = "gemini"

// Service reports service health.
type Service interface {
	Check(ctx context.Context) Report
}

type service struct {
	prober       Prober
	version      string
	probeTimeout time.Duration
	group        singleflight.Group
	log          zerolog.Logger
}

// NewService creates a new health service. probeTimeout bounds each shared probe;
// zero or negative means DefaultProbeTimeout.
func NewService(prober Prober, version string, probeTimeout time.Duration, log zerolog.Logger) Service {
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	return &service{
		prober:       prober,
		version:      version,
		probeTimeout: probeTimeout,
		log:          log.With().Str("component", "health-service").Logger(),
	}
}

// Check probes the provider. Concurrent checks share a single probe, which runs
// detached from any one caller so a caller that goes away cannot fail the others.
// A caller whose own context ends before the probe finishes gets a disconnected report.
func (s *service) Check(ctx context.Context) Report {
	ch := s.group.DoChan("probe", func() (any, error) {
		probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.probeTimeout)
		defer cancel()
		return s.prober.TestConnection(probeCtx), nil
	})

	var connected, shared bool
	select {
	case res := <-ch:
		connected, _ = res.Val.(bool)
		shared = res.Shared
	case <-ctx.Done():
	}

	report := Report{
		Status:         StatusHealthy,
		Provider:       s.prober.ProviderName(),
		ProviderStatus: ProviderConnected,
		Timestamp:      time.Now().UTC(),
		Version:        s.version,
	}
	if report.Provider == geminiProvider {
		report.GeminiAPI = ProviderConnected
	}
	if !connected {
		report.Status = StatusUnhealthy
		report.ProviderStatus = ProviderDisconnected
		if report.GeminiAPI != "" {
			report.GeminiAPI = ProviderDisconnected
		}
		s.log.Warn().Str("provider", report.Provider).Bool("shared", shared).Msg("AI provider unreachable")
	}
	return report
}
