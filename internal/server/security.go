package server

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/osse101/PoE2Craft_Go/internal/logger"
	"github.com/osse101/PoE2Craft_Go/internal/metrics"
)

// TrustedProxies holds the proxy addresses and networks whose
// X-Forwarded-For header is believed
type TrustedProxies struct {
	addrs    []netip.Addr
	prefixes []netip.Prefix
}

// ParseTrustedProxies accepts plain addresses and CIDR ranges. Entries that
// parse as neither are returned so the caller can report them.
func ParseTrustedProxies(entries []string) (TrustedProxies, []string) {
	var (
		proxies  TrustedProxies
		rejected []string
	)
	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				rejected = append(rejected, entry)
				continue
			}
			proxies.prefixes = append(proxies.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			rejected = append(rejected, entry)
			continue
		}
		proxies.addrs = append(proxies.addrs, addr.Unmap())
	}
	return proxies, rejected
}

// Contains reports whether ip belongs to a trusted proxy
func (p TrustedProxies) Contains(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, a := range p.addrs {
		if a == addr {
			return true
		}
	}
	for _, prefix := range p.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// AuthMiddleware validates API key
func AuthMiddleware(apiKey string, proxies TrustedProxies, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, proxies)
				detector.RecordFailedAuth(ip)
				metrics.AuthFailures.Inc()

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					LogFieldPath, r.URL.Path,
					LogFieldHasKey, providedKey != "",
					LogFieldClientIP, ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// DetectorConfig sets the per-client budget of the activity detector
type DetectorConfig struct {
	Window          time.Duration
	RequestBudget   int // cost units a client may spend per window
	FailedAuthAlert int // failed logins per window before alerting
}

// DefaultDetectorConfig returns the limits used by NewServer
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		Window:          DefaultDetectorWindow,
		RequestBudget:   DefaultRequestBudget,
		FailedAuthAlert: DefaultFailedAuthAlert,
	}
}

// SuspiciousActivityDetector tracks failed logins and request cost per client
type SuspiciousActivityDetector struct {
	cfg DetectorConfig
	now func() time.Time

	mu             sync.Mutex
	failedAuthByIP map[string]int
	spentByIP      map[string]int
	windowStart    time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return NewSuspiciousActivityDetectorWithConfig(DefaultDetectorConfig())
}

// NewSuspiciousActivityDetectorWithConfig fills zero fields from the defaults
func NewSuspiciousActivityDetectorWithConfig(cfg DetectorConfig) *SuspiciousActivityDetector {
	def := DefaultDetectorConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.RequestBudget <= 0 {
		cfg.RequestBudget = def.RequestBudget
	}
	if cfg.FailedAuthAlert <= 0 {
		cfg.FailedAuthAlert = def.FailedAuthAlert
	}
	return &SuspiciousActivityDetector{
		cfg:            cfg,
		now:            time.Now,
		failedAuthByIP: make(map[string]int),
		spentByIP:      make(map[string]int),
		windowStart:    time.Now(),
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.failedAuthByIP[ip]++

	if s.failedAuthByIP[ip] >= s.cfg.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth,
			LogFieldClientIP, ip,
			LogFieldCount, s.failedAuthByIP[ip])
	}
}

// RecordRequest charges cost to the client and returns false once the
// window's budget is exhausted
func (s *SuspiciousActivityDetector) RecordRequest(ip string, cost int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	before := s.spentByIP[ip]
	s.spentByIP[ip] += cost

	if s.spentByIP[ip] <= s.cfg.RequestBudget {
		return true
	}
	// One alert per hundred units over budget keeps the log readable
	if before/alertEvery != s.spentByIP[ip]/alertEvery {
		slog.Warn(SecurityAlertHighRate,
			LogFieldClientIP, ip,
			LogFieldCount, s.spentByIP[ip])
	}
	return false
}

// Caller must hold the mutex
func (s *SuspiciousActivityDetector) rollWindow() {
	now := s.now()
	if now.Sub(s.windowStart) > s.cfg.Window {
		s.spentByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.windowStart = now
	}
}

// requestCost weighs simulations above single crafts since one simulation
// runs many applications
func requestCost(r *http.Request) int {
	if r.Method == http.MethodPost && r.URL.Path == SimulatePath {
		return SimulateRequestCost
	}
	return 1
}

type clientIPKey struct{}

// ClientIPFromContext returns the address recorded by SecurityLoggingMiddleware
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// SecurityLoggingMiddleware enforces the per-client budget and records the
// client address for the request logger
func SecurityLoggingMiddleware(proxies TrustedProxies, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, proxies)

			if !detector.RecordRequest(ip, requestCost(r)) {
				metrics.RateLimitedRequests.Inc()
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			ctx := context.WithValue(r.Context(), clientIPKey{}, ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only read when the direct peer is a trusted proxy,
// and then its rightmost hop is used.
func extractIP(r *http.Request, proxies TrustedProxies) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !proxies.Contains(remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			h.Set(HeaderCacheControl, HeaderValueNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
