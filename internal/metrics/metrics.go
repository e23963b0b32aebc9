package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	tokenChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_token_checks_total",
		Help: "Number of token verifications grouped by result.",
	}, []string{"result"})

	reconcileApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogapi_reconcile_applied_total",
		Help: "Number of pending updates applied during reconciliation.",
	})

	votes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_votes_total",
		Help: "Number of accepted vote increments grouped by target.",
	}, []string{"target"})

	remoteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_remote_requests_total",
		Help: "Outbound collaborator calls grouped by service and status.",
	}, []string{"service", "status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncTokenCheck increments the token verification counter.
func IncTokenCheck(result string) {
	tokenChecks.WithLabelValues(result).Inc()
}

// IncReconcileApplied counts one applied-and-deleted pending update.
func IncReconcileApplied() {
	reconcileApplied.Inc()
}

// IncVote counts one accepted +1 vote, target is "article" or "comment".
func IncVote(target string) {
	votes.WithLabelValues(target).Inc()
}

// IncRemote counts an outbound collaborator call.
func IncRemote(service, status string) {
	remoteRequests.WithLabelValues(service, status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
