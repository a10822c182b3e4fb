// Package metrics defines and registers all custom Prometheus metrics for the
// DailyMate API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init via
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dailymate"

// ── Authentication ────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsRejectedTotal counts requests whose session cookie did not resolve.
var SessionsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_rejected_total",
		Help:      "Total number of session cookies that failed to resolve to an account.",
	},
)

// ── Provisioning ──────────────────────────────────────────────────────────────

// AccountsProvisionedTotal counts identities created end to end.
// Label:
//   - role: "parent", "kid", "teacher" or "admin"
var AccountsProvisionedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_provisioned_total",
		Help:      "Total number of accounts provisioned with their role profile.",
	},
	[]string{"role"},
)

// ProvisioningRollbacksTotal counts compensating account deletions.
// Labels:
//   - role: the role being provisioned
//   - reason: "profile_invalid" or "profile_insert_failed"
var ProvisioningRollbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provisioning_rollbacks_total",
		Help:      "Total number of provisioning attempts rolled back after the account was inserted.",
	},
	[]string{"role", "reason"},
)

// ── Verification ──────────────────────────────────────────────────────────────

// VerificationCodesIssuedTotal counts codes handed to the mailer.
// Labels:
//   - purpose: "verify_email" or "reset_password"
//   - result: "sent" or "delivery_failed"
var VerificationCodesIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verification_codes_issued_total",
		Help:      "Total number of verification codes issued, by purpose and delivery result.",
	},
	[]string{"purpose", "result"},
)

// VerificationRedemptionsTotal counts code redemption attempts.
// Labels:
//   - purpose: "verify_email" or "reset_password"
//   - result: "success" or "rejected"
var VerificationRedemptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verification_redemptions_total",
		Help:      "Total number of verification code redemptions, by purpose and result.",
	},
	[]string{"purpose", "result"},
)

// ── Password hashing ──────────────────────────────────────────────────────────

// HashQueueDepth tracks jobs waiting for a hashing worker.
var HashQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hash_queue_depth",
		Help:      "Current number of password hashing jobs waiting for a worker.",
	},
)

// HashDuration measures time spent inside bcrypt.
// Label:
//   - op: "hash" or "compare"
var HashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "hash_duration_seconds",
		Help:      "Duration of bcrypt operations executed by the hashing pool.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"op"},
)
