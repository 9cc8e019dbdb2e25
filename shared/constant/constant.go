// Package constant holds names shared across transports and domains.
package constant

import (
	"time"
)

const (
	Empty = ""
)

type contextKey string

// Caller identity, written by the auth middleware and read through package actor.
const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserRole contextKey = "user_role"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleCustomer   = "customer"
	RoleProvider   = "provider"
	// RoleSystem is never issued in a token; API key callers and the engine itself act as it.
	RoleSystem = "system"
)

// Paging.
const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"

	DefaultValuePage  = 1
	DefaultValueLimit = 10
	MaxValueLimit     = 100
)

// Path and query parameters.
const (
	RequestParamID         = "id"
	RequestParamBookingID  = "booking_id"
	RequestParamProviderID = "provider_id"
	RequestParamServiceID  = "service_id"
	RequestParamPincode    = "pincode"
	RequestParamDate       = "date"
	RequestParamStatus     = "status"
)

// Audit columns carried by every mutable table.
const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

// Postgres SQLSTATE codes the repositories react to.
const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeAdminShutdown   = "57P01"
	PqErrorCodeCannotConnect   = "57P03"
	PqErrorClassConnection     = "08"
)

const (
	DateFormat         = time.RFC3339
	BusinessDateFormat = "2006-01-02"
	ClockFormat        = "15:04"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelS3ScopeName         = "s3"
	OtelKafkaScopeName      = "kafka"
	OtelLockScopeName       = "lock"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"

	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
