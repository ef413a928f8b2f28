package itinerary

import (
	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
)

// FollowUp is the action the browser offers after a failed generation.
type FollowUp string

const (
	FollowUpNone   FollowUp = ""
	FollowUpPlans  FollowUp = "navigate-plans"
	FollowUpSignin FollowUp = "navigate-signin"
)

// FollowUpFor decides the follow-up from structured error codes only.
func FollowUpFor(err error) FollowUp {
	if err == nil {
		return FollowUpNone
	}
	if domain.IsUnauthorized(err) {
		return FollowUpSignin
	}
	apiErr, ok := apiclient.AsAPIError(err)
	if !ok {
		return FollowUpNone
	}
	switch {
	case apiErr.Code == apiclient.CodeQuotaExceeded, apiErr.Code == apiclient.CodeSubscriptionNotFound:
		return FollowUpPlans
	case apiErr.IsUnauthorized():
		return FollowUpSignin
	}
	return FollowUpNone
}
