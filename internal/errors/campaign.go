package errors

import "net/http"

var (
	ErrCampaignNotFound = &DomainError{
		Code:    "CAMPAIGN_NOT_FOUND",
		Message: "campaign not found",
		Status:  http.StatusNotFound,
	}
	ErrParticipationNotFound = &DomainError{
		Code:    "PARTICIPATION_NOT_FOUND",
		Message: "participation not found",
		Status:  http.StatusNotFound,
	}
	ErrAlreadyJoined = &DomainError{
		Code:    "ALREADY_JOINED",
		Message: "already joined this campaign",
		Status:  http.StatusConflict,
	}
	ErrAlreadyWon = &DomainError{
		Code:    "ALREADY_WON",
		Message: "campaign reward already granted",
		Status:  http.StatusConflict,
	}
)
