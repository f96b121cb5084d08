package models

import (
	"encoding/json"
	"time"
)

// Assistance request priorities and statuses.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	AssistancePending    = "pending"
	AssistanceInProgress = "in_progress"
	AssistanceCompleted  = "completed"
	AssistanceCancelled  = "cancelled"
)

// AssistanceRequest is a customer's help ticket.
type AssistanceRequest struct {
	RequestID      int64      `json:"requestId"`
	UserID         int64      `json:"userId"`
	Subject        string     `json:"subject"`
	Message        string     `json:"message"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	ResolutionTime *time.Time `json:"resolutionTime,omitempty"`
	ResolutionNote string     `json:"resolutionNote,omitempty"`
}

func (a *AssistanceRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		RequestID        flexID     `json:"requestId"`
		ID               flexID     `json:"id"`
		UserID           flexID     `json:"userId"`
		Subject          string     `json:"subject"`
		Message          string     `json:"message"`
		IssueDescription string     `json:"issueDescription"`
		Priority         string     `json:"priority"`
		Status           string     `json:"status"`
		ResolutionTime   *time.Time `json:"resolutionTime"`
		ResolutionNote   string     `json:"resolutionNote"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.RequestID = firstID(raw.RequestID, raw.ID)
	a.UserID = int64(raw.UserID)
	a.Subject = raw.Subject
	a.Message = firstNonEmpty(raw.Message, raw.IssueDescription)
	a.Priority = raw.Priority
	a.Status = raw.Status
	a.ResolutionTime = raw.ResolutionTime
	a.ResolutionNote = raw.ResolutionNote
	return nil
}

// AssistanceInput opens a new request.
type AssistanceInput struct {
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority" binding:"required,oneof=low medium high urgent"`
}
