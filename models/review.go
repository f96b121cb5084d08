package models

import (
	"encoding/json"
	"time"
)

// Review is a customer rating of a package. AgentReply is append-only
// and the review-service only accepts it from the owning agent.
type Review struct {
	ReviewID   int64     `json:"reviewId"`
	UserID     int64     `json:"userId"`
	PackageID  int64     `json:"packageId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Timestamp  time.Time `json:"timestamp"`
	AgentReply string    `json:"agentReply,omitempty"`
	UserName   string    `json:"userName,omitempty"`
}

func (r *Review) UnmarshalJSON(data []byte) error {
	var raw struct {
		ReviewID   flexID    `json:"reviewId"`
		ID         flexID    `json:"id"`
		UserID     flexID    `json:"userId"`
		PackageID  flexID    `json:"packageId"`
		Rating     int       `json:"rating"`
		Comment    string    `json:"comment"`
		Timestamp  time.Time `json:"timestamp"`
		AgentReply string    `json:"agentReply"`
		UserName   string    `json:"userName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ReviewID = firstID(raw.ReviewID, raw.ID)
	r.UserID = int64(raw.UserID)
	r.PackageID = int64(raw.PackageID)
	r.Rating = raw.Rating
	r.Comment = raw.Comment
	r.Timestamp = raw.Timestamp
	r.AgentReply = raw.AgentReply
	r.UserName = raw.UserName
	return nil
}

// ReviewInput is a customer's submission.
type ReviewInput struct {
	PackageID int64  `json:"packageId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// ReplyInput is the owning agent's reply to a review.
type ReplyInput struct {
	Reply string `json:"reply" binding:"required"`
}
