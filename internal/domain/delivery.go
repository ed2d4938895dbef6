package domain

import "time"

// Message is a rendered email body pair.
type Message struct {
	Subject string `bson:"subject" json:"subject"`
	HTML    string `bson:"-" json:"html"`
	Text    string `bson:"-" json:"text"`
}

// DeliveryItem is one scheduled day of a program. Items are produced once per
// program and handed to the email transport exactly once.
type DeliveryItem struct {
	Day       int     `json:"day"`
	IsRestDay bool    `json:"isRestDay"`
	Payload   Message `json:"payload"`
	SendAt    int64   `json:"sendAt"` // UTC epoch seconds
}

// DeliveryStatus is the outcome of handing a message to the transport.
type DeliveryStatus string

const (
	DeliveryStatusSent      DeliveryStatus = "sent"      // accepted for immediate delivery
	DeliveryStatusScheduled DeliveryStatus = "scheduled" // accepted with a deferred send time
	DeliveryStatusFailed    DeliveryStatus = "failed"
	DeliveryStatusSkipped   DeliveryStatus = "skipped"
)

// DeliveryRecord is the stored outcome for one day of one program.
type DeliveryRecord struct {
	ID        string         `bson:"_id" json:"id"` // programID:day
	ProgramID string         `bson:"programId" json:"programId"`
	UserID    string         `bson:"userId" json:"userId"`
	Day       int            `bson:"day" json:"day"`
	Recipient string         `bson:"recipient" json:"recipient"`
	Subject   string         `bson:"subject" json:"subject"`
	SendAt    *int64         `bson:"sendAt,omitempty" json:"sendAt,omitempty"`
	Status    DeliveryStatus `bson:"status" json:"status"`
	MessageID string         `bson:"messageId,omitempty" json:"messageId,omitempty"`
	Error     string         `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
