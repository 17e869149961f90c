package models

import (
	"time"
)

// SpordState is the lifecycle state of a spord. States are persisted as
// small integer codes; progression Pending -> Ordered -> Received is a UI
// convention, not enforced anywhere: any state may overwrite any other.
type SpordState int

const (
	StateOther    SpordState = 0
	StatePending  SpordState = 1
	StateOrdered  SpordState = 2
	StateReceived SpordState = 3
)

// Code returns the integer code stored in the database.
func (s SpordState) Code() int {
	switch s {
	case StatePending, StateOrdered, StateReceived:
		return int(s)
	default:
		return int(StateOther)
	}
}

// StateFromCode decodes a persisted state code. Unrecognized codes decode to
// StateOther rather than failing, so old rows always remain readable.
func StateFromCode(code int) SpordState {
	switch code {
	case 1:
		return StatePending
	case 2:
		return StateOrdered
	case 3:
		return StateReceived
	default:
		return StateOther
	}
}

func (s SpordState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateOrdered:
		return "ordered"
	case StateReceived:
		return "received"
	default:
		return "other"
	}
}

// Spord is a tracked customer part order. ID is zero until the store assigns
// one on insert. Optional fields are nil pointers when absent.
type Spord struct {
	ID            int        `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone *string    `json:"customer_phone"`
	CustomerEmail *string    `json:"customer_email"`
	Part          string     `json:"part"`
	State         SpordState `json:"state"`
	CreationDate  time.Time  `json:"creation_date"`
	ReceivedDate  *time.Time `json:"received_date"`
	Comments      *string    `json:"comments"`
}

// ReceivedUnix returns the received date as unix seconds, or nil when the
// spord has not been received.
func (sp *Spord) ReceivedUnix() *int64 {
	if sp.ReceivedDate == nil {
		return nil
	}
	ts := sp.ReceivedDate.Unix()
	return &ts
}

type User struct {
	Username  string `json:"username"`
	Password  string `json:"-"` // bcrypt hash, never the plaintext
	Enabled   bool   `json:"enabled"`
	LastLogin *int64 `json:"last_login"` // reserved, not currently written
}
