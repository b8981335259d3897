package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceDTH       ServiceType = "DTH Connection"
	ServiceBroadband ServiceType = "WiFi / Broadband"
)

type LeadStatus string

const (
	StatusNew        LeadStatus = "New"
	StatusContacted  LeadStatus = "Contacted"
	StatusInterested LeadStatus = "Interested"
	StatusInstalled  LeadStatus = "Installed"
	StatusCancelled  LeadStatus = "Cancelled"
)

type LeadSource string

const (
	SourceWebsite  LeadSource = "Website"
	SourceWhatsApp LeadSource = "WhatsApp"
	SourceManual   LeadSource = "Manual"
	SourceFacebook LeadSource = "Facebook"
)

type Operator string

const (
	OpTataPlay      Operator = "Tata Play"
	OpAirtelDTH     Operator = "Airtel Digital TV"
	OpDishTV        Operator = "Dish TV"
	OpVideoconD2H   Operator = "Videocon d2h"
	OpJioFiber      Operator = "Jio Fiber"
	OpAirtelXstream Operator = "Airtel Xstream"
	OpACTFibernet   Operator = "ACT Fibernet"
	OpOther         Operator = "Other"
)

// DTHOperators and BroadbandOperators define which operator is selectable
// for each service type.
var (
	DTHOperators       = []Operator{OpTataPlay, OpAirtelDTH, OpDishTV, OpVideoconD2H}
	BroadbandOperators = []Operator{OpJioFiber, OpAirtelXstream, OpACTFibernet, OpOther}
)

// OperatorsFor returns the operator set valid for a service type.
func OperatorsFor(st ServiceType) []Operator {
	if st == ServiceDTH {
		return DTHOperators
	}
	return BroadbandOperators
}

type LeadNote struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"` // unix millis
	CreatedBy string `json:"createdBy"`
}

// Lead is a prospective customer's service request.
// Timestamps are unix milliseconds to stay wire-compatible with the stored
// cache blobs and the admin dashboard.
type Lead struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Mobile       string      `json:"mobile"`
	Location     string      `json:"location"`
	ServiceType  ServiceType `json:"serviceType"`
	Operator     Operator    `json:"operator"`
	Status       LeadStatus  `json:"status"`
	Source       LeadSource  `json:"source"`
	CreatedAt    int64       `json:"createdAt"`
	Notes        []LeadNote  `json:"notes,omitempty"`
	FollowUpDate int64       `json:"followUpDate,omitempty"`
	OrderID      string      `json:"orderId,omitempty"`
	UserID       string      `json:"userId,omitempty"`
}

// NewLead builds a Website lead with a client-generated id. Backends that
// assign their own ids (the document store) may substitute it on save.
func NewLead(name, mobile, location string, st ServiceType, op Operator) (*Lead, error) {
	lead := &Lead{
		ID:          uuid.New().String(),
		Name:        name,
		Mobile:      mobile,
		Location:    location,
		ServiceType: st,
		Operator:    op,
		Status:      StatusNew,
		Source:      SourceWebsite,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Mobile == "" {
		return errors.New("mobile is required")
	}
	if l.ServiceType != ServiceDTH && l.ServiceType != ServiceBroadband {
		return errors.New("unknown service type")
	}
	if !l.OperatorValid() {
		return errors.New("operator not available for service type")
	}
	return nil
}

// OperatorValid reports whether the lead's operator belongs to the set
// valid for its service type.
func (l *Lead) OperatorValid() bool {
	for _, op := range OperatorsFor(l.ServiceType) {
		if l.Operator == op {
			return true
		}
	}
	return false
}

// AddNote appends an author-stamped note.
func (l *Lead) AddNote(text, author string) LeadNote {
	note := LeadNote{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UnixMilli(),
		CreatedBy: author,
	}
	l.Notes = append(l.Notes, note)
	return note
}
