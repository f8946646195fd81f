package main

import (
	"encoding/json"
	"time"

	"mavhu/models"
)

// Request/response DTOs. Keep them minimal and explicit.

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// errorResp is the error body every endpoint emits. Code and Field are set
// only for duplicate-key violations so clients can switch on structure
// instead of matching message text.
type errorResp struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

type companyReq struct {
	Name               string                 `json:"name"`
	RegistrationNumber string                 `json:"registration_number"`
	Email              string                 `json:"email"`
	Phone              string                 `json:"phone"`
	ContactPerson      string                 `json:"contact_person"`
	Industry           string                 `json:"industry"`
	Country            string                 `json:"country"`
	AreaOfInterest     *models.AreaOfInterest `json:"area_of_interest"`
	ESGStatus          models.ESGStatus       `json:"esg_status"`
}

type companyListResp struct {
	Companies  []models.Company `json:"companies"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// reportDoc wraps one ingested crop-yield report. The payload is stored
// verbatim; the API never recomputes anything inside it.
type reportDoc struct {
	CompanyID string         `bson:"companyId"`
	Year      int            `bson:"year"`
	UpdatedAt time.Time      `bson:"updated_at"`
	Payload   map[string]any `bson:"payload"`
}

// Payload we send to the processor when a company's area of interest
// changes and its reports need recomputing.
type processorReportReq struct {
	CompanyID      string                 `json:"companyId"`
	AreaOfInterest *models.AreaOfInterest `json:"area_of_interest,omitempty"`
	ESGStatus      models.ESGStatus       `json:"esg_status,omitempty"`
}

type processorReportResp struct {
	OperationID string `json:"operation_id,omitempty"` // if processor returns a task id
	Status      string `json:"status,omitempty"`       // e.g., "queued"
}

// rawJSON round-trips an arbitrary JSON document into the map shape Mongo
// stores.
func rawJSON(raw []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
