package portal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"mavhu/models"
)

// duplicateKeyCode is the structured code the backend attaches to
// unique-index violations (MongoDB duplicate-key).
const duplicateKeyCode = 11000

// CompanyPage is one page of the companies listing.
type CompanyPage struct {
	Companies  []models.Company `json:"companies"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// CompanyInput carries the writable company fields for create and update.
// On update, zero-valued fields are left untouched by the backend.
type CompanyInput struct {
	Name               string                 `json:"name,omitempty"`
	RegistrationNumber string                 `json:"registration_number,omitempty"`
	Email              string                 `json:"email,omitempty"`
	Phone              string                 `json:"phone,omitempty"`
	ContactPerson      string                 `json:"contact_person,omitempty"`
	Industry           string                 `json:"industry,omitempty"`
	Country            string                 `json:"country,omitempty"`
	AreaOfInterest     *models.AreaOfInterest `json:"area_of_interest,omitempty"`
}

// ListCompanies fetches one page of companies.
func (c *Client) ListCompanies(ctx context.Context, page, limit int) (*CompanyPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out CompanyPage
	if err := c.get(ctx, "/companies/admin", q, &out); err != nil {
		return nil, normalizeError(err, "load companies")
	}
	return &out, nil
}

// GetCompany fetches a single company by id.
func (c *Client) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	var out models.Company
	if err := c.get(ctx, "/companies/admin/"+id, nil, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return nil, errors.New("Company not found")
		}
		return nil, normalizeError(err, "load company")
	}
	return &out, nil
}

// CreateCompany registers a new company. Duplicate registration numbers,
// emails and phone numbers come back as their own messages.
func (c *Client) CreateCompany(ctx context.Context, in CompanyInput) (*models.Company, error) {
	var out models.Company
	if err := c.post(ctx, "/companies/admin/register", in, &out); err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return nil, dup
		}
		return nil, normalizeError(err, "create company")
	}
	return &out, nil
}

// UpdateCompany applies a partial update.
func (c *Client) UpdateCompany(ctx context.Context, id string, in CompanyInput) (*models.Company, error) {
	var out models.Company
	if err := c.patch(ctx, "/companies/admin/"+id, in, &out); err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return nil, dup
		}
		return nil, normalizeError(err, "update company")
	}
	return &out, nil
}

// DeleteCompany removes a company and its reports.
func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/companies/admin/"+id); err != nil {
		return normalizeError(err, "delete company")
	}
	return nil
}

// duplicateFieldError maps the backend's structured duplicate-key error
// onto the exact per-field messages the portal shows. Nil when err is not
// a duplicate-key violation.
func duplicateFieldError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != duplicateKeyCode {
		return nil
	}
	switch apiErr.Field {
	case "registration_number":
		return errors.New("Registration number already exists")
	case "email":
		return errors.New("Email already exists")
	case "phone":
		return errors.New("Phone number already exists")
	}
	return errors.New("A company with these details already exists")
}

// normalizeError collapses transport and HTTP failures into one
// user-facing string. The server message wins when it sent one.
func normalizeError(err error, action string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == 401 {
			return errors.New("Your session has expired. Please sign in again.")
		}
		if apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("Failed to %s (status %d). Please try again.", action, apiErr.Status)
	}
	return fmt.Errorf("Failed to %s. Please check your connection and try again.", action)
}
