package backend

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Severity levels accepted by the backend. The backend stays authoritative;
// the panel only restricts its own form input to this set.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Severities lists the accepted severity levels in display order.
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh}

// ValidSeverity reports whether s is one of the accepted severity levels.
func ValidSeverity(s string) bool {
	for _, level := range Severities {
		if s == level {
			return true
		}
	}
	return false
}

// Timestamp wraps time.Time to accept the backend's date formats: RFC 3339
// as well as naive ISO datetimes without a zone, which are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			t.Time = ts
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Incident is a recorded bank-security event. Id and Date are assigned by
// the backend and immutable once created.
type Incident struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	Bank        string    `json:"bank"`
	Date        Timestamp `json:"date"`
}

// IncidentUpsert carries the four editable fields for create and update.
// Updates are full replacements; the backend receives all fields every time.
type IncidentUpsert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Bank        string `json:"bank"`
}

// ListIncidents fetches the full incident collection.
func (c *Client) ListIncidents(ctx context.Context, token string) ([]Incident, error) {
	var incidents []Incident
	if err := c.get(ctx, "/incidents", token, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// GetIncident fetches a single incident by id.
func (c *Client) GetIncident(ctx context.Context, token string, id int) (*Incident, error) {
	var incident Incident
	if err := c.get(ctx, fmt.Sprintf("/incidents/%d", id), token, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// CreateIncident submits a new incident and returns it with the
// backend-assigned id and date.
func (c *Client) CreateIncident(ctx context.Context, token string, in IncidentUpsert) (*Incident, error) {
	var incident Incident
	if err := c.postJSON(ctx, "/incidents", token, in, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// UpdateIncident replaces all editable fields of an existing incident.
func (c *Client) UpdateIncident(ctx context.Context, token string, id int, in IncidentUpsert) (*Incident, error) {
	var incident Incident
	if err := c.putJSON(ctx, fmt.Sprintf("/incidents/%d", id), token, in, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// DeleteIncident removes an incident by id.
func (c *Client) DeleteIncident(ctx context.Context, token string, id int) error {
	return c.del(ctx, fmt.Sprintf("/incidents/%d", id), token)
}
