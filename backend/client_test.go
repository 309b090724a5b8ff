package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestListIncidentsAttachesBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	incidents, err := client.ListIncidents(context.Background(), "tok123")
	assert.NoError(t, err)
	assert.Empty(t, incidents)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestListIncidentsWithoutToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	_, err := client.ListIncidents(context.Background(), "")
	assert.NoError(t, err)
	assert.Empty(t, gotAuth, "no Authorization header expected without a token")
}

func TestGetIncident(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/incidents/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"title":"Phishing","description":"line1\nline2","severity":"High","bank":"CyberBank","date":"2025-04-01T10:30:00Z"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	incident, err := client.GetIncident(context.Background(), "tok", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, incident.Id)
	assert.Equal(t, "Phishing", incident.Title)
	assert.Equal(t, "High", incident.Severity)
	assert.Equal(t, time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC), incident.Date.Time)
}

func TestTimestampAcceptsNaiveDates(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-04-01T10:30:00Z"`:      time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC),
		`"2025-04-01T10:30:00"`:       time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC),
		`"2025-04-01T10:30:00.5"`:     time.Date(2025, 4, 1, 10, 30, 0, 500000000, time.UTC),
		`"2025-04-01T10:30:00+03:00"`: time.Date(2025, 4, 1, 10, 30, 0, 0, time.FixedZone("", 3*3600)),
	}
	for raw, want := range cases {
		var ts Timestamp
		err := json.Unmarshal([]byte(raw), &ts)
		assert.NoError(t, err, raw)
		assert.True(t, want.Equal(ts.Time), raw)
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestGetIncidentNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Incident not found"}`, http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	_, err := client.GetIncident(context.Background(), "tok", 99)
	assert.Error(t, err)
	assert.True(t, IsNotFound(err))

	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.Equal(t, KindNotFound, be.Kind)
	assert.Equal(t, http.StatusNotFound, be.StatusCode)
}

func TestStatusErrorKeepsCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	_, err := client.ListIncidents(context.Background(), "tok")
	assert.Error(t, err)
	assert.False(t, IsNotFound(err))

	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.Equal(t, KindStatus, be.Kind)
	assert.Equal(t, http.StatusInternalServerError, be.StatusCode)
}

func TestTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient(ts.URL, 0)
	_, err := client.ListIncidents(context.Background(), "tok")
	assert.Error(t, err)

	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.Equal(t, KindTransport, be.Kind)
}

func TestCreateIncidentSendsAllFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/incidents", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, map[string]string{
			"title":       "ATM skimming",
			"description": "details",
			"severity":    "Medium",
			"bank":        "First National",
		}, payload)

		w.Write([]byte(`{"id":3,"title":"ATM skimming","description":"details","severity":"Medium","bank":"First National","date":"2025-04-02T08:00:00Z"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	incident, err := client.CreateIncident(context.Background(), "tok", IncidentUpsert{
		Title:       "ATM skimming",
		Description: "details",
		Severity:    "Medium",
		Bank:        "First National",
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, incident.Id)
}

func TestUpdateIncidentIsFullReplacement(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/incidents/5", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		assert.NoError(t, json.Unmarshal(body, &payload))
		// unchanged fields travel too
		assert.Len(t, payload, 4)

		w.Write([]byte(`{"id":5,"title":"t","description":"d","severity":"Low","bank":"b","date":"2025-04-02T08:00:00Z"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	_, err := client.UpdateIncident(context.Background(), "tok", 5, IncidentUpsert{
		Title: "t", Description: "d", Severity: "Low", Bank: "b",
	})
	assert.NoError(t, err)
}

func TestDeleteIncident(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"detail":"Incident deleted successfully"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	err := client.DeleteIncident(context.Background(), "tok", 12)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/incidents/12", gotPath)
}

func TestLoginSendsFormEncoded(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		assert.NoError(t, err)
		assert.Equal(t, "alice", form.Get("username"))
		assert.Equal(t, "s3cret", form.Get("password"))

		w.Write([]byte(`{"access_token":"tok-login","token_type":"bearer"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	token, err := client.Login(context.Background(), "alice", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "tok-login", token.AccessToken)
}

func TestRegisterSendsJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "bob", payload["username"])
		assert.Equal(t, "hunter2", payload["password"])

		w.Write([]byte(`{"access_token":"tok-reg","token_type":"bearer"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	token, err := client.Register(context.Background(), "bob", "hunter2")
	assert.NoError(t, err)
	assert.Equal(t, "tok-reg", token.AccessToken)
}

func TestPingAcceptsAnyHTTPResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 0)
	assert.NoError(t, client.Ping(context.Background()))

	ts.Close()
	assert.Error(t, client.Ping(context.Background()))
}

func TestValidSeverity(t *testing.T) {
	for _, level := range Severities {
		assert.True(t, ValidSeverity(level))
	}
	assert.False(t, ValidSeverity("Critical"))
	assert.False(t, ValidSeverity("low"))
	assert.False(t, ValidSeverity(""))
}
