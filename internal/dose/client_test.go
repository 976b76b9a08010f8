package dose

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchDueToday(t *testing.T) {
	t.Parallel()

	t.Run("parses items", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/today/elder-1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[
				{"medication_id":"m1","name":"Aspirin","dosage":"100mg","scheduled_at":"2024-01-01T08:00:00Z"},
				{"medication_id":"m1","name":"Aspirin","dosage":"100mg","scheduled_at":"2024-01-01T20:00:00Z"}
			]}`))
		}))
		defer ts.Close()

		c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
		items, err := c.FetchDueToday(context.Background(), "elder-1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Aspirin", items[0].Name)
		// Same medication twice a day yields distinct identities.
		assert.NotEqual(t, items[0].Key(), items[1].Key())
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"items":[]}`))
		}))
		defer ts.Close()

		c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
		items, err := c.FetchDueToday(context.Background(), "elder-1")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
		_, err := c.FetchDueToday(context.Background(), "elder-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestClient_RecordTakeAndSnooze(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}

	req := ActionRequest{
		UserID:       "elder-1",
		MedicationID: "m1",
		ScheduledAt:  "2024-01-01T08:00:00Z",
	}

	t.Run("take omits minutes", func(t *testing.T) {
		require.NoError(t, c.RecordTake(context.Background(), req))
		assert.Equal(t, "/api/take", gotPath)
		assert.Equal(t, "m1", gotBody["medication_id"])
		assert.NotContains(t, gotBody, "minutes")
	})

	t.Run("snooze carries minutes", func(t *testing.T) {
		snooze := req
		snooze.Minutes = 15
		require.NoError(t, c.RecordSnooze(context.Background(), snooze))
		assert.Equal(t, "/api/snooze", gotPath)
		assert.EqualValues(t, 15, gotBody["minutes"])
	})
}

func TestClient_SubmitVoiceCommand(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/voice", r.URL.Path)
		var body struct {
			Text   string `json:"text"`
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "take my pill", body.Text)
		assert.Equal(t, "elder-1", body.UserID)
		_, _ = w.Write([]byte(`{"response":"Reminder noted"}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	reply, err := c.SubmitVoiceCommand(context.Background(), "take my pill", "elder-1")
	require.NoError(t, err)
	assert.Equal(t, "Reminder noted", reply)
}

func TestClient_FetchCompliance(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/caregiver/compliance/elder-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"calendar":[
			{"date":"2024-01-01","status":"taken"},
			{"date":"2024-01-02","status":"missed"},
			{"date":"2024-01-03","status":"pending"}
		]}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	days, err := c.FetchCompliance(context.Background(), "elder-1")
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, StatusTaken, days[0].Status)
	assert.Equal(t, StatusMissed, days[1].Status)
}

func TestClient_CreateMedication(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/medications", r.URL.Path)
		gotBody = map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	err := c.CreateMedication(context.Background(), NewMedication{
		UserID: "elder-1",
		Name:   "Metformin",
		Dosage: "500mg",
		Schedule: Schedule{
			DaysOfWeek: []int{0, 2, 4},
			Times:      []string{"08:00"},
		},
	})
	require.NoError(t, err)

	sched, ok := gotBody["schedule"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, sched["days_of_week"], 3)
	assert.Equal(t, []any{"08:00"}, sched["times"])
}
