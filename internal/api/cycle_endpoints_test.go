package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/selene-health/selene/internal/cycle"
	"github.com/selene-health/selene/internal/models"
)

func TestPhaseAndPredictionsWithoutAnchorReportNoData(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "fresh@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "fresh@example.com", "StrongPass1")

	for _, path := range []string{"/api/cycle/phase", "/api/cycle/predictions"} {
		request := httptest.NewRequest(http.MethodGet, path, nil)
		request.Header.Set("Cookie", authCookie)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("request %s failed: %v", path, err)
		}

		var payload struct {
			HasData bool `json:"has_data"`
		}
		decodeJSONBody(t, response, &payload)
		response.Body.Close()
		if payload.HasData {
			t.Fatalf("expected has_data=false for %s before any period is logged", path)
		}
	}
}

func TestPhaseReflectsRecordedAnchor(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "phase@example.com", "StrongPass1")

	// Anchor two days back: today is cycle day 3, inside a 5-day period.
	anchor := cycle.AddDays(cycle.UTCMidnight(time.Now()), -2)
	setCycleAnchor(t, database, user.ID, anchor, cycle.AddDays(anchor, 4))

	authCookie := loginAndExtractAuthCookie(t, app, "phase@example.com", "StrongPass1")
	request := httptest.NewRequest(http.MethodGet, "/api/cycle/phase", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("phase request failed: %v", err)
	}
	defer response.Body.Close()

	var payload struct {
		HasData bool `json:"has_data"`
		Phase   struct {
			Phase    string `json:"phase"`
			CycleDay int    `json:"cycle_day"`
		} `json:"phase"`
	}
	decodeJSONBody(t, response, &payload)

	if !payload.HasData {
		t.Fatal("expected has_data=true with an anchor recorded")
	}
	if payload.Phase.CycleDay != 3 {
		t.Fatalf("expected cycle day 3, got %d", payload.Phase.CycleDay)
	}
	if payload.Phase.Phase != "menstrual" {
		t.Fatalf("expected menstrual phase, got %q", payload.Phase.Phase)
	}
}

func TestPredictionsMatchAnchorArithmetic(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "predict@example.com", "StrongPass1")

	anchor := cycle.AddDays(cycle.UTCMidnight(time.Now()), -2)
	setCycleAnchor(t, database, user.ID, anchor, cycle.AddDays(anchor, 4))

	authCookie := loginAndExtractAuthCookie(t, app, "predict@example.com", "StrongPass1")
	request := httptest.NewRequest(http.MethodGet, "/api/cycle/predictions", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("predictions request failed: %v", err)
	}
	defer response.Body.Close()

	var payload struct {
		HasData     bool `json:"has_data"`
		Predictions struct {
			NextPeriod struct {
				Date      time.Time `json:"date"`
				DaysUntil int       `json:"days_until"`
				Overdue   bool      `json:"overdue"`
			} `json:"next_period"`
		} `json:"predictions"`
	}
	decodeJSONBody(t, response, &payload)

	if !payload.HasData {
		t.Fatal("expected has_data=true with an anchor recorded")
	}
	wantDate := cycle.AddDays(anchor, models.DefaultCycleLength)
	if !payload.Predictions.NextPeriod.Date.Equal(wantDate) {
		t.Fatalf("expected next period %s, got %s",
			cycle.DateKey(wantDate), cycle.DateKey(payload.Predictions.NextPeriod.Date))
	}
	if payload.Predictions.NextPeriod.DaysUntil != models.DefaultCycleLength-2 {
		t.Fatalf("expected %d days until next period, got %d",
			models.DefaultCycleLength-2, payload.Predictions.NextPeriod.DaysUntil)
	}
	if payload.Predictions.NextPeriod.Overdue {
		t.Fatal("expected next period not to be overdue")
	}
}

func TestCalendarRejectsInvalidMonth(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "calendar@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "calendar@example.com", "StrongPass1")

	request := httptest.NewRequest(http.MethodGet, "/api/cycle/calendar?year=2025&month=13", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("calendar request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestAddPeriodDayRecordsAnchorAndFlagsLog(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "period@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "period@example.com", "StrongPass1")

	day := cycle.UTCMidnight(time.Now())
	request := httptest.NewRequest(http.MethodPost, "/api/cycle/period-days/"+cycle.DateKey(day), nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("add period day request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var result struct {
		Updated bool `json:"updated"`
	}
	decodeJSONBody(t, response, &result)
	if !result.Updated {
		t.Fatal("expected first period day to update the block")
	}

	var updated models.User
	if err := database.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if updated.LastPeriodStart == nil || !cycle.SameDay(*updated.LastPeriodStart, day) {
		t.Fatalf("expected last period start %s, got %v", cycle.DateKey(day), updated.LastPeriodStart)
	}

	var entry models.DayLog
	if err := database.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
		t.Fatalf("load day log: %v", err)
	}
	if !entry.IsPeriod {
		t.Fatal("expected day log to be flagged as period")
	}
}

func TestRemovePeriodDayShrinksBlock(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "shrink@example.com", "StrongPass1")

	start := cycle.AddDays(cycle.UTCMidnight(time.Now()), -3)
	end := cycle.AddDays(start, 2)
	setCycleAnchor(t, database, user.ID, start, end)

	authCookie := loginAndExtractAuthCookie(t, app, "shrink@example.com", "StrongPass1")
	request := httptest.NewRequest(http.MethodDelete, "/api/cycle/period-days/"+cycle.DateKey(end), nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("remove period day request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var updated models.User
	if err := database.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if updated.LastPeriodEnd == nil || !cycle.SameDay(*updated.LastPeriodEnd, cycle.AddDays(end, -1)) {
		t.Fatalf("expected last period end %s, got %v",
			cycle.DateKey(cycle.AddDays(end, -1)), updated.LastPeriodEnd)
	}
}

func TestPeriodMutationsRejectedWhenTrackingDisabled(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "disabled@example.com", "StrongPass1")
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).
		Update("track_cycle", false).Error; err != nil {
		t.Fatalf("disable tracking: %v", err)
	}

	authCookie := loginAndExtractAuthCookie(t, app, "disabled@example.com", "StrongPass1")
	day := cycle.UTCMidnight(time.Now())
	request := httptest.NewRequest(http.MethodPost, "/api/cycle/period-days/"+cycle.DateKey(day), nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("add period day request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestPeriodDayRejectsMalformedDate(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "baddate@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "baddate@example.com", "StrongPass1")

	request := httptest.NewRequest(http.MethodPost, "/api/cycle/period-days/03-20-2025", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("add period day request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}
