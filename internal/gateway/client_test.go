package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rota-console/internal/domain"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/api", Timeout: time.Second}, zap.NewNop())
	assert.NoError(t, err)
	return c
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "localhost:7091"})
	assert.Error(t, err)
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRID, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRID = r.Header.Get("X-Request-ID")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"leaveRequestId":42,"status":0}`))
	})

	ctx := contextutil.WithAccessToken(context.Background(), "tok")
	ctx = contextutil.WithRequestID(ctx, "rid-1")

	out, err := c.GetLeaveRequest(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, 42, out.LeaveRequestID)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "rid-1", gotRID)
	assert.Equal(t, "/api/leaverequests/42", gotPath)
}

func TestClient_AnonymousCallWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Me(context.Background())

	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.True(t, apperror.HasCode(ToAppError(err), apperror.CodeUnauthorized))
}

func TestClient_ListLeaveRequestsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2025-03-01", q.Get("startDate"))
		assert.Equal(t, "2025-03-31", q.Get("endDate"))
		assert.Equal(t, "1", q.Get("status"))
		assert.Equal(t, "2", q.Get("leaveTypeId"))
		assert.False(t, q.Has("employeeId"))
		_, _ = w.Write([]byte(`[{"LeaveRequestId":1,"Status":"Approved"}]`))
	})

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	status := domain.LeaveStatusApproved
	leaveType := 2

	out, err := c.ListLeaveRequests(context.Background(), domain.LeaveRequestFilter{
		StartDate:   &start,
		EndDate:     &end,
		LeaveTypeID: &leaveType,
		Status:      &status,
	})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 1, out[0].LeaveRequestID)
	assert.Equal(t, domain.LeaveStatusApproved, out[0].Status)
}

func TestClient_CreateSendsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		assert.EqualValues(t, 7, body["employeeId"])
		assert.Equal(t, "2025-03-10T09:00:00Z", body["leaveStartDateTime"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"leaveRequestId":5,"employeeId":7,"status":0}`))
	})

	out, err := c.CreateLeaveRequest(context.Background(), domain.CreateLeaveRequest{
		EmployeeID:         7,
		LeaveTypeID:        2,
		LeaveStartDateTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		LeaveEndDateTime:   time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, out.LeaveRequestID)
}

func TestClient_CancelAcceptsNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/leaverequests/9/cancel", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.CancelLeaveRequest(context.Background(), 9))
}

func TestClient_ProblemDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"title":"One or more validation errors occurred.","errors":{"LeaveEndDateTime":["overlaps an existing leave request"]}}`))
	})

	_, err := c.CreateLeaveRequest(context.Background(), domain.CreateLeaveRequest{})

	var gwErr *Error
	assert.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "LeaveEndDateTime: overlaps an existing leave request", gwErr.Detail)

	appErr := ToAppError(err)
	assert.True(t, apperror.HasCode(appErr, apperror.CodeRemoteReject))
	assert.Equal(t, "LeaveEndDateTime: overlaps an existing leave request", apperror.ToHTTP(appErr).Message)
}

func TestClient_TimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, zap.NewNop())
	assert.NoError(t, err)

	_, err = c.UpcomingOnCall(context.Background(), time.Now(), time.Now(), nil)

	var gwErr *Error
	assert.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 0, gwErr.StatusCode)
	assert.True(t, apperror.HasCode(ToAppError(err), apperror.CodeServiceUnavailable))
}

func TestToAppError(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{http.StatusUnauthorized, apperror.CodeUnauthorized},
		{http.StatusForbidden, apperror.CodeAccessDenied},
		{http.StatusNotFound, apperror.CodeNotFound},
		{http.StatusConflict, apperror.CodeRemoteReject},
		{http.StatusUnprocessableEntity, apperror.CodeRemoteReject},
		{http.StatusBadGateway, apperror.CodeServiceUnavailable},
		{http.StatusTeapot, apperror.CodeInternalError},
	}

	for _, tc := range cases {
		err := ToAppError(&Error{Op: "x", StatusCode: tc.status})
		assert.Equal(t, tc.code, apperror.CodeOf(err), "status %d", tc.status)
	}
	assert.NoError(t, ToAppError(nil))
}

func TestClient_DecodesTimestampsWithoutOffset(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/leaverequests":
			_, _ = w.Write([]byte(`[{
				"leaveRequestId": 7,
				"employeeId": 11,
				"leaveStartDateTime": "2025-03-10T09:00:00",
				"leaveEndDateTime": "2025-03-10T17:00:00",
				"requestedDate": "2025-03-01T08:15:30.1234567",
				"approvalDate": null,
				"status": 0
			}]`))
		case "/api/dashboard/oncall/upcoming":
			_, _ = w.Write([]byte(`[{
				"date": "2025-03-10T00:00:00",
				"assignments": [{"employeeId": 11, "shiftStartDateTime": "2025-03-10T20:00:00", "shiftEndDateTime": "2025-03-11T08:00:00"}]
			}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	leaves, err := c.ListLeaveRequests(context.Background(), domain.LeaveRequestFilter{})
	assert.NoError(t, err)
	if assert.Len(t, leaves, 1) {
		l := leaves[0]
		assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), l.LeaveStartDateTime)
		assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), l.LeaveEndDateTime)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 15, 30, 123456700, time.UTC), l.RequestedDate)
		assert.Nil(t, l.ApprovalDate)
	}

	days, err := c.UpcomingOnCall(context.Background(), time.Now(), time.Now(), nil)
	assert.NoError(t, err)
	if assert.Len(t, days, 1) && assert.Len(t, days[0].Assignments, 1) {
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), days[0].Date)
		assert.Equal(t, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC), days[0].Assignments[0].ShiftEndDateTime)
	}
}

func TestClient_UndecodableBodyIsBadGateway(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"leaveRequestId":1,"leaveStartDateTime":"10/03/2025 09:00"}`))
	})

	_, err := c.GetLeaveRequest(context.Background(), 1)

	var gwErr *Error
	assert.ErrorAs(t, err, &gwErr)
	assert.True(t, gwErr.Decode)
	got := apperror.ToHTTP(ToAppError(err))
	assert.Equal(t, http.StatusBadGateway, got.Status)
	assert.Equal(t, apperror.CodeBadGateway, got.Code)
}

func TestClient_ListShiftsQuery(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"shiftId": 3, "employeeId": 7, "isOnCall": true,
			"shiftStartDateTime": "2025-03-10T22:00:00", "shiftEndDateTime": "2025-03-11T06:00:00"}]`))
	})

	start := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	team := 4
	onCall := true
	shifts, err := c.ListShifts(context.Background(), domain.ShiftFilter{
		StartDate: &start,
		EndDate:   &end,
		TeamID:    &team,
		IsOnCall:  &onCall,
	})

	assert.NoError(t, err)
	assert.Equal(t, "/api/shifts", gotPath)
	assert.Equal(t, "endDate=2025-03-15&isOnCall=true&startDate=2025-03-09&teamId=4", gotQuery)
	if assert.Len(t, shifts, 1) {
		assert.Equal(t, time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC), shifts[0].ShiftStartDateTime)
	}
}
