package dashboard

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const calendarMIME = "text/calendar; charset=utf-8"

// FilterByEmployee keeps only the assignments of employeeID, dropping days
// that end up empty.
func FilterByEmployee(days []OnCallDayView, employeeID int) []OnCallDayView {
	out := make([]OnCallDayView, 0, len(days))
	for _, day := range days {
		var mine []OnCallAssignmentView
		for _, a := range day.Assignments {
			if a.EmployeeID == employeeID {
				mine = append(mine, a)
			}
		}
		if len(mine) > 0 {
			out = append(out, OnCallDayView{Date: day.Date, Assignments: mine})
		}
	}
	return out
}

// WriteOnCallCalendar renders one VEVENT per assignment. UIDs are stable
// across exports so calendar clients update events in place.
func WriteOnCallCalendar(w io.Writer, days []OnCallDayView, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rota-console//on-call//EN")
	cal.SetXWRCalName("On-call rota")

	for _, day := range days {
		for _, a := range day.Assignments {
			event := cal.AddEvent(fmt.Sprintf("oncall-%d-%d-%s@rota-console",
				a.EmployeeID, a.ShiftTypeID, a.ShiftStart.UTC().Format("20060102T150405Z")))
			event.SetDtStampTime(stamp.UTC())
			event.SetStartAt(a.ShiftStart.UTC())
			event.SetEndAt(a.ShiftEnd.UTC())
			event.SetSummary(fmt.Sprintf("On-call: %s (%s)", a.EmployeeName, a.ShiftTypeName))
			if a.TeamName != nil {
				event.SetDescription("Team " + *a.TeamName)
			}
		}
	}

	_, err := io.Copy(w, strings.NewReader(cal.Serialize()))
	return err
}
