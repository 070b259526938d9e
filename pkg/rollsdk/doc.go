/*
Package rollsdk provides the API types and a client SDK for the Rollcall
attendance service.

Every core endpoint wraps its payload in the Envelope type:

	{"success": true, "data": ..., "message": "..."}

with message populated on failure (and occasionally on success). The
server side uses the APIError values in this package to produce those
failure envelopes; the client side decodes them back into *APIError so
callers can match on Code.

Create a Client for unauthenticated operations and to log in:

	client := rollsdk.NewClient("https://rollcall.example.com")

	login, err := client.Login(ctx, "supervisor.quito", "demo123")

Login returns a Session scoped to the caller's city and role. All
subsequent operations ride on the session's bearer token:

	people, err := session.ListPersonnel(ctx, "Quito")

	entry, err := session.RegisterAttendance(ctx, rollsdk.RegisterAttendanceRequest{
		PersonID:  "P001",
		Date:      "2024-01-10",
		TimeIn:    "08:00",
		TimeOut:   "14:00",
		ShiftType: "6h",
	})

	entries, err := session.ListAttendanceForDay(ctx, "Quito", "2024-01-10")

Dates are YYYY-MM-DD and times HH:MM throughout.
*/
package rollsdk
