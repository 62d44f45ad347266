package sheets

import (
	"time"

	"github.com/tidwall/gjson"

	"weddingplanner/internal/domain"
)

// Spreadsheet cells come back loosely typed: blank numeric cells are "", numbers can arrive
// as strings and phone numbers as numbers. Rows are read field by field so one odd cell
// zeroes that field instead of failing the whole snapshot.

func decodeSnapshot(body []byte) domain.Snapshot {
	root := gjson.ParseBytes(body)
	return domain.Snapshot{
		Guests:   decodeRows(root.Get("guests"), guestFromRow),
		Tables:   decodeRows(root.Get("tables"), tableFromRow),
		Vendors:  decodeRows(root.Get("vendors"), vendorFromRow),
		Tasks:    decodeRows(root.Get("tasks"), taskFromRow),
		Visitors: decodeRows(root.Get("visitors"), viewerFromRow),
	}
}

func decodeRows[T any](rows gjson.Result, fn func(gjson.Result) T) []T {
	var out []T
	rows.ForEach(func(_, row gjson.Result) bool {
		if row.IsObject() {
			out = append(out, fn(row))
		}
		return true
	})
	return out
}

func intField(row gjson.Result, key string) int {
	return int(row.Get(key).Int())
}

func guestFromRow(row gjson.Result) domain.Guest {
	return domain.Guest{
		ID:            row.Get("id").String(),
		EventID:       row.Get("weddingId").String(),
		FullName:      row.Get("fullName").String(),
		Relation:      domain.Relation(row.Get("relation").String()),
		RSVPStatus:    domain.RSVPStatus(row.Get("rsvpStatus").String()),
		PartySize:     intField(row, "partySize"),
		MenCount:      intField(row, "menCount"),
		WomenCount:    intField(row, "womenCount"),
		ChildrenCount: intField(row, "childrenCount"),
		MealChoice:    domain.MealChoice(row.Get("mealChoice").String()),
		TableID:       row.Get("tableId").String(),
		Email:         row.Get("email").String(),
		Phone:         row.Get("phone").String(),
		Description:   row.Get("description").String(),
		DietaryNotes:  row.Get("dietaryNotes").String(),
		CheckedIn:     row.Get("checkedIn").Bool(),
		Notes:         row.Get("notes").String(),
		AddedBy:       row.Get("addedBy").String(),
		Village:       row.Get("village").String(),
	}
}

func tableFromRow(row gjson.Result) domain.Table {
	return domain.Table{
		ID:       row.Get("id").String(),
		EventID:  row.Get("weddingId").String(),
		Name:     row.Get("name").String(),
		Capacity: intField(row, "capacity"),
		Shape:    domain.TableShape(row.Get("shape").String()),
	}
}

func vendorFromRow(row gjson.Result) domain.Vendor {
	return domain.Vendor{
		ID:          row.Get("id").String(),
		EventID:     row.Get("weddingId").String(),
		Name:        row.Get("name").String(),
		Category:    domain.VendorCategory(row.Get("category").String()),
		Status:      domain.VendorStatus(row.Get("status").String()),
		Cost:        row.Get("cost").Float(),
		Paid:        row.Get("paid").Float(),
		DueDate:     row.Get("dueDate").String(),
		ContactName: row.Get("contactName").String(),
		Phone:       row.Get("phone").String(),
		Email:       row.Get("email").String(),
	}
}

func taskFromRow(row gjson.Result) domain.Task {
	return domain.Task{
		ID:         row.Get("id").String(),
		EventID:    row.Get("weddingId").String(),
		Title:      row.Get("title").String(),
		DueDate:    row.Get("dueDate").String(),
		Completed:  row.Get("completed").Bool(),
		AssignedTo: row.Get("assignedTo").String(),
		Priority:   domain.Priority(row.Get("priority").String()),
	}
}

// viewerFromRow keeps rows with an unreadable timestamp; they sort as the oldest visits.
func viewerFromRow(row gjson.Result) domain.Viewer {
	v := domain.Viewer{
		EventID: row.Get("weddingId").String(),
		Name:    row.Get("name").String(),
	}
	if ts, err := time.Parse(time.RFC3339Nano, row.Get("timestamp").String()); err == nil {
		v.Timestamp = ts
	}
	return v
}
