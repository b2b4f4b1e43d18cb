package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"

	"officer_duty_backend/internals/constants"
	"officer_duty_backend/internals/databases/dbtest"
	helper "officer_duty_backend/internals/helpers"
)

func TestNotificationLifecycle(t *testing.T) {
	db := dbtest.Open(t)
	svc := New(db)
	ctx := context.Background()
	owner := dbtest.User(t, db, "owner", constants.RoleOfficer, "Patrol")
	other := dbtest.User(t, db, "other", constants.RoleOfficer, "Patrol")

	first, err := Notify(db, owner.ID, "Absence approved", "Your absence was approved.", map[string]any{"status": "approved"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if _, err := Notify(db, owner.ID, "New duty", "Gate A", nil); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if _, err := Notify(db, other.ID, "New duty", "Gate B", nil); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if first.IsRead {
		t.Fatalf("new notification must start unread")
	}

	page := helper.Paging{Page: 1, PerPage: 20, Limit: 20}
	rows, total, err := svc.ListMine(ctx, owner.ID, true, page)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("unread total=%d rows=%d", total, len(rows))
	}

	_, err = svc.MarkRead(ctx, other.ID, first.ID)
	dbtest.ExpectStatus(t, err, fiber.StatusNotFound)

	n, err := svc.MarkRead(ctx, owner.ID, first.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !n.IsRead {
		t.Fatalf("notification not marked read")
	}
	if c, _ := svc.UnreadCount(ctx, owner.ID); c != 1 {
		t.Fatalf("unread count = %d, want 1", c)
	}

	updated, err := svc.MarkAllRead(ctx, owner.ID)
	if err != nil || updated != 1 {
		t.Fatalf("mark all read = %d, %v", updated, err)
	}
	if c, _ := svc.UnreadCount(ctx, owner.ID); c != 0 {
		t.Fatalf("unread count after mark all = %d", c)
	}
	if c, _ := svc.UnreadCount(ctx, other.ID); c != 1 {
		t.Fatalf("other principal affected: unread = %d", c)
	}

	_, all, err := svc.ListMine(ctx, owner.ID, false, page)
	if err != nil || all != 2 {
		t.Fatalf("list all = %d, %v", all, err)
	}
}
