package database

import (
	"testing"
	"time"

	"github.com/lwp3877/meetpin-server/internal/apperr"
	"github.com/lwp3877/meetpin-server/internal/models"
)

// комната на троих даёт два гостевых места: третье принятие получает
// Full, его заявка остаётся pending и матча не приобретает
func TestAcceptRequestCapacity(t *testing.T) {
	d := testDB(t)

	host := createTestUser(t, d, "host")
	room := createTestRoom(t, d, host, 3, time.Now().Add(2*time.Hour))

	guestA := createTestUser(t, d, "guest-a")
	guestB := createTestUser(t, d, "guest-b")
	guestC := createTestUser(t, d, "guest-c")

	reqA := createTestRequest(t, d, room, guestA)
	reqB := createTestRequest(t, d, room, guestB)
	reqC := createTestRequest(t, d, room, guestC)

	if _, err := d.AcceptRequest(reqA.ID); err != nil {
		t.Fatalf("accept A: %v", err)
	}
	if _, err := d.AcceptRequest(reqB.ID); err != nil {
		t.Fatalf("accept B: %v", err)
	}

	_, err := d.AcceptRequest(reqC.ID)
	e, ok := apperr.As(err)
	if !ok || e.Code != apperr.CodeFull {
		t.Fatalf("accept C: err = %v, want code %s", err, apperr.CodeFull)
	}

	updated, err := d.GetRequest(reqC.ID.String())
	if err != nil {
		t.Fatalf("reload C: %v", err)
	}
	if updated.Status != models.RequestPending {
		t.Fatalf("C status = %s, want %s", updated.Status, models.RequestPending)
	}

	matches, err := d.CountMatchesForRoom(room.ID)
	if err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if matches != 2 {
		t.Fatalf("matches = %d, want 2", matches)
	}
}

// повтор принятия не создаёт второго матча
func TestAcceptRequestReplay(t *testing.T) {
	d := testDB(t)

	host := createTestUser(t, d, "host")
	room := createTestRoom(t, d, host, 3, time.Now().Add(2*time.Hour))
	guest := createTestUser(t, d, "guest")
	request := createTestRequest(t, d, room, guest)

	match, err := d.AcceptRequest(request.ID)
	if err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if match.GuestUID != guest.ID || match.RoomID != room.ID {
		t.Fatalf("match = %+v, want room %s guest %s", match, room.ID, guest.ID)
	}

	_, err = d.AcceptRequest(request.ID)
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeConflict {
		t.Fatalf("second accept: err = %v, want code %s", err, apperr.CodeConflict)
	}

	matches, err := d.CountMatchesForRoom(room.ID)
	if err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if matches != 1 {
		t.Fatalf("matches = %d, want 1", matches)
	}
}

// принятие закрывается за 30 минут до старта
func TestAcceptRequestCutoff(t *testing.T) {
	d := testDB(t)

	host := createTestUser(t, d, "host")
	room := createTestRoom(t, d, host, 3, time.Now().Add(20*time.Minute))
	guest := createTestUser(t, d, "guest")
	request := createTestRequest(t, d, room, guest)

	_, err := d.AcceptRequest(request.ID)
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeGone {
		t.Fatalf("accept inside cutoff: err = %v, want code %s", err, apperr.CodeGone)
	}

	updated, err := d.GetRequest(request.ID.String())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if updated.Status != models.RequestPending {
		t.Fatalf("status = %s, want %s", updated.Status, models.RequestPending)
	}
}

// на пару (комната, заявитель) живёт одна строка; после отказа
// повторная подача тоже упирается в индекс
func TestCreateRequestDuplicate(t *testing.T) {
	d := testDB(t)

	host := createTestUser(t, d, "host")
	room := createTestRoom(t, d, host, 3, time.Now().Add(2*time.Hour))
	guest := createTestUser(t, d, "guest")
	request := createTestRequest(t, d, room, guest)

	dup := &models.Request{RoomID: room.ID, RequesterUID: guest.ID}
	if e, ok := apperr.As(d.CreateRequest(dup)); !ok || e.Code != apperr.CodeConflict {
		t.Fatalf("duplicate create: want code %s", apperr.CodeConflict)
	}

	if err := d.RejectRequest(request.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	again := &models.Request{RoomID: room.ID, RequesterUID: guest.ID}
	if e, ok := apperr.As(d.CreateRequest(again)); !ok || e.Code != apperr.CodeConflict {
		t.Fatalf("re-request after rejection: want code %s", apperr.CodeConflict)
	}
}

func TestRejectRequestTwice(t *testing.T) {
	d := testDB(t)

	host := createTestUser(t, d, "host")
	room := createTestRoom(t, d, host, 3, time.Now().Add(2*time.Hour))
	guest := createTestUser(t, d, "guest")
	request := createTestRequest(t, d, room, guest)

	if err := d.RejectRequest(request.ID); err != nil {
		t.Fatalf("first reject: %v", err)
	}

	err := d.RejectRequest(request.ID)
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeConflict {
		t.Fatalf("second reject: err = %v, want code %s", err, apperr.CodeConflict)
	}
}
