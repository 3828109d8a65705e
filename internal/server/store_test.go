package server

import "testing"

func TestCreateRoomAssignsSequentialIDs(t *testing.T) {
	store := NewRoomStore()
	first := store.CreateRoom(fakeConn("host-1"))
	second := store.CreateRoom(fakeConn("host-2"))

	if first.ID != "room-1000" {
		t.Fatalf("expected first room id room-1000, got %s", first.ID)
	}
	if second.ID != "room-1001" {
		t.Fatalf("expected second room id room-1001, got %s", second.ID)
	}
	if first.State != stateWaiting {
		t.Fatalf("expected new room in state %q, got %q", stateWaiting, first.State)
	}
}

func TestGameCodeFormat(t *testing.T) {
	store := NewRoomStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room := store.CreateRoom(fakeConn("host"))
		code := room.GameCode
		if len(code) != 6 {
			t.Fatalf("expected 6-digit game code, got %q", code)
		}
		for _, ch := range code {
			if ch < '0' || ch > '9' {
				t.Fatalf("expected numeric game code, got %q", code)
			}
		}
		if code[0] == '0' {
			t.Fatalf("expected game code without leading zero, got %q", code)
		}
		if seen[code] {
			t.Fatalf("expected unique game code, got duplicate %q", code)
		}
		seen[code] = true
	}
}

func TestFindByGameCode(t *testing.T) {
	store := NewRoomStore()
	room := store.CreateRoom(fakeConn("host"))

	found, ok := store.FindByGameCode(room.GameCode)
	if !ok || found.ID != room.ID {
		t.Fatalf("expected to find room %s by code %s", room.ID, room.GameCode)
	}
	if _, ok := store.FindByGameCode("000000"); ok {
		t.Fatal("expected lookup miss for unknown code")
	}
}

func TestRemoveRoom(t *testing.T) {
	store := NewRoomStore()
	room := store.CreateRoom(fakeConn("host"))

	store.RemoveRoom(room.ID)
	if _, ok := store.GetRoom(room.ID); ok {
		t.Fatalf("expected room %s to be removed", room.ID)
	}
	if _, ok := store.FindByGameCode(room.GameCode); ok {
		t.Fatal("expected code lookup to miss after removal")
	}
}

func TestListRoomSummariesSorted(t *testing.T) {
	store := NewRoomStore()
	first := store.CreateRoom(fakeConn("host-1"))
	second := store.CreateRoom(fakeConn("host-2"))
	second.Players["p1"] = &Player{ID: "p1", Name: "Ada"}

	summaries := store.ListRoomSummaries()
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != first.ID || summaries[1].ID != second.ID {
		t.Fatalf("expected summaries in creation order, got %v", summaries)
	}
	if summaries[1].Players != 1 {
		t.Fatalf("expected second room to count 1 player, got %d", summaries[1].Players)
	}
}

func TestUpdateRoomUnknownID(t *testing.T) {
	store := NewRoomStore()
	_, err := store.UpdateRoom("room-9999", func(room *Room) error {
		t.Fatal("update closure must not run for a missing room")
		return nil
	})
	if err == nil {
		t.Fatal("expected error updating missing room")
	}
}
