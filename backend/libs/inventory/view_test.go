package inventory

import (
	"errors"
	"testing"

	"swapnet/backend/libs/pinslot"
)

func sampleSlots() []pinslot.Slot {
	return []pinslot.Slot{
		{ID: 1, Availability: pinslot.Available, ChargeStatus: pinslot.ChargeFull, ChargePercent: 100, HealthPercent: 97},
		{ID: 2, Availability: pinslot.Unavailable, ChargeStatus: pinslot.ChargeNotFull, ChargePercent: 20, HealthPercent: 80},
		{ID: 3, Availability: pinslot.Available, ChargeStatus: pinslot.ChargeFull, ChargePercent: 100, HealthPercent: 92},
		{ID: 4, Availability: pinslot.Available, ChargeStatus: pinslot.ChargeNotFull, ChargePercent: 65, HealthPercent: 90},
	}
}

func TestSelectionStateMachine(t *testing.T) {
	slots := sampleSlots()
	var sel Selection

	if _, ok := sel.Current(); ok {
		t.Fatal("expected initial state Unselected")
	}

	if !sel.Click(slots[0]) {
		t.Fatal("expected available slot to be selectable")
	}
	if id, ok := sel.Current(); !ok || id != 1 {
		t.Fatalf("expected Selected(1), got %d %v", id, ok)
	}

	if sel.Click(slots[1]) {
		t.Fatal("click on unavailable slot must be rejected")
	}
	if id, _ := sel.Current(); id != 1 {
		t.Fatalf("expected selection to stay at 1, got %d", id)
	}

	if sel.Click(slots[3]) {
		t.Fatal("click on available but charging slot must be rejected")
	}

	if !sel.Click(slots[2]) {
		t.Fatal("expected second available slot to be selectable")
	}
	if id, _ := sel.Current(); id != 3 {
		t.Fatalf("expected Selected(3), got %d", id)
	}
	if sel.IsSelected(1) {
		t.Fatal("previous selection must be replaced")
	}

	sel.Reset()
	if _, ok := sel.Current(); ok {
		t.Fatal("expected Unselected after reset")
	}
}

func TestViewClickAndCards(t *testing.T) {
	v := NewView(3)
	v.Load(sampleSlots())

	if v.Click(99) {
		t.Fatal("unknown slot id must be a no-op")
	}
	if !v.Click(3) {
		t.Fatal("expected slot 3 to be selectable")
	}
	v.Click(2)

	cards := v.Cards(OrderSlotNumber)
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}
	for _, c := range cards {
		if c.Selected != (c.SlotID == 3) {
			t.Errorf("card %d selected=%v", c.SlotID, c.Selected)
		}
		if c.Number != int(c.SlotID) {
			t.Errorf("card %d has number %d", c.SlotID, c.Number)
		}
	}

	unavailable := cards[1]
	if unavailable.Bookable || unavailable.AvailabilityColor != pinslot.ColorDanger || unavailable.ChargeText != "not full" {
		t.Fatalf("unexpected card for unavailable slot: %+v", unavailable)
	}
}

func TestViewPriorityOrder(t *testing.T) {
	v := NewView(3)
	v.Load(sampleSlots())

	cards := v.Cards(OrderPriority)
	got := []int64{cards[0].SlotID, cards[1].SlotID, cards[2].SlotID, cards[3].SlotID}
	want := []int64{1, 3, 4, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestViewKeepsStaleSlotsOnFailure(t *testing.T) {
	v := NewView(3)
	v.Load(sampleSlots())
	v.Click(1)

	fetchErr := errors.New("station service unavailable")
	v.Fail(fetchErr)

	if !errors.Is(v.Err(), fetchErr) {
		t.Fatalf("expected fetch error, got %v", v.Err())
	}
	if len(v.Slots()) != 4 {
		t.Fatalf("expected stale slots to remain, got %d", len(v.Slots()))
	}
	if id, ok := v.Selected(); !ok || id != 1 {
		t.Fatal("selection must survive a failed refresh")
	}

	v.Load(sampleSlots()[:2])
	if v.Err() != nil {
		t.Fatal("successful load must clear the error")
	}
	if st := v.Statistics(); st.Total != 2 || st.AvailableCount != 1 {
		t.Fatalf("unexpected statistics %+v", st)
	}
}

func TestEmptyViewStatistics(t *testing.T) {
	v := NewView(1)
	if v.Loaded() {
		t.Fatal("new view must not be loaded")
	}
	if st := v.Statistics(); st != (pinslot.Statistics{}) {
		t.Fatalf("expected zero statistics, got %+v", st)
	}
	if cards := v.Cards(OrderPriority); len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
}

func TestParseOrder(t *testing.T) {
	if o, ok := ParseOrder(""); !ok || o != OrderSlotNumber {
		t.Fatalf("empty order: %v %v", o, ok)
	}
	if o, ok := ParseOrder("priority"); !ok || o != OrderPriority {
		t.Fatalf("priority order: %v %v", o, ok)
	}
	if _, ok := ParseOrder("random"); ok {
		t.Fatal("unknown order must be rejected")
	}
}

func TestFilteredCards(t *testing.T) {
	v := NewView(1)
	v.Load(sampleSlots())
	v.Click(3)

	bookable := v.FilteredCards(OrderSlotNumber, Filter{BookableOnly: true})
	if len(bookable) != 2 || bookable[0].SlotID != 1 || bookable[1].SlotID != 3 {
		t.Fatalf("unexpected bookable cards %+v", bookable)
	}
	if !bookable[1].Selected {
		t.Fatal("selection must carry into filtered cards")
	}

	unavailable := pinslot.Unavailable
	only := v.FilteredCards(OrderSlotNumber, Filter{Availability: &unavailable})
	if len(only) != 1 || only[0].SlotID != 2 {
		t.Fatalf("unexpected availability filter result %+v", only)
	}

	visible := v.FilteredCards(OrderPriority, Filter{HideUnavailable: true})
	if len(visible) != 3 {
		t.Fatalf("expected 3 visible cards, got %d", len(visible))
	}

	if all := v.FilteredCards(OrderSlotNumber, Filter{}); len(all) != 4 {
		t.Fatalf("zero filter must keep everything, got %d", len(all))
	}
	if st := v.Statistics(); st.Total != 4 {
		t.Fatalf("filtering must not change statistics, got %+v", st)
	}
}
