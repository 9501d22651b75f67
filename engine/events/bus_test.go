package events

import "testing"

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var order []int
	b.Subscribe("t", func(Event) { order = append(order, 1) })
	b.Subscribe("t", func(Event) { order = append(order, 2) })
	b.Subscribe("other", func(Event) { t.Fatal("wrong topic delivered") })

	b.Publish("t", nil)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("delivery order = %v, want [1 2]", order)
	}
}

func TestBusSubscribeDuringDelivery(t *testing.T) {
	b := NewBus()
	late := 0
	b.Subscribe("t", func(Event) {
		b.Subscribe("t", func(Event) { late++ })
	})

	b.Publish("t", nil)
	if late != 0 {
		t.Fatalf("late handler ran during the publish that added it")
	}

	b.Publish("t", nil)
	if late != 1 {
		t.Fatalf("late handler ran %d times on next publish, want 1", late)
	}
}

func TestBusEventData(t *testing.T) {
	b := NewBus()
	var got Event
	b.Subscribe(TopicAchievement, func(ev Event) { got = ev })
	b.Publish(TopicAchievement, "first_blood")

	if got.Topic != TopicAchievement || got.Data != "first_blood" {
		t.Fatalf("got event %+v", got)
	}
}
