package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventImportCompleted, func(_ context.Context, e Event) error {
		got = append(got, e.ImportID)
		return nil
	})
	d.Subscribe(EventImportCompleted, func(_ context.Context, e Event) error {
		got = append(got, e.ImportID+"-second")
		return nil
	})
	d.Subscribe(EventImportDeleted, func(context.Context, Event) error {
		t.Error("handler for a different event type was invoked")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventImportCompleted, ImportID: "b1"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(got) != 2 || got[0] != "b1" || got[1] != "b1-second" {
		t.Fatalf("deliveries = %v", got)
	}
}

func TestDispatcherHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	invoked := false
	d.Subscribe(EventImportFailed, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventImportFailed, func(context.Context, Event) error {
		invoked = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventImportFailed}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !invoked {
		t.Fatal("second handler was not invoked after the first errored")
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventImportDeleted}); err != nil {
		t.Fatalf("Publish without subscribers: %v", err)
	}
}
