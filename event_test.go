package tagmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Emitter(t *testing.T) {
	t.Run("should dispatch to handlers in subscription order", func(t *testing.T) {
		em := NewEmitter()
		var order []int
		em.OnFunc(EventShow, func(*Event) { order = append(order, 1) })
		em.OnFunc(EventShow, func(*Event) { order = append(order, 2) })
		em.Emit(&Event{Kind: EventShow})
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("should bubble events through the parent chain", func(t *testing.T) {
		root := NewEmitter()
		mid := NewEmitter()
		leaf := NewEmitter()
		mid.SetParent(root)
		leaf.SetParent(mid)

		var seen []string
		leaf.OnFunc(EventChange, func(*Event) { seen = append(seen, "leaf") })
		mid.OnFunc(EventChange, func(*Event) { seen = append(seen, "mid") })
		root.OnFunc(EventChange, func(*Event) { seen = append(seen, "root") })

		leaf.Emit(&Event{Kind: EventChange})
		assert.Equal(t, []string{"leaf", "mid", "root"}, seen)
	})

	t.Run("should let an ancestor veto a cancelable event", func(t *testing.T) {
		root := NewEmitter()
		leaf := NewEmitter()
		leaf.SetParent(root)
		root.OnFunc(EventHide, func(ev *Event) { ev.Cancel() })

		ev := &Event{Kind: EventHide, cancelable: true}
		leaf.Emit(ev)
		assert.True(t, ev.Canceled())
	})

	t.Run("should ignore cancel on a non-cancelable event", func(t *testing.T) {
		ev := &Event{Kind: EventShown}
		ev.Cancel()
		assert.False(t, ev.Canceled())
		assert.False(t, ev.Cancelable())
	})

	t.Run("should run every handler before the veto decision is read", func(t *testing.T) {
		em := NewEmitter()
		ran := false
		em.OnFunc(EventShow, func(ev *Event) { ev.Cancel() })
		em.OnFunc(EventShow, func(*Event) { ran = true })
		ev := &Event{Kind: EventShow, cancelable: true}
		em.Emit(ev)
		assert.True(t, ev.Canceled())
		assert.True(t, ran, "a veto must not short-circuit later handlers")
	})

	t.Run("should apply subscriptions made during dispatch to later events only", func(t *testing.T) {
		em := NewEmitter()
		calls := 0
		em.OnFunc(EventShow, func(*Event) {
			em.OnFunc(EventShow, func(*Event) { calls++ })
		})
		em.Emit(&Event{Kind: EventShow})
		assert.Equal(t, 0, calls)
		em.Emit(&Event{Kind: EventShow})
		assert.Equal(t, 1, calls)
	})
}

func Test_Event_Name(t *testing.T) {
	t.Run("should follow the namespace.tag.kind convention", func(t *testing.T) {
		for _, kind := range []EventKind{
			EventShow, EventShown, EventHide, EventHidden, EventChange, EventChanged,
		} {
			ev := &Event{Kind: kind}
			assert.Equal(t, "tagmark.tag."+string(kind), ev.Name())
		}
	})
}

func Test_Tag_Bubbling(t *testing.T) {
	t.Run("should surface events on the surface emitter before the tag", func(t *testing.T) {
		tag := newTestTag(t)
		var seen []string
		tag.Popup().Emitter().OnFunc(EventShown, func(*Event) { seen = append(seen, "surface") })
		tag.OnFunc(EventShown, func(*Event) { seen = append(seen, "tag") })
		require.NoError(t, tag.Show())
		assert.Equal(t, []string{"surface", "tag"}, seen)
	})

	t.Run("should reach a container bus injected at construction", func(t *testing.T) {
		bus := NewEmitter()
		var kinds []EventKind
		bus.OnFunc(EventChanged, func(ev *Event) { kinds = append(kinds, ev.Kind) })
		tag, err := New(Point{X: 0.5, Y: 0.5}, "hi", nil, nil, WithEmitter(bus))
		require.NoError(t, err)
		require.NotEmpty(t, kinds, "construction mutations bubble to the bus")

		kinds = nil
		require.NoError(t, tag.SetText("later"))
		assert.Equal(t, []EventKind{EventChanged}, kinds)
	})

	t.Run("should let a container veto mutations from above", func(t *testing.T) {
		bus := NewEmitter()
		tag, err := New(Point{X: 0.5, Y: 0.5}, "hi", nil, nil, WithEmitter(bus))
		require.NoError(t, err)
		bus.OnFunc(EventShow, func(ev *Event) { ev.Cancel() })
		require.NoError(t, tag.Show())
		assert.True(t, tag.Popup().Hidden())
	})
}
