package tagmark

import (
	"math"
	"strconv"

	"go.uber.org/zap"
)

// Point is a normalized 2D coordinate, typically within [0,1]x[0,1] although
// any finite value is accepted.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Tag is one marker: a clickable activator surface paired with a popup
// content surface, positioned on a normalized coordinate plane. Every
// mutation announces a cancelable intent event before touching anything;
// observers may veto it, in which case nothing is applied and no confirm
// event follows.
type Tag struct {
	button  *Surface
	popup   *Surface
	emitter *Emitter
	pos     Point
	log     *zap.Logger
}

// Option configures a Tag at construction.
type Option func(*Tag)

// WithLogger attaches a structured logger; applied and vetoed mutations are
// logged at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tag) { t.log = log }
}

// WithEmitter chains the Tag's emitter to an ancestor bus, so a container can
// observe (and veto) events from many tags in one place.
func WithEmitter(parent *Emitter) Option {
	return func(t *Tag) { t.emitter.SetParent(parent) }
}

// New builds a Tag at position with the given text and optional attribute
// sets for each surface. text is either a literal markup string or a
// func(*Tag) string evaluated when assigned. The popup starts hidden; the
// popup is created hidden and Hide then runs the normal protocol, so a bus
// attached via WithEmitter cannot veto the tag into starting visible.
func New(position Point, text any, buttonAttrs, popupAttrs map[string]string, opts ...Option) (*Tag, error) {
	t := &Tag{
		button:  newSurface("button", "tagmark__button"),
		popup:   newSurface("span", "tagmark__popup"),
		emitter: NewEmitter(),
		log:     zap.NewNop(),
	}
	t.button.emitter.SetParent(t.emitter)
	t.popup.emitter.SetParent(t.emitter)
	t.popup.SetStyle("display", "none")
	for _, o := range opts {
		o(t)
	}

	if err := t.Hide(); err != nil {
		return nil, err
	}
	if err := t.SetText(text); err != nil {
		return nil, err
	}
	if err := t.SetPosition(position.X, position.Y); err != nil {
		return nil, err
	}
	if err := t.SetButtonAttributes(buttonAttrs); err != nil {
		return nil, err
	}
	if err := t.SetPopupAttributes(popupAttrs); err != nil {
		return nil, err
	}
	return t, nil
}

// Button returns the activator surface.
func (t *Tag) Button() *Surface { return t.button }

// Popup returns the content surface.
func (t *Tag) Popup() *Surface { return t.popup }

// Position returns the last applied position.
func (t *Tag) Position() Point { return t.pos }

// On subscribes a handler at the Tag level; events from both surfaces bubble
// here.
func (t *Tag) On(kind EventKind, h Handler) { t.emitter.On(kind, h) }

// OnFunc subscribes a plain function at the Tag level.
func (t *Tag) OnFunc(kind EventKind, fn func(*Event)) { t.emitter.OnFunc(kind, fn) }

// intend emits the cancelable intent event on target and reports whether the
// mutation may proceed.
func (t *Tag) intend(kind EventKind, target *Surface) bool {
	ev := &Event{Kind: kind, Tag: t, Surface: target, cancelable: true}
	target.emitter.Emit(ev)
	if ev.Canceled() {
		t.log.Debug("mutation vetoed",
			zap.String("kind", string(kind)), zap.String("surface", target.ID()))
		return false
	}
	return true
}

// confirm emits the non-cancelable completion event on target.
func (t *Tag) confirm(kind EventKind, target *Surface) {
	target.emitter.Emit(&Event{Kind: kind, Tag: t, Surface: target})
	t.log.Debug("mutation applied",
		zap.String("kind", string(kind)), zap.String("surface", target.ID()))
}

// Show makes the popup visible. Vetoing the show intent leaves visibility
// unchanged and suppresses the shown event.
func (t *Tag) Show() error {
	if !t.intend(EventShow, t.popup) {
		return nil
	}
	t.popup.RemoveStyle("display")
	t.confirm(EventShown, t.popup)
	return nil
}

// Hide hides the popup.
func (t *Tag) Hide() error {
	if !t.intend(EventHide, t.popup) {
		return nil
	}
	t.popup.SetStyle("display", "none")
	t.confirm(EventHidden, t.popup)
	return nil
}

// SetText replaces the popup's inner markup. text is either a string used
// literally or a func(*Tag) string invoked with the Tag once the change has
// not been vetoed; the function itself is not retained.
func (t *Tag) SetText(text any) error {
	switch text.(type) {
	case string, func(*Tag) string:
	default:
		return NewArgumentError("text", "a string or a function")
	}
	if !t.intend(EventChange, t.popup) {
		return nil
	}
	switch v := text.(type) {
	case string:
		t.popup.SetInnerHTML(v)
	case func(*Tag) string:
		t.popup.SetInnerHTML(v(t))
	}
	t.confirm(EventChanged, t.popup)
	return nil
}

// SetPosition moves the tag to the normalized coordinate (x, y), applied as
// percentage left/top inline style on the popup. Both coordinates must be
// finite.
func (t *Tag) SetPosition(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NewArgumentError("x", "a number")
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return NewArgumentError("y", "a number")
	}
	if !t.intend(EventChange, t.popup) {
		return nil
	}
	for prop, value := range PositionStyle(x, y) {
		t.popup.SetStyle(prop, value)
	}
	t.pos = Point{X: x, Y: y}
	t.confirm(EventChanged, t.popup)
	return nil
}

// SetButtonAttributes merge-applies attrs onto the activator surface. A nil
// map is an empty merge.
func (t *Tag) SetButtonAttributes(attrs map[string]string) error {
	if !t.intend(EventChange, t.button) {
		return nil
	}
	MergeAttributes(t.button, attrs)
	t.confirm(EventChanged, t.button)
	return nil
}

// SetPopupAttributes merge-applies attrs onto the popup surface. A nil map is
// an empty merge.
func (t *Tag) SetPopupAttributes(attrs map[string]string) error {
	if !t.intend(EventChange, t.popup) {
		return nil
	}
	MergeAttributes(t.popup, attrs)
	t.confirm(EventChanged, t.popup)
	return nil
}

// PositionStyle translates a normalized coordinate into percentage-based
// left/top style properties. It does not validate its inputs.
func PositionStyle(x, y float64) map[string]string {
	return map[string]string{
		"left": percent(x),
		"top":  percent(y),
	}
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', -1, 64) + "%"
}
