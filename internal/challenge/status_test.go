package challenge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestStatusExpires(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := NewStatusBoard(0, clk.now)
	assert.Equal(t, DefaultStatusTTL, b.TTL())

	b.Set("hello", KindSuccess)
	clk.t = clk.t.Add(3999 * time.Millisecond)
	assert.Equal(t, "hello", b.Current().Message)

	clk.t = clk.t.Add(time.Millisecond)
	assert.True(t, b.Current().IsZero())
}

func TestStaleClearDoesNotEraseNewerStatus(t *testing.T) {
	b := NewStatusBoard(time.Hour, nil)

	first := b.Set("first", KindInfo)
	second := b.Set("second", KindError)

	assert.False(t, b.Clear(first))
	assert.Equal(t, Status{Message: "second", Kind: KindError}, b.Current())

	assert.True(t, b.Clear(second))
	assert.True(t, b.Current().IsZero())
	assert.False(t, b.Clear(second))
}

func TestNewStatusRestartsExpiry(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	b := NewStatusBoard(4*time.Second, clk.now)

	b.Set("one", KindInfo)
	clk.t = clk.t.Add(3 * time.Second)
	b.Set("two", KindSuccess)
	clk.t = clk.t.Add(3 * time.Second)

	assert.Equal(t, "two", b.Current().Message)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "info", KindInfo.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "", KindNone.String())
}
