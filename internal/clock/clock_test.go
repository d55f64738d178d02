package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake(t *testing.T) {
	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	fake := NewFake(base)

	assert.True(t, fake.Now().Equal(base))

	fake.Advance(90 * time.Minute)
	assert.True(t, fake.Now().Equal(base.Add(90*time.Minute)))

	fake.Advance(-30 * time.Minute)
	assert.True(t, fake.Now().Equal(base.Add(time.Hour)))

	pinned := base.AddDate(0, 0, 7)
	fake.Set(pinned)
	assert.True(t, fake.Now().Equal(pinned))
}

func TestSystem(t *testing.T) {
	before := time.Now()
	now := System().Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}
