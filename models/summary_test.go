package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"go", "backend"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["go","backend"]`, v)

	v, err = StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringListScan(t *testing.T) {
	var tags StringList
	assert.NoError(t, tags.Scan(`["go","backend"]`))
	assert.Equal(t, StringList{"go", "backend"}, tags)

	var fromBytes StringList
	assert.NoError(t, fromBytes.Scan([]byte(`["a"]`)))
	assert.Equal(t, StringList{"a"}, fromBytes)

	var fromNil StringList
	assert.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, StringList{}, fromNil)

	var fromEmpty StringList
	assert.NoError(t, fromEmpty.Scan(""))
	assert.Equal(t, StringList{}, fromEmpty)

	var bad StringList
	assert.Error(t, bad.Scan(42))
}

func TestRandomIDIsPositive(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := randomID()
		assert.NoError(t, err)
		assert.Greater(t, id, int64(0))
	}
}

func TestBeforeCreateKeepsExistingID(t *testing.T) {
	s := &Summary{ID: 1234}
	assert.NoError(t, s.BeforeCreate(nil))
	assert.Equal(t, int64(1234), s.ID)

	fresh := &Summary{}
	assert.NoError(t, fresh.BeforeCreate(nil))
	assert.NotZero(t, fresh.ID)
}
