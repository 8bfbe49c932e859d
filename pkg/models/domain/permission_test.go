package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionSnapshot_PreservesInsertionOrder(t *testing.T) {
	s := NewPermissionSnapshot()
	s.Set("ipRestrict", false)
	s.Set("enableReading", true)
	s.Set("enableWithdrawals", false)

	flags := s.Flags()
	require.Len(t, flags, 3)
	assert.Equal(t, "ipRestrict", flags[0].Name)
	assert.Equal(t, "enableReading", flags[1].Name)
	assert.Equal(t, "enableWithdrawals", flags[2].Name)
}

func TestPermissionSnapshot_SetUpdatesInPlace(t *testing.T) {
	s := NewPermissionSnapshot()
	s.Set("enableReading", false)
	s.Set("enableWithdrawals", true)
	s.Set("enableReading", true)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Enabled("enableReading"))
	assert.Equal(t, "enableReading", s.Flags()[0].Name)
}

func TestPermissionSnapshot_AbsentFlagsReadFalse(t *testing.T) {
	s := NewPermissionSnapshot()
	assert.False(t, s.Enabled("enableWithdrawals"))
	assert.Zero(t, s.Len())
}

func TestPermissionSnapshot_FlagsReturnsCopy(t *testing.T) {
	s := NewPermissionSnapshot()
	s.Set("enableReading", true)

	flags := s.Flags()
	flags[0].Enabled = false

	assert.True(t, s.Enabled("enableReading"))
}

func TestPermissionSnapshot_MetadataIsNotAFlag(t *testing.T) {
	s := NewPermissionSnapshot()
	s.CreateTime = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.Zero(t, s.Len())
	assert.Empty(t, s.Flags())
}
