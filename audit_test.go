package main

import (
	"context"
	"testing"

	"github.com/korylprince/bdus-client/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuditStoreDisabled(t *testing.T) {
	store, err := newAuditStore(&Config{})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNewAuditStoreMemory(t *testing.T) {
	store, err := newAuditStore(&Config{AuditSize: 2})
	require.NoError(t, err)

	mem, ok := store.(*audit.MemoryStore)
	require.True(t, ok, "expected *audit.MemoryStore, got %T", store)

	for _, path := range []string{"/version", "/inspect", "/charts/1"} {
		require.NoError(t, mem.Record(context.Background(), &audit.Entry{Path: path}))
	}
	entries := mem.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "/inspect", entries[0].Path)
}

func TestNewAuditStoreSQLOpenError(t *testing.T) {
	_, err := newAuditStore(&Config{SQLDriver: "nodriver", SQLDSN: "x", AuditSize: 10})
	assert.Error(t, err)
}
