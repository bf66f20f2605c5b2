package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ereporting/internal/domain"
)

func TestNotificationLogAppendFillsDefaults(t *testing.T) {
	log := NewNotificationLog()

	n := log.Append(domain.Notification{Type: "document", Message: "Document soumis: Budget"})

	assert.NotEmpty(t, n.ID)
	assert.False(t, n.CreatedAt.IsZero())
	assert.Equal(t, "document", n.Type)
}

func TestNotificationLogKeepsSuppliedFields(t *testing.T) {
	log := NewNotificationLog()
	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	n := log.Append(domain.Notification{ID: "fixed", CreatedAt: createdAt})

	assert.Equal(t, "fixed", n.ID)
	assert.Equal(t, createdAt, n.CreatedAt)
}

func TestNotificationLogPreservesAppendOrder(t *testing.T) {
	log := NewNotificationLog()
	log.Append(domain.Notification{Message: "first"})
	log.Append(domain.Notification{Message: "second"})
	log.Append(domain.Notification{Message: "third"})

	entries := log.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "third", entries[2].Message)
}

func TestNotificationLogListReturnsCopy(t *testing.T) {
	log := NewNotificationLog()
	log.Append(domain.Notification{Message: "only"})

	entries := log.List()
	entries[0].Message = "mutated"

	assert.Equal(t, "only", log.List()[0].Message)
}
