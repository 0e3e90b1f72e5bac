package postgres

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/id"
	"capplan/internal/domain/audit"
)

func TestAuditService_CompressesLargeSnapshots(t *testing.T) {
	svc, err := NewAuditService(nil)
	require.NoError(t, err)

	large := json.RawMessage(`{"lines":"` + string(bytes.Repeat([]byte("x"), defaultCompressThreshold+1)) + `"}`)
	entry := AuditEntry{EntityType: "inbound_document", EntityID: id.New(), Action: audit.ActionCreate, Changes: large}
	svc.prepare(&entry)

	assert.Equal(t, CompressionZstd, entry.CompressionAlgo)
	assert.Nil(t, entry.Changes)
	assert.Less(t, len(entry.ChangesCompressed), len(large))
	assert.False(t, id.IsNil(entry.ID))
	assert.False(t, entry.CreatedAt.IsZero())

	require.NoError(t, svc.decompress(&entry))
	assert.Equal(t, large, entry.Changes)
}

func TestAuditService_KeepsSmallSnapshotsPlain(t *testing.T) {
	svc, err := NewAuditService(nil)
	require.NoError(t, err)

	entry := AuditEntry{Changes: json.RawMessage(`{"number":"IN-1"}`)}
	svc.prepare(&entry)

	assert.Equal(t, CompressionNone, entry.CompressionAlgo)
	assert.JSONEq(t, `{"number":"IN-1"}`, string(entry.Changes))
	assert.Nil(t, entry.ChangesCompressed)
}

func TestAuditEntry_Snapshot(t *testing.T) {
	entry := AuditEntry{Changes: json.RawMessage(`{"validated":true}`)}
	assert.Equal(t, map[string]any{"validated": true}, entry.Snapshot())

	assert.Nil(t, AuditEntry{}.Snapshot())
	assert.Nil(t, AuditEntry{Changes: json.RawMessage(`not json`)}.Snapshot())
}
