package m_kv

// Field constants for the kv_entries table.
const (
	TableName = "kv_entries"

	ColKey       = "entry_key"
	ColValue     = "value"
	ColUpdatedAt = "updated_at"
)
