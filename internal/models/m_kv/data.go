package m_kv

import (
	"cloud.google.com/go/spanner"
)

// BuildUpsertMap prepares the canonical columns for one entry. updated_at is
// stamped with the Spanner commit timestamp.
func BuildUpsertMap(key string, value []byte) map[string]interface{} {
	return map[string]interface{}{
		ColKey:       key,
		ColValue:     string(value),
		ColUpdatedAt: spanner.CommitTimestamp,
	}
}

// UpsertMutation builds an InsertOrUpdate mutation from a values map with the
// key column first.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColKey}
	vals := []interface{}{values[ColKey]}
	for col, v := range values {
		if col == ColKey {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}
