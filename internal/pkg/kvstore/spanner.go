package kvstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/menswear-storefront/internal/models/m_kv"
	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// SpannerBackend reads entries with a single-use query and writes a whole
// plan through the committer adapter in one read-write transaction.
type SpannerBackend struct {
	client *spanner.Client
	cm     *committer.Adapter
}

func NewSpannerBackend(client *spanner.Client) *SpannerBackend {
	return &SpannerBackend{
		client: client,
		cm:     committer.NewAdapter(client, upsertMutation),
	}
}

func DialSpanner(ctx context.Context, database string) (*SpannerBackend, error) {
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return nil, err
	}
	return NewSpannerBackend(client), nil
}

func upsertMutation(w committer.Write) *spanner.Mutation {
	return m_kv.UpsertMutation(m_kv.BuildUpsertMap(w.Key, w.Value))
}

func getStatement(key string) spanner.Statement {
	return spanner.Statement{
		SQL:    fmt.Sprintf(`SELECT %s FROM %s WHERE %s = @key`, m_kv.ColValue, m_kv.TableName, m_kv.ColKey),
		Params: map[string]interface{}{"key": key},
	}
}

func (s *SpannerBackend) Get(ctx context.Context, key string) ([]byte, error) {
	iter := s.client.Single().Query(ctx, getStatement(key))
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var value string
	if err := row.Columns(&value); err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SpannerBackend) Apply(ctx context.Context, plan *committer.Plan) error {
	return s.cm.Apply(ctx, plan)
}

func (s *SpannerBackend) Close() error {
	s.client.Close()
	return nil
}
