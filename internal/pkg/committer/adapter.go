package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// MutationBuilder turns one plan write into a Spanner mutation.
type MutationBuilder func(w Write) *spanner.Mutation

// Adapter applies a Plan to Cloud Spanner inside a single read-write
// transaction.
type Adapter struct {
	client *spanner.Client
	build  MutationBuilder
}

func NewAdapter(client *spanner.Client, build MutationBuilder) *Adapter {
	return &Adapter{client: client, build: build}
}

// Mutations converts the plan using the adapter's builder, skipping writes the
// builder rejects.
func (a *Adapter) Mutations(plan *Plan) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, len(plan.Writes()))
	for _, w := range plan.Writes() {
		if m := a.build(w); m != nil {
			muts = append(muts, m)
		}
	}
	return muts
}

func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	muts := a.Mutations(plan)
	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(muts)
	})
	return err
}
