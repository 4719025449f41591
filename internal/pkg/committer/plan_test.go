package committer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_AddReplacesSameKey(t *testing.T) {
	p := NewPlan()
	p.Add("menstore:cart", []byte(`[]`))
	p.Add("menstore:coupon", []byte(`null`))
	p.Add("menstore:cart", []byte(`[{"key":"a::M::"}]`))

	require.Len(t, p.Writes(), 2)
	assert.Equal(t, []string{"menstore:cart", "menstore:coupon"}, p.Keys())
	assert.JSONEq(t, `[{"key":"a::M::"}]`, string(p.Writes()[0].Value))
}

func TestPlan_EmptyKeyIgnored(t *testing.T) {
	p := NewPlan()
	p.Add("", []byte(`1`))
	assert.True(t, p.IsEmpty())

	var nilPlan *Plan
	assert.True(t, nilPlan.IsEmpty())
	assert.Empty(t, nilPlan.Writes())
}
