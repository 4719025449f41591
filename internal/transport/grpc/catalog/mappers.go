package catalog

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

// productToStruct encodes p with the same JSON field names the storage layer
// uses.
func productToStruct(p domain.Product) (*structpb.Struct, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode product: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("encode product: %w", err)
	}
	return out, nil
}

func structToProduct(s *structpb.Struct) (domain.Product, error) {
	b, err := protojson.Marshal(s)
	if err != nil {
		return domain.Product{}, fmt.Errorf("decode product: %w", err)
	}
	var p domain.Product
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.Product{}, fmt.Errorf("decode product: %w", err)
	}
	return p, nil
}

func productsToList(products []domain.Product) (*structpb.Value, error) {
	values := make([]*structpb.Value, 0, len(products))
	for _, p := range products {
		s, err := productToStruct(p)
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(s))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
}
