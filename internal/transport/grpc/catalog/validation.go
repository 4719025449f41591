package catalog

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

var errInvalidPageToken = errors.New("invalid page_token")

func requireString(req *structpb.Struct, field string) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is required")
	}
	v, ok := req.GetFields()[field]
	if !ok || v.GetStringValue() == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	return v.GetStringValue(), nil
}

func validateLogin(req *structpb.Struct) (user, password string, err error) {
	if user, err = requireString(req, "user"); err != nil {
		return "", "", err
	}
	if password, err = requireString(req, "password"); err != nil {
		return "", "", err
	}
	return user, password, nil
}

func validateSaveProduct(req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, fmt.Errorf("request is required")
	}
	p := req.GetFields()["product"].GetStructValue()
	if p == nil {
		return nil, fmt.Errorf("product is required")
	}
	return p, nil
}
