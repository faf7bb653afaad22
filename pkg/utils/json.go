package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// MarshalJsonLine encodes v as a single newline-terminated JSON line.
func MarshalJsonLine[T any](v T) ([]byte, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
	if err != nil {
		return nil, errors.WithMessage(err, "marshal json")
	}
	return append(data, '\n'), nil
}
