package inquiry

import (
	"github.com/batyskurylys/catalog-service/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeItems serializes an item snapshot sequence to the at-rest encoding: a
// JSON array of {id,name,price} records. A nil or empty sequence encodes as
// "[]" so a stored request always holds a decodable list.
func EncodeItems(items []domain.ItemSnapshot) (string, error) {
	if items == nil {
		items = []domain.ItemSnapshot{}
	}
	out, err := json.MarshalToString(items)
	if err != nil {
		return "", err
	}
	return out, nil
}

// DecodeItems restores a snapshot sequence from its stored text. Malformed or
// non-array text degrades to an empty sequence: one corrupt historical row
// must never make request listing fail.
func DecodeItems(raw string) []domain.ItemSnapshot {
	items := make([]domain.ItemSnapshot, 0)
	if raw == "" {
		return items
	}
	if err := json.UnmarshalFromString(raw, &items); err != nil {
		zap.L().Warn("discarding undecodable request item list", zap.Error(err))
		return make([]domain.ItemSnapshot, 0)
	}
	if items == nil {
		// stored "null"
		return make([]domain.ItemSnapshot, 0)
	}
	return items
}
