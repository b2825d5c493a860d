package cursor

import (
	"errors"

	hashids "github.com/speps/go-hashids/v2"
)

// 游标只编码最后一行的行 ID，对外是不透明字符串
var (
	ErrInvalid = errors.New("游标无效")

	h *hashids.HashID
)

func init() {
	hd := hashids.NewData()
	hd.Salt = "pulse-interaction-cursor"
	hd.MinLength = 12
	h, _ = hashids.NewWithData(hd)
}

// Encode 把行 ID 编码为不透明游标
func Encode(id int64) string {
	s, _ := h.EncodeInt64([]int64{id})
	return s
}

// Decode 解析游标，拿回行 ID
func Decode(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalid
	}
	ids, err := h.DecodeInt64WithError(s)
	if err != nil || len(ids) != 1 {
		return 0, ErrInvalid
	}
	return ids[0], nil
}
