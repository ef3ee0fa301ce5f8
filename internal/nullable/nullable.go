// Package nullable различает в JSON отсутствующее поле, явный null и значение.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field хранит значение поля PATCH-запроса.
// Set=false: поля не было; Set=true и Value=nil: пришёл null.
type Field[T any] struct {
	Set   bool
	Value *T
}

// Of возвращает заданное поле со значением.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null возвращает поле с явным null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. Вызывается только если ключ присутствует.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	f.Set = true
	if bytes.Equal(trimmed, []byte("null")) {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// MarshalJSON пишет null для пустого поля; с omitempty не работает, поэтому
// клиент собирает PATCH-тело через map.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}
