package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ImageList is an ordered list of image URLs persisted as a JSON-encoded
// array in a TEXT column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encode image list: %w", err)
	}
	return string(encoded), nil
}

// Scan accepts NULL, a JSON array, or a legacy plain image_url value written
// before the list encoding existed.
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported image list column type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err != nil {
			return fmt.Errorf("decode image list: %w", err)
		}
		*l = urls
		return nil
	}

	*l = ImageList{raw}
	return nil
}
