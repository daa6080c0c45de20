package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// BusinessSettings is stored as a jsonb column.
type BusinessSettings struct {
	PointsPerVisit int `json:"pointsPerVisit" yaml:"pointsPerVisit"`
}

// Value implements the driver.Valuer interface
func (s BusinessSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *BusinessSettings) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = BusinessSettings{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("business settings: unsupported column type")
	}
}
